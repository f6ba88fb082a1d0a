package bodhiapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testReleases = []Release{
	{Name: "F36", LongName: "Fedora 36", Version: "36", IDPrefix: "FEDORA", State: "current"},
	{Name: "F37", LongName: "Fedora 37", Version: "37", IDPrefix: "FEDORA", State: "frozen"},
	{Name: "F38", LongName: "Fedora 38", Version: "38", IDPrefix: "FEDORA", State: "pending"},
	{Name: "F36C", LongName: "Fedora 36 Containers", Version: "36", IDPrefix: "FEDORA-CONTAINER", State: "current"},
	{Name: "EPEL-9", LongName: "Fedora EPEL 9", Version: "9", IDPrefix: "FEDORA-EPEL", State: "current"},
	{Name: "EPEL-9N", LongName: "Fedora EPEL 9 Next", Version: "9", IDPrefix: "FEDORA-EPEL-NEXT", State: "current"},
	{Name: "F24", LongName: "Fedora 24", Version: "24", IDPrefix: "FEDORA", State: "archived"},
}

func TestResolveAlias(t *testing.T) {

	t.Run("FedoraAllCoversActiveFedoraReleases", func(t *testing.T) {

		// act
		distros, err := ResolveAlias("fedora-all", testReleases)

		assert.Nil(t, err)
		assert.Equal(t, []Distro{
			{Name: "fedora", Version: "36"},
			{Name: "fedora", Version: "37"},
			{Name: "fedora", Version: "38"},
		}, distros)
	})

	t.Run("FedoraStableCoversOnlyCurrentReleases", func(t *testing.T) {

		// act
		distros, err := ResolveAlias("fedora-stable", testReleases)

		assert.Nil(t, err)
		assert.Equal(t, []Distro{
			{Name: "fedora", Version: "36"},
		}, distros)
	})

	t.Run("FedoraDevelopmentCoversPendingAndFrozenReleases", func(t *testing.T) {

		// act
		distros, err := ResolveAlias("fedora-development", testReleases)

		assert.Nil(t, err)
		assert.Equal(t, []Distro{
			{Name: "fedora", Version: "37"},
			{Name: "fedora", Version: "38"},
		}, distros)
	})

	t.Run("EpelAllCoversOnlyEpelReleases", func(t *testing.T) {

		// act
		distros, err := ResolveAlias("epel-all", testReleases)

		assert.Nil(t, err)
		assert.Equal(t, []Distro{
			{Name: "epel", Version: "9"},
		}, distros)
	})

	t.Run("SkipsContainerAndModularVariants", func(t *testing.T) {

		// act
		distros, err := ResolveAlias("fedora-all", testReleases)

		assert.Nil(t, err)
		for _, distro := range distros {
			assert.Equal(t, "fedora", distro.Name)
		}
		assert.Equal(t, 3, len(distros))
	})

	t.Run("ReturnsErrorForUnknownAlias", func(t *testing.T) {

		// act
		_, err := ResolveAlias("ubuntu-all", testReleases)

		assert.NotNil(t, err)
	})
}
