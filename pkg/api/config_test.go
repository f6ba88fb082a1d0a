package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetDefaults(t *testing.T) {

	t.Run("InitializesAllSectionsForEmptyConfig", func(t *testing.T) {

		config := &APIConfig{}

		// act
		config.SetDefaults()

		assert.NotNil(t, config.Koji)
		assert.NotNil(t, config.Copr)
		assert.NotNil(t, config.Bodhi)
		assert.NotNil(t, config.Fetcher)
		assert.NotNil(t, config.Model)
	})

	t.Run("SetsKojiDefaults", func(t *testing.T) {

		config := &APIConfig{}

		// act
		config.SetDefaults()

		assert.Equal(t, "https://koji.fedoraproject.org/kojihub", config.Koji.HubURL)
		assert.Equal(t, 1000, config.Koji.PageSize)
		assert.Equal(t, "hw_info.log", config.Koji.HwInfoFilename)
		assert.Equal(t, "buildArch", config.Koji.LeafTaskMethod)
		assert.Equal(t, 30, config.Koji.TimeoutSeconds)
	})

	t.Run("SetsCoprDefaults", func(t *testing.T) {

		config := &APIConfig{}

		// act
		config.SetDefaults()

		assert.Equal(t, "https://copr.fedorainfracloud.org/api_3", config.Copr.APIURL)
		assert.Equal(t, 100, config.Copr.PageSize)
		assert.Equal(t, "hw_info.log", config.Copr.HwInfoFilename)
	})

	t.Run("SetsFetcherDefaults", func(t *testing.T) {

		config := &APIConfig{}

		// act
		config.SetDefaults()

		assert.Equal(t, []string{"fedora-all"}, config.Fetcher.DistroAliases)
		assert.Equal(t, 4, config.Fetcher.Workers)
		assert.Equal(t, 5, config.Fetcher.RetryAttempts)
		assert.Equal(t, 2000, config.Fetcher.RetryDelayMillisecond)
	})

	t.Run("SetsModelTimeFormatToMinutes", func(t *testing.T) {

		config := &APIConfig{}

		// act
		config.SetDefaults()

		assert.Equal(t, TimeFormatMinutes, config.Model.TimeFormat)
	})

	t.Run("KeepsExplicitValues", func(t *testing.T) {

		config := &APIConfig{
			Koji: &KojiConfig{
				HubURL:   "https://koji.example.com/kojihub",
				PageSize: 250,
			},
			Fetcher: &FetcherConfig{
				DistroAliases: []string{"epel-all"},
			},
		}

		// act
		config.SetDefaults()

		assert.Equal(t, "https://koji.example.com/kojihub", config.Koji.HubURL)
		assert.Equal(t, 250, config.Koji.PageSize)
		assert.Equal(t, []string{"epel-all"}, config.Fetcher.DistroAliases)
	})
}

func TestValidate(t *testing.T) {

	t.Run("ReturnsNoErrorForDefaultedConfig", func(t *testing.T) {

		config := &APIConfig{}
		config.SetDefaults()

		// act
		err := config.Validate()

		assert.Nil(t, err)
	})

	t.Run("ReturnsErrorForUnsupportedTimeFormat", func(t *testing.T) {

		config := &APIConfig{}
		config.SetDefaults()
		config.Model.TimeFormat = TimeFormat("fortnights")

		// act
		err := config.Validate()

		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrorForEmptyKojiHubURL", func(t *testing.T) {

		config := &APIConfig{}
		config.SetDefaults()
		config.Koji.HubURL = ""

		// act
		err := config.Validate()

		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrorForEmptyDistroAliases", func(t *testing.T) {

		config := &APIConfig{}
		config.SetDefaults()
		config.Fetcher.DistroAliases = nil

		// act
		err := config.Validate()

		assert.NotNil(t, err)
	})
}
