package coprapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(value int64) *int64 {
	return &value
}

func TestDuration(t *testing.T) {

	t.Run("ReturnsDifferenceOfTimestamps", func(t *testing.T) {

		chroot := BuildChroot{
			StartedOn: int64Ptr(1),
			EndedOn:   int64Ptr(894),
		}

		// act
		seconds, ok := chroot.Duration()

		assert.True(t, ok)
		assert.Equal(t, int64(893), seconds)
	})

	t.Run("ReturnsNotOkForMissingStartedOn", func(t *testing.T) {

		chroot := BuildChroot{
			EndedOn: int64Ptr(894),
		}

		// act
		_, ok := chroot.Duration()

		assert.False(t, ok)
	})

	t.Run("ReturnsNotOkForMissingEndedOn", func(t *testing.T) {

		chroot := BuildChroot{
			StartedOn: int64Ptr(1),
		}

		// act
		_, ok := chroot.Duration()

		assert.False(t, ok)
	})

	t.Run("ReturnsNotOkForNonMonotonicTimestamps", func(t *testing.T) {

		chroot := BuildChroot{
			StartedOn: int64Ptr(894),
			EndedOn:   int64Ptr(1),
		}

		// act
		_, ok := chroot.Duration()

		assert.False(t, ok)
	})

	t.Run("ReturnsZeroSecondsWhenTimestampsAreEqual", func(t *testing.T) {

		chroot := BuildChroot{
			StartedOn: int64Ptr(894),
			EndedOn:   int64Ptr(894),
		}

		// act
		seconds, ok := chroot.Duration()

		assert.True(t, ok)
		assert.Equal(t, int64(0), seconds)
	})
}

func TestChrootParts(t *testing.T) {

	t.Run("SplitsSimpleChrootName", func(t *testing.T) {

		chroot := BuildChroot{Name: "fedora-36-x86_64"}

		// act
		osName, osVersion, arch, ok := chroot.ChrootParts()

		assert.True(t, ok)
		assert.Equal(t, "fedora", osName)
		assert.Equal(t, "36", osVersion)
		assert.Equal(t, "x86_64", arch)
	})

	t.Run("KeepsDashesInOsName", func(t *testing.T) {

		chroot := BuildChroot{Name: "centos-stream-9-aarch64"}

		// act
		osName, osVersion, arch, ok := chroot.ChrootParts()

		assert.True(t, ok)
		assert.Equal(t, "centos-stream", osName)
		assert.Equal(t, "9", osVersion)
		assert.Equal(t, "aarch64", arch)
	})

	t.Run("ReturnsNotOkForTooFewSegments", func(t *testing.T) {

		chroot := BuildChroot{Name: "srpm-builds"}

		// act
		_, _, _, ok := chroot.ChrootParts()

		assert.False(t, ok)
	})
}

func TestBaseVersion(t *testing.T) {

	t.Run("StripsTrailingRelease", func(t *testing.T) {

		sourcePackage := SourcePackage{Name: "anki", Version: "2.1.1-1.fc43"}

		// act
		version := sourcePackage.BaseVersion()

		assert.Equal(t, "2.1.1", version)
	})

	t.Run("KeepsVersionWithoutRelease", func(t *testing.T) {

		sourcePackage := SourcePackage{Name: "anki", Version: "2.1.1"}

		// act
		version := sourcePackage.BaseVersion()

		assert.Equal(t, "2.1.1", version)
	})

	t.Run("StripsOnlyLastDashSegment", func(t *testing.T) {

		sourcePackage := SourcePackage{Name: "tree-sitter", Version: "0.20-rc1-3.fc39"}

		// act
		version := sourcePackage.BaseVersion()

		assert.Equal(t, "0.20-rc1", version)
	})
}

func TestProjectKey(t *testing.T) {

	t.Run("MatchesBuildProjectKey", func(t *testing.T) {

		project := Project{Name: "ansible", OwnerName: "packit"}
		build := Build{OwnerName: "packit", ProjectName: "ansible"}

		// act
		key := project.Key()

		assert.Equal(t, "packit/ansible", key)
		assert.Equal(t, build.ProjectKey(), key)
	})
}
