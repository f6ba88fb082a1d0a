package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveRecords(t *testing.T) {

	records := []Record{
		{PackageName: "bash", Version: "5.2", OS: "fedora", OSVersion: "40", MockChroot: "fedora-40-x86_64", BuildDuration: 95, HwInfo: HwInfo{Architecture: "x86_64", CoreCount: 4, SiblingCount: 8}},
		{PackageName: "vim", Version: "9.0", OS: "fedora", OSVersion: "39", MockChroot: "fedora-39-s390x", BuildDuration: 310, HwInfo: HwInfo{Architecture: "s390x", CoreCount: 2, SiblingCount: 2}},
	}

	t.Run("RoundTripsThroughLoadRecords", func(t *testing.T) {

		path := filepath.Join(t.TempDir(), "dataset.json")

		// act
		err := SaveRecords(path, records)

		assert.Nil(t, err)

		loaded, err := LoadRecords(path)

		assert.Nil(t, err)
		assert.Equal(t, records, loaded)
	})

	t.Run("RefusesToOverwriteExistingFile", func(t *testing.T) {

		path := filepath.Join(t.TempDir(), "dataset.json")

		err := SaveRecords(path, records)
		assert.Nil(t, err)

		// act
		err = SaveRecords(path, records)

		assert.NotNil(t, err)
	})
}

func TestLoadRecords(t *testing.T) {

	t.Run("ReturnsErrorForMissingFile", func(t *testing.T) {

		// act
		_, err := LoadRecords(filepath.Join(t.TempDir(), "nope.json"))

		assert.NotNil(t, err)
	})
}
