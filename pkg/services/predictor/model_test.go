package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadCategoryMaps(t *testing.T) {

	t.Run("ReturnsMapsFromFile", func(t *testing.T) {

		// act
		categoryMaps, err := LoadCategoryMaps("test-category-maps.json")

		assert.Nil(t, err)

		code, known := categoryMaps.Code("package_name", "python-peewee")
		assert.True(t, known)
		assert.Equal(t, float64(1), code)
	})

	t.Run("ReturnsErrorForNonExistingFile", func(t *testing.T) {

		// act
		_, err := LoadCategoryMaps("does-not-exist.json")

		assert.NotNil(t, err)
	})
}

func TestCode(t *testing.T) {

	t.Run("ReturnsCodesInTrainingOrder", func(t *testing.T) {

		categoryMaps := NewCategoryMaps(map[string][]string{
			"cpu_arch": {"x86_64", "aarch64", "ppc64le"},
		})

		// act
		code, known := categoryMaps.Code("cpu_arch", "ppc64le")

		assert.True(t, known)
		assert.Equal(t, float64(2), code)
	})

	t.Run("ReturnsMinusOneForUnseenValue", func(t *testing.T) {

		categoryMaps := NewCategoryMaps(map[string][]string{
			"cpu_arch": {"x86_64"},
		})

		// act
		code, known := categoryMaps.Code("cpu_arch", "s390x")

		assert.False(t, known)
		assert.Equal(t, float64(-1), code)
	})

	t.Run("ReturnsMinusOneForUnknownFeature", func(t *testing.T) {

		categoryMaps := NewCategoryMaps(map[string][]string{})

		// act
		code, known := categoryMaps.Code("os", "fedora")

		assert.False(t, known)
		assert.Equal(t, float64(-1), code)
	})
}
