package predictor

import (
	"encoding/json"
	"io/ioutil"

	"github.com/dmitryikh/leaves"
	"github.com/pkg/errors"
)

// LoadModel reads the LightGBM model dump exported by the trainer
func LoadModel(path string) (Regressor, error) {

	model, err := leaves.LGEnsembleFromFile(path, true)
	if err != nil {
		return nil, errors.Wrapf(err, "Loading model file %v failed", path)
	}

	return model, nil
}

// LoadCategoryMaps reads the category maps json exported alongside the model
func LoadCategoryMaps(path string) (CategoryMaps, error) {

	content, err := ioutil.ReadFile(path)
	if err != nil {
		return CategoryMaps{}, errors.Wrapf(err, "Reading category maps file %v failed", path)
	}

	var values map[string][]string
	err = json.Unmarshal(content, &values)
	if err != nil {
		return CategoryMaps{}, errors.Wrapf(err, "Unmarshalling category maps file %v failed", path)
	}

	return NewCategoryMaps(values), nil
}

// CategoryMaps holds the ordinal code of every category value the model saw
// during training, per categorical feature
type CategoryMaps struct {
	codes map[string]map[string]int64
}

// NewCategoryMaps indexes per-feature category values by their training order
func NewCategoryMaps(values map[string][]string) CategoryMaps {

	codes := make(map[string]map[string]int64)
	for feature, featureValues := range values {
		codes[feature] = make(map[string]int64)
		for i, value := range featureValues {
			codes[feature][value] = int64(i)
		}
	}

	return CategoryMaps{codes: codes}
}

// Code returns the ordinal code for a feature value, or -1 when the model
// never saw it
func (m CategoryMaps) Code(feature, value string) (code float64, known bool) {

	c, ok := m.codes[feature][value]
	if !ok {
		return -1, false
	}

	return float64(c), true
}
