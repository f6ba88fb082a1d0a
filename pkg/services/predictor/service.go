package predictor

import (
	"context"
	"math"

	"github.com/fedora-copr/rpmeta/pkg/api"
	"github.com/fedora-copr/rpmeta/pkg/dataset"
	"github.com/pkg/errors"
)

var (
	// ErrUnknownPackage is returned when the package was not part of the training set
	ErrUnknownPackage = errors.New("Package is not known to the model")
)

// categoricalFeatures lists the ordinal-encoded features in the exact order
// the model was trained on; the numeric hardware fields follow them in the
// encoded vector
var categoricalFeatures = []string{"package_name", "version", "os", "os_version", "mock_chroot", "cpu_model_name", "cpu_arch"}

// Service encapsulates build duration prediction
//
//go:generate mockgen -package=predictor -destination ./mock.go -source=service.go
type Service interface {
	Predict(ctx context.Context, inputRecord dataset.InputRecord) (prediction int64, err error)
}

// Regressor scores one encoded feature vector; a loaded leaves ensemble
// satisfies it
type Regressor interface {
	PredictSingle(fvals []float64, nEstimators int) float64
}

// NewService returns a new predictor.Service
func NewService(config *api.APIConfig, regressor Regressor, categoryMaps CategoryMaps) Service {
	return &service{
		config:       config,
		regressor:    regressor,
		categoryMaps: categoryMaps,
	}
}

type service struct {
	config       *api.APIConfig
	regressor    Regressor
	categoryMaps CategoryMaps
}

func (s *service) Predict(ctx context.Context, inputRecord dataset.InputRecord) (prediction int64, err error) {

	if err = inputRecord.Validate(); err != nil {
		return prediction, errors.Wrap(err, "Prediction input is not valid")
	}

	features, err := s.encodeFeatures(inputRecord)
	if err != nil {
		return
	}

	predicted := s.regressor.PredictSingle(features, 0)

	return s.toMinutes(predicted), nil
}

// encodeFeatures builds the model input vector. A category value the model
// never saw encodes as -1, except the package name, the one feature the
// model cannot make do without.
func (s *service) encodeFeatures(inputRecord dataset.InputRecord) (features []float64, err error) {

	values := map[string]string{
		"package_name":   inputRecord.PackageName,
		"version":        inputRecord.Version,
		"os":             inputRecord.OS,
		"os_version":     inputRecord.OSVersion,
		"mock_chroot":    inputRecord.MockChroot,
		"cpu_model_name": inputRecord.HwInfo.CPUModelName,
		"cpu_arch":       inputRecord.HwInfo.Architecture,
	}

	for _, feature := range categoricalFeatures {
		code, known := s.categoryMaps.Code(feature, values[feature])
		if !known && feature == "package_name" {
			return features, errors.Wrapf(ErrUnknownPackage, "Package %v was not in the training set", inputRecord.PackageName)
		}
		features = append(features, code)
	}

	features = append(features,
		float64(inputRecord.HwInfo.CoreCount),
		float64(inputRecord.HwInfo.SiblingCount),
		float64(inputRecord.HwInfo.RAMSize),
	)

	return features, nil
}

// toMinutes converts a raw model output in the trained time format to whole
// minutes, rounded up
func (s *service) toMinutes(predicted float64) int64 {

	var minutes float64
	switch s.config.Model.TimeFormat {
	case api.TimeFormatSeconds:
		minutes = predicted / 60
	case api.TimeFormatHours:
		minutes = predicted * 60
	default:
		minutes = predicted
	}

	if minutes < 0 {
		return 0
	}

	return int64(math.Ceil(minutes))
}
