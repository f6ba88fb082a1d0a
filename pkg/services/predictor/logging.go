package predictor

import (
	"context"

	"github.com/fedora-copr/rpmeta/pkg/api"
	"github.com/fedora-copr/rpmeta/pkg/dataset"
)

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(s Service) Service {
	return &loggingService{s, "predictor"}
}

type loggingService struct {
	Service Service
	prefix  string
}

func (s *loggingService) Predict(ctx context.Context, inputRecord dataset.InputRecord) (prediction int64, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "Predict", err, ErrUnknownPackage) }()

	return s.Service.Predict(ctx, inputRecord)
}
