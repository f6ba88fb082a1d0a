package predictor

import (
	"context"

	"github.com/fedora-copr/rpmeta/pkg/api"
	"github.com/fedora-copr/rpmeta/pkg/dataset"
	"github.com/opentracing/opentracing-go"
)

// NewTracingService returns a new instance of a tracing Service.
func NewTracingService(s Service) Service {
	return &tracingService{s, "predictor"}
}

type tracingService struct {
	Service Service
	prefix  string
}

func (s *tracingService) Predict(ctx context.Context, inputRecord dataset.InputRecord) (prediction int64, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "Predict"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.Predict(ctx, inputRecord)
}
