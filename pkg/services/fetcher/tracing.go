package fetcher

import (
	"context"

	"github.com/fedora-copr/rpmeta/pkg/api"
	"github.com/fedora-copr/rpmeta/pkg/dataset"
	"github.com/opentracing/opentracing-go"
)

// NewTracingService returns a new instance of a tracing Service.
func NewTracingService(s Service, prefix string) Service {
	return &tracingService{s, prefix}
}

type tracingService struct {
	Service Service
	prefix  string
}

func (s *tracingService) FetchData(ctx context.Context) (records []dataset.Record, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(s.prefix, "FetchData"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return s.Service.FetchData(ctx)
}
