package fetcher

import (
	"context"

	"github.com/fedora-copr/rpmeta/pkg/api"
	"github.com/fedora-copr/rpmeta/pkg/dataset"
)

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(s Service, prefix string) Service {
	return &loggingService{s, prefix}
}

type loggingService struct {
	Service Service
	prefix  string
}

func (s *loggingService) FetchData(ctx context.Context) (records []dataset.Record, err error) {
	defer func() { api.HandleLogError(s.prefix, "Service", "FetchData", err) }()

	return s.Service.FetchData(ctx)
}
