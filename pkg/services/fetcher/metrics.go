package fetcher

import (
	"context"
	"time"

	"github.com/fedora-copr/rpmeta/pkg/api"
	"github.com/fedora-copr/rpmeta/pkg/dataset"
	"github.com/go-kit/kit/metrics"
)

// NewMetricsService returns a new instance of a metrics Service.
func NewMetricsService(s Service, requestCount metrics.Counter, requestLatency metrics.Histogram) Service {
	return &metricsService{s, requestCount, requestLatency}
}

type metricsService struct {
	Service        Service
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (s *metricsService) FetchData(ctx context.Context) (records []dataset.Record, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(s.requestCount, s.requestLatency, "FetchData", begin)
	}(time.Now())

	return s.Service.FetchData(ctx)
}
