package coprapi

import (
	"context"
	"time"

	"github.com/fedora-copr/rpmeta/pkg/api"
	"github.com/go-kit/kit/metrics"
)

// NewMetricsClient returns a new instance of a metrics Client.
func NewMetricsClient(c Client, requestCount metrics.Counter, requestLatency metrics.Histogram) Client {
	return &metricsClient{c, requestCount, requestLatency}
}

type metricsClient struct {
	Client         Client
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
}

func (c *metricsClient) GetBuildChrootPage(ctx context.Context, pageToken string) (chroots []BuildChroot, nextPageToken string, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetBuildChrootPage", begin)
	}(time.Now())

	return c.Client.GetBuildChrootPage(ctx, pageToken)
}

func (c *metricsClient) GetBuildPage(ctx context.Context, pageToken string) (builds []Build, nextPageToken string, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetBuildPage", begin)
	}(time.Now())

	return c.Client.GetBuildPage(ctx, pageToken)
}

func (c *metricsClient) GetProjectPage(ctx context.Context, pageToken string) (projects []Project, nextPageToken string, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetProjectPage", begin)
	}(time.Now())

	return c.Client.GetProjectPage(ctx, pageToken)
}

func (c *metricsClient) DownloadResultLog(ctx context.Context, resultURL, filename string) (content []byte, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "DownloadResultLog", begin)
	}(time.Now())

	return c.Client.DownloadResultLog(ctx, resultURL, filename)
}
