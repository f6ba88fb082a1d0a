package kojiapi

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

func (c *metricsClient) ListBuilds(ctx context.Context, createdAfter, createdBefore time.Time, limit, offset int) (builds []Build, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "ListBuilds", begin)
	}(time.Now())

	return c.Client.ListBuilds(ctx, createdAfter, createdBefore, limit, offset)
}

func (c *metricsClient) GetTaskDescendents(ctx context.Context, taskID int64) (tree TaskTree, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "GetTaskDescendents", begin)
	}(time.Now())

	return c.Client.GetTaskDescendents(ctx, taskID)
}

func (c *metricsClient) DownloadTaskOutput(ctx context.Context, taskID int64, filename string) (content []byte, err error) {
	defer func(begin time.Time) {
		api.UpdateMetrics(c.requestCount, c.requestLatency, "DownloadTaskOutput", begin)
	}(time.Now())

	return c.Client.DownloadTaskOutput(ctx, taskID, filename)
}
