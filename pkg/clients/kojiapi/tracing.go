package kojiapi

import (
	"context"
	"time"

	"github.com/fedora-copr/rpmeta/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "kojiapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) ListBuilds(ctx context.Context, createdAfter, createdBefore time.Time, limit, offset int) (builds []Build, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "ListBuilds"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.ListBuilds(ctx, createdAfter, createdBefore, limit, offset)
}

func (c *tracingClient) GetTaskDescendents(ctx context.Context, taskID int64) (tree TaskTree, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetTaskDescendents"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetTaskDescendents(ctx, taskID)
}

func (c *tracingClient) DownloadTaskOutput(ctx context.Context, taskID int64, filename string) (content []byte, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "DownloadTaskOutput"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.DownloadTaskOutput(ctx, taskID, filename)
}
