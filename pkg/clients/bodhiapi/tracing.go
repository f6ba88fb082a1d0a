package bodhiapi

import (
	"context"

	"github.com/fedora-copr/rpmeta/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "bodhiapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) GetReleases(ctx context.Context) (releases []Release, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetReleases"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetReleases(ctx)
}
