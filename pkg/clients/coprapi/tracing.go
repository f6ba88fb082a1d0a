package coprapi

import (
	"context"

	"github.com/fedora-copr/rpmeta/pkg/api"
	"github.com/opentracing/opentracing-go"
)

// NewTracingClient returns a new instance of a tracing Client.
func NewTracingClient(c Client) Client {
	return &tracingClient{c, "coprapi"}
}

type tracingClient struct {
	Client Client
	prefix string
}

func (c *tracingClient) GetBuildChrootPage(ctx context.Context, pageToken string) (chroots []BuildChroot, nextPageToken string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetBuildChrootPage"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetBuildChrootPage(ctx, pageToken)
}

func (c *tracingClient) GetBuildPage(ctx context.Context, pageToken string) (builds []Build, nextPageToken string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetBuildPage"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetBuildPage(ctx, pageToken)
}

func (c *tracingClient) GetProjectPage(ctx context.Context, pageToken string) (projects []Project, nextPageToken string, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "GetProjectPage"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.GetProjectPage(ctx, pageToken)
}

func (c *tracingClient) DownloadResultLog(ctx context.Context, resultURL, filename string) (content []byte, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, api.GetSpanName(c.prefix, "DownloadResultLog"))
	defer func() { api.FinishSpanWithError(span, err) }()

	return c.Client.DownloadResultLog(ctx, resultURL, filename)
}
