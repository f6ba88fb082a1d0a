package coprapi

import (
	"context"

	"github.com/fedora-copr/rpmeta/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "coprapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) GetBuildChrootPage(ctx context.Context, pageToken string) (chroots []BuildChroot, nextPageToken string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetBuildChrootPage", err) }()

	return c.Client.GetBuildChrootPage(ctx, pageToken)
}

func (c *loggingClient) GetBuildPage(ctx context.Context, pageToken string) (builds []Build, nextPageToken string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetBuildPage", err) }()

	return c.Client.GetBuildPage(ctx, pageToken)
}

func (c *loggingClient) GetProjectPage(ctx context.Context, pageToken string) (projects []Project, nextPageToken string, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetProjectPage", err) }()

	return c.Client.GetProjectPage(ctx, pageToken)
}

func (c *loggingClient) DownloadResultLog(ctx context.Context, resultURL, filename string) (content []byte, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "DownloadResultLog", err) }()

	return c.Client.DownloadResultLog(ctx, resultURL, filename)
}
