package kojiapi

import (
	"context"
	"time"

	"github.com/fedora-copr/rpmeta/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "kojiapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) ListBuilds(ctx context.Context, createdAfter, createdBefore time.Time, limit, offset int) (builds []Build, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "ListBuilds", err) }()

	return c.Client.ListBuilds(ctx, createdAfter, createdBefore, limit, offset)
}

func (c *loggingClient) GetTaskDescendents(ctx context.Context, taskID int64) (tree TaskTree, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetTaskDescendents", err) }()

	return c.Client.GetTaskDescendents(ctx, taskID)
}

func (c *loggingClient) DownloadTaskOutput(ctx context.Context, taskID int64, filename string) (content []byte, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "DownloadTaskOutput", err) }()

	return c.Client.DownloadTaskOutput(ctx, taskID, filename)
}
