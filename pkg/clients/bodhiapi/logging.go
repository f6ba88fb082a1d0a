package bodhiapi

import (
	"context"

	"github.com/fedora-copr/rpmeta/pkg/api"
)

// NewLoggingClient returns a new instance of a logging Client.
func NewLoggingClient(c Client) Client {
	return &loggingClient{c, "bodhiapi"}
}

type loggingClient struct {
	Client Client
	prefix string
}

func (c *loggingClient) GetReleases(ctx context.Context) (releases []Release, err error) {
	defer func() { api.HandleLogError(c.prefix, "Client", "GetReleases", err) }()

	return c.Client.GetReleases(ctx)
}
