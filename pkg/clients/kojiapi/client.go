package kojiapi

import (
	"context"
	"net/http"
	"time"

	"github.com/fedora-copr/rpmeta/pkg/api"
	"github.com/kolo/xmlrpc"
	"github.com/opentracing-contrib/go-stdlib/nethttp"
)

// Client is the interface for communicating with the koji hub xml-rpc api
//
//go:generate mockgen -package=kojiapi -destination ./mock.go -source=client.go
type Client interface {
	ListBuilds(ctx context.Context, createdAfter, createdBefore time.Time, limit, offset int) (builds []Build, err error)
	GetTaskDescendents(ctx context.Context, taskID int64) (tree TaskTree, err error)
	DownloadTaskOutput(ctx context.Context, taskID int64, filename string) (content []byte, err error)
}

// NewClient creates a kojiapi.Client to communicate with the koji hub
func NewClient(config *api.APIConfig) (Client, error) {

	rpcClient, err := xmlrpc.NewClient(config.Koji.HubURL, &nethttp.Transport{
		RoundTripper: &http.Transport{
			ResponseHeaderTimeout: time.Duration(config.Koji.TimeoutSeconds) * time.Second,
		},
	})
	if err != nil {
		return nil, err
	}

	return &client{
		config:    config,
		rpcClient: rpcClient,
	}, nil
}

type client struct {
	config    *api.APIConfig
	rpcClient *xmlrpc.Client
}

// queryOpts mirrors the query options koji list endpoints accept
type queryOpts struct {
	Limit  int    `xmlrpc:"limit"`
	Offset int    `xmlrpc:"offset"`
	Order  string `xmlrpc:"order"`
}

// listBuildsArgs carries the keyword arguments of the listBuilds endpoint; koji
// passes keyword arguments as a trailing struct marked with __starstar
type listBuildsArgs struct {
	StarStar      bool      `xmlrpc:"__starstar"`
	State         int       `xmlrpc:"state"`
	CreatedAfter  int64     `xmlrpc:"createdAfter"`
	CreatedBefore int64     `xmlrpc:"createdBefore"`
	QueryOpts     queryOpts `xmlrpc:"queryOpts"`
}

// ListBuilds returns a single page of completed builds created inside the given
// window, newest completion first
func (c *client) ListBuilds(ctx context.Context, createdAfter, createdBefore time.Time, limit, offset int) (builds []Build, err error) {

	args := listBuildsArgs{
		StarStar:      true,
		State:         BuildStateComplete,
		CreatedAfter:  createdAfter.Unix(),
		CreatedBefore: createdBefore.Unix(),
		QueryOpts: queryOpts{
			Limit:  limit,
			Offset: offset,
			Order:  "-completion_ts",
		},
	}

	err = c.rpcClient.Call("listBuilds", []interface{}{args}, &builds)
	if err != nil {
		return
	}

	return
}

// GetTaskDescendents returns the descendant tree of the given task
func (c *client) GetTaskDescendents(ctx context.Context, taskID int64) (tree TaskTree, err error) {

	err = c.rpcClient.Call("getTaskDescendents", []interface{}{taskID}, &tree)
	if err != nil {
		return
	}

	return
}

// DownloadTaskOutput fetches a single output file of a finished task
func (c *client) DownloadTaskOutput(ctx context.Context, taskID int64, filename string) (content []byte, err error) {

	err = c.rpcClient.Call("downloadTaskOutput", []interface{}{taskID, filename}, &content)
	if err != nil {
		return
	}

	return
}
