package coprapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fedora-copr/rpmeta/pkg/api"
	"github.com/opentracing-contrib/go-stdlib/nethttp"
	"github.com/opentracing/opentracing-go"
	"github.com/sethgrid/pester"
)

// Client is the interface for communicating with the copr frontend api
//
//go:generate mockgen -package=coprapi -destination ./mock.go -source=client.go
type Client interface {
	GetBuildChrootPage(ctx context.Context, pageToken string) (chroots []BuildChroot, nextPageToken string, err error)
	GetBuildPage(ctx context.Context, pageToken string) (builds []Build, nextPageToken string, err error)
	GetProjectPage(ctx context.Context, pageToken string) (projects []Project, nextPageToken string, err error)
	DownloadResultLog(ctx context.Context, resultURL, filename string) (content []byte, err error)
}

// NewClient creates a coprapi.Client to communicate with the copr frontend
func NewClient(config *api.APIConfig) Client {
	return &client{
		config: config,
	}
}

type client struct {
	config *api.APIConfig
}

// GetBuildChrootPage returns a single page of the chroot-level build results listing
func (c *client) GetBuildChrootPage(ctx context.Context, pageToken string) (chroots []BuildChroot, nextPageToken string, err error) {

	offset, err := parsePageToken(pageToken)
	if err != nil {
		return
	}

	body, err := c.getListPage(ctx, "build-chroot/list", offset)
	if err != nil {
		return
	}

	var response struct {
		Items []BuildChroot `json:"items"`
	}
	err = json.Unmarshal(body, &response)
	if err != nil {
		return
	}

	chroots = response.Items
	nextPageToken = c.nextPageToken(offset, len(chroots))

	return
}

// GetBuildPage returns a single page of the build metadata listing
func (c *client) GetBuildPage(ctx context.Context, pageToken string) (builds []Build, nextPageToken string, err error) {

	offset, err := parsePageToken(pageToken)
	if err != nil {
		return
	}

	body, err := c.getListPage(ctx, "build/list", offset)
	if err != nil {
		return
	}

	var response struct {
		Items []Build `json:"items"`
	}
	err = json.Unmarshal(body, &response)
	if err != nil {
		return
	}

	builds = response.Items
	nextPageToken = c.nextPageToken(offset, len(builds))

	return
}

// GetProjectPage returns a single page of the project metadata listing
func (c *client) GetProjectPage(ctx context.Context, pageToken string) (projects []Project, nextPageToken string, err error) {

	offset, err := parsePageToken(pageToken)
	if err != nil {
		return
	}

	body, err := c.getListPage(ctx, "project/list", offset)
	if err != nil {
		return
	}

	var response struct {
		Items []Project `json:"items"`
	}
	err = json.Unmarshal(body, &response)
	if err != nil {
		return
	}

	projects = response.Items
	nextPageToken = c.nextPageToken(offset, len(projects))

	return
}

// DownloadResultLog fetches a single log file from the results directory of a
// chroot build
func (c *client) DownloadResultLog(ctx context.Context, resultURL, filename string) (content []byte, err error) {

	logURL := fmt.Sprintf("%v/%v", strings.TrimSuffix(resultURL, "/"), filename)

	statusCode, content, err := c.callCoprAPI(ctx, "GET", logURL)
	if err != nil {
		return
	}
	if statusCode != http.StatusOK {
		return content, fmt.Errorf("Downloading %v failed with status code %v", logURL, statusCode)
	}

	return
}

// parsePageToken decodes the opaque token handed out with the previous page; an
// empty token addresses the first page
func parsePageToken(pageToken string) (offset int, err error) {
	if pageToken == "" {
		return 0, nil
	}

	offset, err = strconv.Atoi(pageToken)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("Page token %v is not valid for this listing", pageToken)
	}

	return
}

// nextPageToken returns the token addressing the page after the one just
// fetched, or an empty string when the fetched page was the final one
func (c *client) nextPageToken(offset, pageItemCount int) string {
	if pageItemCount < c.config.Copr.PageSize {
		return ""
	}

	return strconv.Itoa(offset + c.config.Copr.PageSize)
}

func (c *client) getListPage(ctx context.Context, path string, offset int) (body []byte, err error) {

	requestURL := fmt.Sprintf("%v/%v?limit=%v&offset=%v", strings.TrimSuffix(c.config.Copr.APIURL, "/"), path, c.config.Copr.PageSize, offset)

	statusCode, body, err := c.callCoprAPI(ctx, "GET", requestURL)
	if err != nil {
		return
	}
	if statusCode != http.StatusOK {
		return body, fmt.Errorf("Retrieving %v failed with status code %v", requestURL, statusCode)
	}

	return
}

func (c *client) callCoprAPI(ctx context.Context, method, requestURL string) (statusCode int, body []byte, err error) {

	// create client, in order to add headers
	client := pester.NewExtendedClient(&http.Client{Transport: &nethttp.Transport{}})
	client.MaxRetries = 3
	client.Backoff = pester.ExponentialJitterBackoff
	client.KeepLog = true
	client.Timeout = time.Duration(c.config.Copr.TimeoutSeconds) * time.Second

	request, err := http.NewRequest(method, requestURL, nil)
	if err != nil {
		return
	}

	span := opentracing.SpanFromContext(ctx)
	var ht *nethttp.Tracer
	if span != nil {
		// add tracing context
		request = request.WithContext(opentracing.ContextWithSpan(request.Context(), span))

		// collect additional information on setting up connections
		request, ht = nethttp.TraceRequest(span.Tracer(), request)
	}

	request.Header.Add("Accept", "application/json")

	// perform actual request
	response, err := client.Do(request)
	if err != nil {
		return
	}

	defer response.Body.Close()
	if ht != nil {
		ht.Finish()
	}

	statusCode = response.StatusCode

	body, err = ioutil.ReadAll(response.Body)
	if err != nil {
		return
	}

	return
}
