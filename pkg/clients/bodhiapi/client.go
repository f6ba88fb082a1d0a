package bodhiapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/fedora-copr/rpmeta/pkg/api"
	"github.com/sethgrid/pester"
)

// Client is the interface for communicating with the bodhi releases api
//
//go:generate mockgen -package=bodhiapi -destination ./mock.go -source=client.go
type Client interface {
	GetReleases(ctx context.Context) (releases []Release, err error)
}

// NewClient creates a bodhiapi.Client to communicate with bodhi
func NewClient(config *api.APIConfig) Client {
	return &client{
		config: config,
	}
}

type client struct {
	config *api.APIConfig
}

type releasesPageResponse struct {
	Releases []Release `json:"releases"`
	Page     int       `json:"page"`
	Pages    int       `json:"pages"`
}

// GetReleases returns all non-archived releases known to bodhi, walking the
// page/pages style pagination of its releases endpoint
func (c *client) GetReleases(ctx context.Context) (releases []Release, err error) {

	page := 1
	pages := 1

	for page <= pages {
		releasesPageURL := fmt.Sprintf("%v/releases/?exclude_archived=true&page=%v&rows_per_page=%v", c.config.Bodhi.URL, page, c.config.Bodhi.PageSize)

		resp, err := pester.Get(releasesPageURL)
		if err != nil {
			return releases, fmt.Errorf("Retrieving bodhi releases url %v failed", releasesPageURL)
		}

		body, err := ioutil.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return releases, fmt.Errorf("Reading bodhi releases response body for url %v failed", releasesPageURL)
		}

		if resp.StatusCode != http.StatusOK {
			return releases, fmt.Errorf("Retrieving bodhi releases url %v failed with status code %v", releasesPageURL, resp.StatusCode)
		}

		var response releasesPageResponse
		if err = json.Unmarshal(body, &response); err != nil {
			return releases, fmt.Errorf("Unmarshalling bodhi releases response body for url %v failed", releasesPageURL)
		}

		releases = append(releases, response.Releases...)

		pages = response.Pages
		page++
	}

	return
}
