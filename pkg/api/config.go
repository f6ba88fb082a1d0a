package api

import (
	"errors"
	"fmt"

	foundation "github.com/estafette/estafette-foundation"
)

// APIConfig represents the configuration for the entire rpmeta application
type APIConfig struct {
	Koji    *KojiConfig    `yaml:"koji,omitempty"`
	Copr    *CoprConfig    `yaml:"copr,omitempty"`
	Bodhi   *BodhiConfig   `yaml:"bodhi,omitempty"`
	Fetcher *FetcherConfig `yaml:"fetcher,omitempty"`
	Model   *ModelConfig   `yaml:"model,omitempty"`
}

func (c *APIConfig) SetDefaults() {
	if c.Koji == nil {
		c.Koji = &KojiConfig{}
	}
	c.Koji.SetDefaults()

	if c.Copr == nil {
		c.Copr = &CoprConfig{}
	}
	c.Copr.SetDefaults()

	if c.Bodhi == nil {
		c.Bodhi = &BodhiConfig{}
	}
	c.Bodhi.SetDefaults()

	if c.Fetcher == nil {
		c.Fetcher = &FetcherConfig{}
	}
	c.Fetcher.SetDefaults()

	if c.Model == nil {
		c.Model = &ModelConfig{}
	}
	c.Model.SetDefaults()
}

func (c *APIConfig) Validate() (err error) {
	err = c.Koji.Validate()
	if err != nil {
		return
	}

	err = c.Copr.Validate()
	if err != nil {
		return
	}

	err = c.Bodhi.Validate()
	if err != nil {
		return
	}

	err = c.Fetcher.Validate()
	if err != nil {
		return
	}

	err = c.Model.Validate()
	if err != nil {
		return
	}

	return nil
}

// KojiConfig is used to configure the connection to the koji build farm
type KojiConfig struct {
	HubURL         string `yaml:"hubURL" env:"KOJI_HUB_URL"`
	PageSize       int    `yaml:"pageSize" env:"KOJI_PAGE_SIZE"`
	HwInfoFilename string `yaml:"hwInfoFilename"`
	LeafTaskMethod string `yaml:"leafTaskMethod"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

func (c *KojiConfig) SetDefaults() {
	if c.HubURL == "" {
		c.HubURL = "https://koji.fedoraproject.org/kojihub"
	}
	if c.PageSize <= 0 {
		c.PageSize = 1000
	}
	if c.HwInfoFilename == "" {
		c.HwInfoFilename = "hw_info.log"
	}
	if c.LeafTaskMethod == "" {
		c.LeafTaskMethod = "buildArch"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
}

func (c *KojiConfig) Validate() (err error) {
	if c.HubURL == "" {
		return errors.New("Configuration item 'koji.hubURL' is required; please set it to the xml-rpc endpoint of the koji hub")
	}

	return nil
}

// CoprConfig is used to configure the connection to the copr build service
type CoprConfig struct {
	APIURL         string `yaml:"apiURL" env:"COPR_API_URL"`
	PageSize       int    `yaml:"pageSize" env:"COPR_PAGE_SIZE"`
	HwInfoFilename string `yaml:"hwInfoFilename"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

func (c *CoprConfig) SetDefaults() {
	if c.APIURL == "" {
		c.APIURL = "https://copr.fedorainfracloud.org/api_3"
	}
	if c.PageSize <= 0 {
		c.PageSize = 100
	}
	if c.HwInfoFilename == "" {
		c.HwInfoFilename = "hw_info.log"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
}

func (c *CoprConfig) Validate() (err error) {
	if c.APIURL == "" {
		return errors.New("Configuration item 'copr.apiURL' is required; please set it to the api_3 endpoint of the copr frontend")
	}

	return nil
}

// BodhiConfig is used to configure the connection to the bodhi release service
type BodhiConfig struct {
	URL      string `yaml:"url" env:"BODHI_URL"`
	PageSize int    `yaml:"pageSize"`
}

func (c *BodhiConfig) SetDefaults() {
	if c.URL == "" {
		c.URL = "https://bodhi.fedoraproject.org"
	}
	if c.PageSize <= 0 {
		c.PageSize = 100
	}
}

func (c *BodhiConfig) Validate() (err error) {
	if c.URL == "" {
		return errors.New("Configuration item 'bodhi.url' is required; please set it to the base url of the bodhi instance used for release lookups")
	}

	return nil
}

// FetcherConfig controls how the fetchers walk the build services
type FetcherConfig struct {
	DistroAliases         []string `yaml:"distroAliases" env:"FETCHER_DISTRO_ALIASES"`
	Workers               int      `yaml:"workers" env:"FETCHER_WORKERS"`
	RetryAttempts         int      `yaml:"retryAttempts"`
	RetryDelayMillisecond int      `yaml:"retryDelayMillisecond"`
}

func (c *FetcherConfig) SetDefaults() {
	if len(c.DistroAliases) == 0 {
		c.DistroAliases = []string{"fedora-all"}
	}
	if c.Workers <= 0 {
		c.Workers = 4
	}
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = 5
	}
	if c.RetryDelayMillisecond <= 0 {
		c.RetryDelayMillisecond = 2000
	}
}

func (c *FetcherConfig) Validate() (err error) {
	if len(c.DistroAliases) == 0 {
		return errors.New("Configuration item 'fetcher.distroAliases' is required; please set it to at least one alias such as 'fedora-all'")
	}

	return nil
}

type TimeFormat string

const (
	TimeFormatUnknown TimeFormat = ""
	TimeFormatSeconds TimeFormat = "seconds"
	TimeFormatMinutes TimeFormat = "minutes"
	TimeFormatHours   TimeFormat = "hours"
)

// ModelConfig points at the trained model artifacts used by the serve command
type ModelConfig struct {
	Path             string     `yaml:"path" env:"MODEL_PATH"`
	CategoryMapsPath string     `yaml:"categoryMapsPath" env:"MODEL_CATEGORY_MAPS_PATH"`
	TimeFormat       TimeFormat `yaml:"timeFormat"`
}

func (c *ModelConfig) SetDefaults() {
	if c.TimeFormat == TimeFormatUnknown {
		c.TimeFormat = TimeFormatMinutes
	}
}

func (c *ModelConfig) Validate() (err error) {
	validTimeFormats := []string{string(TimeFormatSeconds), string(TimeFormatMinutes), string(TimeFormatHours)}
	if !foundation.StringArrayContains(validTimeFormats, string(c.TimeFormat)) {
		return fmt.Errorf("Configuration item 'model.timeFormat' has unsupported value '%v'; please set it to one of 'seconds', 'minutes' or 'hours'", c.TimeFormat)
	}

	return nil
}
