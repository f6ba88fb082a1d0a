package bodhiapi

import (
	"fmt"
	"strings"
)

// Release represents a single release row returned by the bodhi releases endpoint
type Release struct {
	Name     string `json:"name"`
	LongName string `json:"long_name"`
	Version  string `json:"version"`
	IDPrefix string `json:"id_prefix"`
	State    string `json:"state"`
}

// Distro is a concrete (name, version) pair a release alias resolves to
type Distro struct {
	Name    string
	Version string
}

// states considered active for the -all aliases; frozen covers releases inside
// a beta freeze, which still accept builds
var activeStates = map[string]bool{
	"current": true,
	"pending": true,
	"frozen":  true,
}

// ResolveAlias maps a human release alias such as "fedora-all" onto the
// concrete distributions it covers, using the release rows bodhi returned
func ResolveAlias(alias string, releases []Release) (distros []Distro, err error) {

	var idPrefix string
	var states map[string]bool

	switch alias {
	case "fedora-all":
		idPrefix = "FEDORA"
		states = activeStates
	case "fedora-stable":
		idPrefix = "FEDORA"
		states = map[string]bool{"current": true}
	case "fedora-development":
		idPrefix = "FEDORA"
		states = map[string]bool{"pending": true, "frozen": true}
	case "epel-all":
		idPrefix = "FEDORA-EPEL"
		states = activeStates
	default:
		return nil, fmt.Errorf("Release alias %v is not supported; use one of fedora-all, fedora-stable, fedora-development or epel-all", alias)
	}

	seen := map[string]bool{}
	for _, release := range releases {
		if release.IDPrefix != idPrefix || !states[release.State] {
			continue
		}
		if seen[release.Version] {
			continue
		}
		seen[release.Version] = true

		distros = append(distros, Distro{
			Name:    distroName(release),
			Version: release.Version,
		})
	}

	return
}

func distroName(release Release) string {
	if release.IDPrefix == "FEDORA" {
		return "fedora"
	}

	return strings.ToLower(strings.TrimPrefix(release.IDPrefix, "FEDORA-"))
}
