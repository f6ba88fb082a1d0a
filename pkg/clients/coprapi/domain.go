package coprapi

import (
	"strings"
)

// BuildChrootStateSucceeded is the state of chroot builds that finished successfully
const BuildChrootStateSucceeded = "succeeded"

// BuildChroot is a single row of the build-chroot listing; its id is the id of
// the build the chroot result belongs to
type BuildChroot struct {
	BuildID   int64  `json:"id"`
	Name      string `json:"name"`
	StartedOn *int64 `json:"started_on"`
	EndedOn   *int64 `json:"ended_on"`
	ResultURL string `json:"result_url"`
	State     string `json:"state"`
}

// Duration returns ended_on - started_on in seconds; ok is false when either
// timestamp is missing or ended_on precedes started_on
func (c BuildChroot) Duration() (seconds int64, ok bool) {
	if c.StartedOn == nil || c.EndedOn == nil {
		return 0, false
	}

	seconds = *c.EndedOn - *c.StartedOn
	if seconds < 0 {
		return 0, false
	}

	return seconds, true
}

// ChrootParts splits a mock chroot name of the os-version-arch form; the os
// part may itself contain dashes ("centos-stream-9-x86_64")
func (c BuildChroot) ChrootParts() (osName, osVersion, arch string, ok bool) {
	parts := strings.Split(c.Name, "-")
	if len(parts) < 3 {
		return "", "", "", false
	}

	arch = parts[len(parts)-1]
	osVersion = parts[len(parts)-2]
	osName = strings.Join(parts[:len(parts)-2], "-")

	return osName, osVersion, arch, true
}

// SourcePackage identifies the source package a build was made from
type SourcePackage struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// BaseVersion returns the package version with the trailing release stripped,
// "2.1.1-1.fc43" becomes "2.1.1"
func (s SourcePackage) BaseVersion() string {
	if index := strings.LastIndex(s.Version, "-"); index > 0 {
		return s.Version[:index]
	}

	return s.Version
}

// Build is a single row of the build listing
type Build struct {
	ID            int64         `json:"id"`
	EndedOn       *int64        `json:"ended_on"`
	OwnerName     string        `json:"ownername"`
	ProjectName   string        `json:"projectname"`
	SourcePackage SourcePackage `json:"source_package"`
}

// ProjectKey returns the owner/name identifier linking the build to its project
func (b Build) ProjectKey() string {
	return b.OwnerName + "/" + b.ProjectName
}

// Project is a single row of the project listing
type Project struct {
	Name      string `json:"name"`
	OwnerName string `json:"ownername"`
	FullName  string `json:"full_name"`
}

// Key returns the owner/name identifier build rows reference
func (p Project) Key() string {
	return p.OwnerName + "/" + p.Name
}
