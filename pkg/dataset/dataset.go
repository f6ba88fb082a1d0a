package dataset

import (
	"fmt"
)

// HwInfo describes the hardware of the host a build ran on, as recovered
// from the hardware inventory log the builder leaves behind.
type HwInfo struct {
	Architecture   string `json:"architecture" yaml:"architecture"`
	CPUModelName   string `json:"cpu_model_name" yaml:"cpuModelName"`
	CPUModelNumber string `json:"cpu_model_number,omitempty" yaml:"cpuModelNumber,omitempty"`
	CPUFamily      string `json:"cpu_family,omitempty" yaml:"cpuFamily,omitempty"`
	CoreCount      int64  `json:"core_count" yaml:"coreCount"`
	SiblingCount   int64  `json:"sibling_count" yaml:"siblingCount"`
	RAMSize        int64  `json:"ram_size" yaml:"ramSize"`
}

func (h HwInfo) Validate() (err error) {
	if h.CoreCount <= 0 {
		return fmt.Errorf("Hardware info core count %v is not positive", h.CoreCount)
	}
	if h.SiblingCount < h.CoreCount {
		return fmt.Errorf("Hardware info sibling count %v is less than core count %v", h.SiblingCount, h.CoreCount)
	}
	if h.RAMSize < 0 {
		return fmt.Errorf("Hardware info ram size %v is negative", h.RAMSize)
	}

	return nil
}

// Record is the unified output schema for a single completed build,
// identical for every source the fetchers ingest from.
type Record struct {
	PackageName   string `json:"package_name"`
	Version       string `json:"version"`
	OS            string `json:"os"`
	OSVersion     string `json:"os_version"`
	MockChroot    string `json:"mock_chroot"`
	BuildDuration int64  `json:"build_duration"`
	HwInfo        HwInfo `json:"hw_info"`
}

func (r Record) Validate() (err error) {
	if r.PackageName == "" {
		return fmt.Errorf("Record has an empty package name")
	}
	if r.Version == "" {
		return fmt.Errorf("Record for package %v has an empty version", r.PackageName)
	}
	if r.BuildDuration < 0 {
		return fmt.Errorf("Record for package %v has a negative build duration %v", r.PackageName, r.BuildDuration)
	}

	return r.HwInfo.Validate()
}

// InputRecord is a Record without the build duration, the shape handed to
// the prediction layer.
type InputRecord struct {
	PackageName string `json:"package_name"`
	Version     string `json:"version"`
	OS          string `json:"os"`
	OSVersion   string `json:"os_version"`
	MockChroot  string `json:"mock_chroot"`
	HwInfo      HwInfo `json:"hw_info"`
}

func (r InputRecord) Validate() (err error) {
	if r.PackageName == "" {
		return fmt.Errorf("Input record has an empty package name")
	}
	if r.Version == "" {
		return fmt.Errorf("Input record for package %v has an empty version", r.PackageName)
	}

	return nil
}

// ToMinutesRounded converts a duration in seconds to minutes, rounding up.
func ToMinutesRounded(seconds int64) int64 {
	if seconds <= 0 {
		return 0
	}

	return (seconds + 59) / 60
}
