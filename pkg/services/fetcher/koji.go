package fetcher

import (
	"context"
	"fmt"
	"regexp"
	"time"

	foundation "github.com/estafette/estafette-foundation"
	"github.com/fedora-copr/rpmeta/pkg/api"
	"github.com/fedora-copr/rpmeta/pkg/clients/bodhiapi"
	"github.com/fedora-copr/rpmeta/pkg/clients/kojiapi"
	"github.com/fedora-copr/rpmeta/pkg/dataset"
	"github.com/fedora-copr/rpmeta/pkg/pool"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var distTagRegex = regexp.MustCompile(`\.(fc|el)(\d+)`)

// NewKojiService returns a Service that assembles records from koji builds
// completed between startDate and endDate
func NewKojiService(config *api.APIConfig, kojiapiClient kojiapi.Client, bodhiapiClient bodhiapi.Client, startDate, endDate time.Time) Service {
	return &kojiService{
		config:         config,
		kojiapiClient:  kojiapiClient,
		bodhiapiClient: bodhiapiClient,
		startDate:      startDate,
		endDate:        endDate,
	}
}

type kojiService struct {
	config         *api.APIConfig
	kojiapiClient  kojiapi.Client
	bodhiapiClient bodhiapi.Client
	startDate      time.Time
	endDate        time.Time
}

func (s *kojiService) FetchData(ctx context.Context) (records []dataset.Record, err error) {

	distros, err := s.resolveDistros(ctx)
	if err != nil {
		return records, errors.Wrap(err, "Resolving release aliases failed")
	}

	log.Info().Msgf("Fetching koji builds completed between %v and %v for %v distributions...", s.startDate.Format("2006-01-02"), s.endDate.Format("2006-01-02"), len(distros))

	pageSize := s.config.Koji.PageSize
	offset := 0
	for {
		builds, pageErr := s.kojiapiClient.ListBuilds(ctx, s.startDate, s.endDate, pageSize, offset)
		if pageErr != nil {
			return records, errors.Wrapf(pageErr, "Retrieving builds page at offset %v failed", offset)
		}
		if len(builds) == 0 {
			break
		}

		log.Debug().Msgf("Retrieved builds page at offset %v with %v builds", offset, len(builds))

		pageRecords, pageErr := s.assembleRecords(ctx, builds, distros)
		if pageErr != nil {
			return records, pageErr
		}
		records = append(records, pageRecords...)

		offset += pageSize
	}

	log.Info().Msgf("Assembled %v records from koji builds", len(records))

	return records, nil
}

// resolveDistros turns the configured release aliases into the concrete set of
// targeted distributions, retrying the release lookup since nothing can be
// fetched without it
func (s *kojiService) resolveDistros(ctx context.Context) (distros []bodhiapi.Distro, err error) {

	var releases []bodhiapi.Release
	err = foundation.Retry(func() error {
		releases, err = s.bodhiapiClient.GetReleases(ctx)
		return err
	}, foundation.DelayMillisecond(s.config.Fetcher.RetryDelayMillisecond), foundation.Attempts(s.config.Fetcher.RetryAttempts))
	if err != nil {
		return
	}

	for _, alias := range s.config.Fetcher.DistroAliases {
		aliasDistros, aliasErr := bodhiapi.ResolveAlias(alias, releases)
		if aliasErr != nil {
			return distros, aliasErr
		}
		distros = append(distros, aliasDistros...)
	}

	if len(distros) == 0 {
		return distros, errors.Errorf("Release aliases %v resolved to no distributions", s.config.Fetcher.DistroAliases)
	}

	return
}

func (s *kojiService) assembleRecords(ctx context.Context, builds []kojiapi.Build, distros []bodhiapi.Distro) (records []dataset.Record, err error) {

	p, err := pool.NewPool(ctx, pool.NewConfig(s.config.Fetcher.Workers, len(builds), len(builds), func(ctx context.Context, build kojiapi.Build) (dataset.Record, error) {
		return s.assembleRecord(ctx, build, distros)
	}))
	if err != nil {
		return
	}

	p.SendJobs(builds...)
	for record := range p.Close() {
		records = append(records, record)
	}

	for _, jobError := range p.Errors() {
		build := jobError.Job.(kojiapi.Build)
		if errors.Is(jobError.Err, ErrDistroNotTargeted) {
			log.Debug().Msgf("Skipping koji build %v (%v): %v", build.BuildID, build.NVR, jobError.Err)
			continue
		}
		log.Warn().Err(jobError.Err).Msgf("Skipping koji build %v (%v)", build.BuildID, build.NVR)
	}

	return records, nil
}

func (s *kojiService) assembleRecord(ctx context.Context, build kojiapi.Build, distros []bodhiapi.Distro) (record dataset.Record, err error) {

	osName, osVersion, ok := parseDistTag(build.Release)
	if !ok {
		return record, errors.Wrapf(ErrDistroNotTargeted, "Release %v carries no recognizable dist tag", build.Release)
	}
	if !distroTargeted(distros, osName, osVersion) {
		return record, errors.Wrapf(ErrDistroNotTargeted, "Distribution %v %v is skipped", osName, osVersion)
	}

	if build.StartTime == nil || build.CompletionTime == nil {
		return record, errors.Errorf("Build %v is missing timestamps", build.BuildID)
	}
	duration := int64(*build.CompletionTime) - int64(*build.StartTime)
	if duration < 0 {
		return record, errors.Errorf("Build %v has non-monotonic timestamps", build.BuildID)
	}

	tree, err := s.kojiapiClient.GetTaskDescendents(ctx, build.TaskID)
	if err != nil {
		return record, errors.Wrapf(err, "Retrieving task tree for task %v failed", build.TaskID)
	}

	leafTask, ok := s.selectLeafTask(tree, build.TaskID)
	if !ok {
		return record, ErrNoLeafTask
	}

	content, err := s.kojiapiClient.DownloadTaskOutput(ctx, leafTask.ID, s.config.Koji.HwInfoFilename)
	if err != nil {
		return record, errors.Wrapf(err, "Downloading %v for task %v failed", s.config.Koji.HwInfoFilename, leafTask.ID)
	}

	hwInfo, err := dataset.ParseLscpu(string(content))
	if err != nil {
		return record, errors.Wrapf(err, "Parsing %v for task %v failed", s.config.Koji.HwInfoFilename, leafTask.ID)
	}

	record = dataset.Record{
		PackageName:   build.Name,
		Version:       versionWithEpoch(build),
		OS:            osName,
		OSVersion:     osVersion,
		MockChroot:    fmt.Sprintf("%v-%v-%v", osName, osVersion, leafTask.Arch),
		BuildDuration: duration,
		HwInfo:        hwInfo,
	}

	if err = record.Validate(); err != nil {
		return record, errors.Wrapf(err, "Assembled record for build %v is not valid", build.BuildID)
	}

	return record, nil
}

// selectLeafTask picks the log-producing task among the deepest descendants,
// preferring the earliest created one when several share the configured method
func (s *kojiService) selectLeafTask(tree kojiapi.TaskTree, rootTaskID int64) (task kojiapi.Task, ok bool) {

	candidates := []kojiapi.Task{}
	for _, leaf := range tree.DeepestTasks(rootTaskID) {
		if leaf.Method == s.config.Koji.LeafTaskMethod {
			candidates = append(candidates, leaf)
		}
	}
	if len(candidates) == 0 {
		return
	}

	task = candidates[0]
	for _, candidate := range candidates[1:] {
		if candidate.CreateTime != nil && (task.CreateTime == nil || *candidate.CreateTime < *task.CreateTime) {
			task = candidate
		}
	}

	return task, true
}

// parseDistTag extracts the distribution name and version from a release
// string like 1.fc36 or 2.el9
func parseDistTag(release string) (osName, osVersion string, ok bool) {

	matches := distTagRegex.FindAllStringSubmatch(release, -1)
	if len(matches) == 0 {
		return
	}

	lastMatch := matches[len(matches)-1]
	switch lastMatch[1] {
	case "fc":
		osName = "fedora"
	case "el":
		osName = "epel"
	}

	return osName, lastMatch[2], true
}

func distroTargeted(distros []bodhiapi.Distro, osName, osVersion string) bool {
	for _, distro := range distros {
		if distro.Name == osName && distro.Version == osVersion {
			return true
		}
	}
	return false
}

// versionWithEpoch prefixes the version with the epoch when the build carries one
func versionWithEpoch(build kojiapi.Build) string {
	if build.Epoch != nil && *build.Epoch > 0 {
		return fmt.Sprintf("%v:%v", *build.Epoch, build.Version)
	}
	return build.Version
}
