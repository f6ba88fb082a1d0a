package fetcher

import (
	"context"

	"github.com/fedora-copr/rpmeta/pkg/api"
	"github.com/fedora-copr/rpmeta/pkg/clients/coprapi"
	"github.com/fedora-copr/rpmeta/pkg/dataset"
	"github.com/fedora-copr/rpmeta/pkg/pool"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// NewCoprService returns a Service that assembles records from succeeded copr
// chroot results
func NewCoprService(config *api.APIConfig, coprapiClient coprapi.Client) Service {
	return &coprService{
		config:        config,
		coprapiClient: coprapiClient,
	}
}

type coprService struct {
	config        *api.APIConfig
	coprapiClient coprapi.Client
}

type coprRow struct {
	chroot          coprapi.BuildChroot
	build           coprapi.Build
	projectFullName string
}

func (s *coprService) FetchData(ctx context.Context) (records []dataset.Record, err error) {

	log.Info().Msg("Fetching copr build results...")

	var chroots []coprapi.BuildChroot
	var builds []coprapi.Build
	var projects []coprapi.Project

	// drain the three listings concurrently, a failed page aborts the fetch
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		chroots, err = coprapi.NewPager(s.coprapiClient.GetBuildChrootPage).CollectAll(ctx)
		return errors.Wrap(err, "Retrieving build-chroot listing failed")
	})
	g.Go(func() (err error) {
		builds, err = coprapi.NewPager(s.coprapiClient.GetBuildPage).CollectAll(ctx)
		return errors.Wrap(err, "Retrieving build listing failed")
	})
	g.Go(func() (err error) {
		projects, err = coprapi.NewPager(s.coprapiClient.GetProjectPage).CollectAll(ctx)
		return errors.Wrap(err, "Retrieving project listing failed")
	})
	err = g.Wait()
	if err != nil {
		return
	}

	log.Debug().Msgf("Retrieved %v chroot results, %v builds and %v projects", len(chroots), len(builds), len(projects))

	rows := s.joinRows(chroots, builds, projects)
	if len(rows) == 0 {
		log.Info().Msg("No succeeded copr chroot results to assemble")
		return records, nil
	}

	records, err = s.assembleRecords(ctx, rows)
	if err != nil {
		return
	}

	log.Info().Msgf("Assembled %v records from copr build results", len(records))

	return records, nil
}

// joinRows matches each succeeded chroot result with its build row and, when
// known, the project it was built in; a chroot without a build row cannot be
// assembled into a record and is dropped here
func (s *coprService) joinRows(chroots []coprapi.BuildChroot, builds []coprapi.Build, projects []coprapi.Project) (rows []coprRow) {

	buildsByID := make(map[int64]coprapi.Build)
	for _, build := range builds {
		buildsByID[build.ID] = build
	}

	projectsByKey := make(map[string]coprapi.Project)
	for _, project := range projects {
		projectsByKey[project.Key()] = project
	}

	for _, chroot := range chroots {
		if chroot.State != coprapi.BuildChrootStateSucceeded {
			continue
		}

		build, ok := buildsByID[chroot.BuildID]
		if !ok {
			log.Warn().Msgf("Skipping copr chroot result %v (%v): no matching build row", chroot.BuildID, chroot.Name)
			continue
		}

		row := coprRow{chroot: chroot, build: build}
		if project, ok := projectsByKey[build.ProjectKey()]; ok {
			row.projectFullName = project.FullName
		}
		rows = append(rows, row)
	}

	return
}

func (s *coprService) assembleRecords(ctx context.Context, rows []coprRow) (records []dataset.Record, err error) {

	p, err := pool.NewPool(ctx, pool.NewConfig(s.config.Fetcher.Workers, len(rows), len(rows), s.assembleRecord))
	if err != nil {
		return
	}

	p.SendJobs(rows...)
	for record := range p.Close() {
		records = append(records, record)
	}

	for _, jobError := range p.Errors() {
		row := jobError.Job.(coprRow)
		log.Warn().Err(jobError.Err).Str("project", row.projectFullName).Msgf("Skipping copr build %v (%v)", row.chroot.BuildID, row.chroot.Name)
	}

	return records, nil
}

func (s *coprService) assembleRecord(ctx context.Context, row coprRow) (record dataset.Record, err error) {

	duration, ok := row.chroot.Duration()
	if !ok {
		return record, errors.Errorf("Chroot result for build %v has missing or non-monotonic timestamps", row.chroot.BuildID)
	}

	osName, osVersion, _, ok := row.chroot.ChrootParts()
	if !ok {
		return record, errors.Errorf("Chroot name %v does not follow the os-version-arch form", row.chroot.Name)
	}

	content, err := s.coprapiClient.DownloadResultLog(ctx, row.chroot.ResultURL, s.config.Copr.HwInfoFilename)
	if err != nil {
		return record, errors.Wrapf(err, "Downloading %v for build %v failed", s.config.Copr.HwInfoFilename, row.chroot.BuildID)
	}

	hwInfo, err := dataset.ParseLscpu(string(content))
	if err != nil {
		return record, errors.Wrapf(err, "Parsing %v for build %v failed", s.config.Copr.HwInfoFilename, row.chroot.BuildID)
	}

	record = dataset.Record{
		PackageName:   row.build.SourcePackage.Name,
		Version:       row.build.SourcePackage.BaseVersion(),
		OS:            osName,
		OSVersion:     osVersion,
		MockChroot:    row.chroot.Name,
		BuildDuration: duration,
		HwInfo:        hwInfo,
	}

	if err = record.Validate(); err != nil {
		return record, errors.Wrapf(err, "Assembled record for build %v is not valid", row.chroot.BuildID)
	}

	return record, nil
}
