package fetcher

import (
	"context"

	"github.com/fedora-copr/rpmeta/pkg/dataset"
	"github.com/pkg/errors"
)

var (
	// ErrDistroNotTargeted flags builds for distributions outside the configured aliases
	ErrDistroNotTargeted = errors.New("Build distribution is not covered by the configured aliases")
	// ErrNoLeafTask flags builds whose task tree has no log-producing leaf task
	ErrNoLeafTask = errors.New("Task tree contains no log-producing leaf task")
)

// Service fetches historical build records from one build service
//
//go:generate mockgen -package=fetcher -destination ./mock.go -source=service.go
type Service interface {
	FetchData(ctx context.Context) (records []dataset.Record, err error)
}
