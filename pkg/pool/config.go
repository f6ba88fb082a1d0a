package pool

import (
	"context"
	"errors"
)

// Config for a worker pool
type Config[J, R any] struct {
	// Size is the number of concurrent workers
	Size int
	// JobQueueLimit caps the job channel, SendJobs blocks while it is full
	JobQueueLimit int
	// ResultQueueLimit caps the results channel
	ResultQueueLimit int
	// Worker turns a job into a result
	Worker func(context.Context, J) (R, error)
}

func (c *Config[J, R]) Validate() error {
	if c.Size <= 0 {
		return errors.New("expected pool size to be more than 0")
	}
	if c.JobQueueLimit <= 0 {
		return errors.New("expected JobQueueLimit to be more than 0")
	}
	if c.ResultQueueLimit <= 0 {
		return errors.New("expected ResultQueueLimit to be more than 0")
	}
	if c.Worker == nil {
		return errors.New("expected worker func to be not nil")
	}
	return nil
}

// DefaultConfig returns a new Config[J, R] with JobQueueLimit and ResultQueueLimit equal to 100 * size
func DefaultConfig[J, R any](size int, worker func(ctx context.Context, job J) (R, error)) *Config[J, R] {
	return NewConfig(size, 100*size, 100*size, worker)
}

// NewConfig returns a new Config[J, R]
func NewConfig[J, R any](size, jobQueueLimit, resultQueueLimit int, worker func(ctx context.Context, job J) (R, error)) *Config[J, R] {
	return &Config[J, R]{
		Size:             size,
		JobQueueLimit:    jobQueueLimit,
		ResultQueueLimit: resultQueueLimit,
		Worker:           worker,
	}
}
