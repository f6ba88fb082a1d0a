package pool

import (
	"context"
	"sync"
)

// Pool fans jobs out over a fixed set of workers
type Pool[J, R any] interface {
	// SendJobs queues jobs for the workers, blocking while the job queue is full
	SendJobs(jobs ...J)
	// Close closes the job queue and returns the channel results arrive on; the
	// channel is closed once the last worker has finished
	Close() <-chan R
	// Errors waits for the workers to finish and returns the jobs that failed
	Errors() []JobError
}

type JobError struct {
	Job any
	Err error
}

type workerPool[J, R any] struct {
	config  *Config[J, R]
	ctx     context.Context
	wg      sync.WaitGroup
	mutex   sync.Mutex
	jobs    chan J
	results chan R
	errors  []JobError
}

// NewPool creates a new worker pool and starts its workers
func NewPool[J, R any](ctx context.Context, config *Config[J, R]) (Pool[J, R], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	p := &workerPool[J, R]{
		config:  config,
		ctx:     ctx,
		jobs:    make(chan J, config.JobQueueLimit),
		results: make(chan R, config.ResultQueueLimit),
	}

	p.wg.Add(config.Size)
	for i := 0; i < config.Size; i++ {
		go p.runWorker()
	}

	return p, nil
}

func (p *workerPool[J, R]) runWorker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.ctx.Err() != nil {
			p.appendError(job, p.ctx.Err())
			continue
		}

		result, err := p.config.Worker(p.ctx, job)
		if err != nil {
			p.appendError(job, err)
			continue
		}

		select {
		case p.results <- result:
		case <-p.ctx.Done():
			p.appendError(job, p.ctx.Err())
		}
	}
}

func (p *workerPool[J, R]) appendError(job J, err error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.errors = append(p.errors, JobError{
		Job: job,
		Err: err,
	})
}

func (p *workerPool[J, R]) SendJobs(jobs ...J) {
	for _, job := range jobs {
		select {
		case p.jobs <- job:
		case <-p.ctx.Done():
			p.appendError(job, p.ctx.Err())
		}
	}
}

func (p *workerPool[J, R]) Close() <-chan R {
	close(p.jobs)

	go func() {
		p.wg.Wait()
		close(p.results)
	}()

	return p.results
}

func (p *workerPool[J, R]) Errors() []JobError {
	p.wg.Wait()

	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.errors
}
