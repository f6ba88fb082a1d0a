package pool

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPool(t *testing.T) {

	t.Run("ReturnsErrorForZeroSize", func(t *testing.T) {

		config := DefaultConfig(0, func(ctx context.Context, job int) (int, error) { return job, nil })

		// act
		_, err := NewPool(context.Background(), config)

		assert.NotNil(t, err)
	})

	t.Run("ReturnsErrorForNilWorker", func(t *testing.T) {

		config := NewConfig[int, int](2, 10, 10, nil)

		// act
		_, err := NewPool(context.Background(), config)

		assert.NotNil(t, err)
	})
}

func TestPool(t *testing.T) {

	t.Run("DeliversAllResultsForSucceedingJobs", func(t *testing.T) {

		p, err := NewPool(context.Background(), DefaultConfig(4, func(ctx context.Context, job int) (int, error) {
			return job * 2, nil
		}))
		assert.Nil(t, err)

		// act
		for job := 1; job <= 50; job++ {
			p.SendJobs(job)
		}
		results := p.Close()

		sum := 0
		count := 0
		for result := range results {
			sum += result
			count++
		}

		assert.Equal(t, 50, count)
		assert.Equal(t, 2550, sum)
		assert.Empty(t, p.Errors())
	})

	t.Run("CollectsFailuresWithoutStoppingOtherJobs", func(t *testing.T) {

		errOdd := errors.New("odd jobs fail")

		p, err := NewPool(context.Background(), DefaultConfig(4, func(ctx context.Context, job int) (int, error) {
			if job%2 == 1 {
				return 0, errOdd
			}
			return job, nil
		}))
		assert.Nil(t, err)

		// act
		p.SendJobs(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
		results := p.Close()

		count := 0
		for range results {
			count++
		}
		jobErrors := p.Errors()

		assert.Equal(t, 5, count)
		assert.Equal(t, 5, len(jobErrors))
		for _, jobError := range jobErrors {
			assert.True(t, errors.Is(jobError.Err, errOdd))
		}
	})

	t.Run("RunsAtMostSizeWorkersConcurrently", func(t *testing.T) {

		var mutex sync.Mutex
		current := 0
		peak := 0

		p, err := NewPool(context.Background(), DefaultConfig(2, func(ctx context.Context, job int) (int, error) {
			mutex.Lock()
			current++
			if current > peak {
				peak = current
			}
			mutex.Unlock()

			time.Sleep(20 * time.Millisecond)

			mutex.Lock()
			current--
			mutex.Unlock()

			return job, nil
		}))
		assert.Nil(t, err)

		// act
		p.SendJobs(1, 2, 3, 4, 5, 6, 7, 8)
		results := p.Close()

		count := 0
		for range results {
			count++
		}

		assert.Equal(t, 8, count)
		mutex.Lock()
		defer mutex.Unlock()
		assert.LessOrEqual(t, peak, 2)
	})

	t.Run("FailsRemainingJobsWhenContextIsCanceled", func(t *testing.T) {

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p, err := NewPool(ctx, DefaultConfig(2, func(ctx context.Context, job int) (int, error) {
			return job, nil
		}))
		assert.Nil(t, err)

		// act
		p.SendJobs(1, 2, 3, 4, 5)
		results := p.Close()

		count := 0
		for range results {
			count++
		}
		jobErrors := p.Errors()

		assert.Equal(t, 0, count)
		assert.Equal(t, 5, len(jobErrors))
		for _, jobError := range jobErrors {
			assert.True(t, errors.Is(jobError.Err, context.Canceled))
		}
	})

	t.Run("ErrorsDoesNotConsumeResults", func(t *testing.T) {

		errFail := errors.New("job failed")

		p, err := NewPool(context.Background(), DefaultConfig(2, func(ctx context.Context, job int) (int, error) {
			if job <= 3 {
				return 0, errFail
			}
			return job, nil
		}))
		assert.Nil(t, err)

		// act
		p.SendJobs(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
		results := p.Close()
		jobErrors := p.Errors()

		count := 0
		for range results {
			count++
		}

		assert.Equal(t, 3, len(jobErrors))
		assert.Equal(t, 7, count)
	})
}
