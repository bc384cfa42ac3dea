package batch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAllSucceed(t *testing.T) {
	var calls int32
	tasks := make([]Task, 7)
	for i := range tasks {
		tasks[i] = func(ctx context.Context) error {
			atomic.AddInt32(&calls, 1)
			return nil
		}
	}

	results := Run(context.Background(), 3, tasks)
	require.Len(t, results, 7)
	assert.Equal(t, int32(7), atomic.LoadInt32(&calls))
	assert.Zero(t, CountFailures(results))
}

func TestRunErrorsAlignedByIndex(t *testing.T) {
	errBoom := errors.New("boom")
	tasks := []Task{
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) error { return errBoom },
		func(ctx context.Context) error { return nil },
	}

	results := Run(context.Background(), 2, tasks)
	require.Len(t, results, 3)
	assert.NoError(t, results[0])
	assert.ErrorIs(t, results[1], errBoom)
	assert.NoError(t, results[2])
	assert.Equal(t, 1, CountFailures(results))
}

func TestRunFailureDoesNotStopLaterChunks(t *testing.T) {
	var calls int32
	tasks := []Task{
		func(ctx context.Context) error { atomic.AddInt32(&calls, 1); return errors.New("fail") },
		func(ctx context.Context) error { atomic.AddInt32(&calls, 1); return nil },
		func(ctx context.Context) error { atomic.AddInt32(&calls, 1); return nil },
	}

	results := Run(context.Background(), 1, tasks)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, 1, CountFailures(results))
}

func TestRunBoundsConcurrency(t *testing.T) {
	const chunkSize = 4
	var inFlight, peak int32

	tasks := make([]Task, 20)
	for i := range tasks {
		tasks[i] = func(ctx context.Context) error {
			cur := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if cur <= p || atomic.CompareAndSwapInt32(&peak, p, cur) {
					break
				}
			}
			atomic.AddInt32(&inFlight, -1)
			return nil
		}
	}

	Run(context.Background(), chunkSize, tasks)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(chunkSize))
}

func TestRunChunkSizeBelowOne(t *testing.T) {
	results := Run(context.Background(), 0, []Task{
		func(ctx context.Context) error { return nil },
		func(ctx context.Context) error { return nil },
	})
	require.Len(t, results, 2)
	assert.Zero(t, CountFailures(results))
}

func TestRunNoTasks(t *testing.T) {
	results := Run(context.Background(), 5, nil)
	assert.Empty(t, results)
	assert.Zero(t, CountFailures(results))
}
