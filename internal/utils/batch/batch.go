// Package batch provides a bounded-concurrency runner for independent
// fallible operations. Tasks are processed in fixed-size chunks: every task
// within a chunk runs concurrently, and the next chunk does not start until
// the current one has fully settled. This bounds peak in-flight work while
// still parallelizing throughput, and one failing task never aborts its
// chunk-mates.
package batch

import (
	"context"
	"sync"
)

// Task is a single independent fallible operation.
type Task func(ctx context.Context) error

// Run executes tasks with at most chunkSize running concurrently and returns
// one error slot per task, aligned by index (nil on success). A chunkSize
// below 1 is treated as 1. Run itself never fails; failures are reported
// per task.
func Run(ctx context.Context, chunkSize int, tasks []Task) []error {
	if chunkSize < 1 {
		chunkSize = 1
	}
	results := make([]error, len(tasks))
	for start := 0; start < len(tasks); start += chunkSize {
		end := start + chunkSize
		if end > len(tasks) {
			end = len(tasks)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = tasks[i](ctx)
			}(i)
		}
		wg.Wait()
	}
	return results
}

// CountFailures returns the number of non-nil entries in a Run result.
func CountFailures(results []error) int {
	n := 0
	for _, err := range results {
		if err != nil {
			n++
		}
	}
	return n
}
