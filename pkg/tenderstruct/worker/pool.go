// Package worker provides a small fixed-size pool for fanning
// independent per-lot work out over goroutines. Each (lot, contractor)
// unit of the pipeline is side-effect-free with respect to the others,
// so no ordering is guaranteed or needed.
package worker

import (
	"context"
	"sync"
)

// Task is one unit of work.
type Task func(ctx context.Context) error

// Run executes the tasks on at most workers goroutines and returns
// one error slot per task, index-aligned with the input. A canceled
// context stops dispatching; already-running tasks see the
// cancellation through ctx.
func Run(ctx context.Context, workers int, tasks []Task) []error {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(tasks) {
		workers = len(tasks)
	}

	errs := make([]error, len(tasks))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				errs[i] = tasks[i](ctx)
			}
		}()
	}

dispatch:
	for i := range tasks {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(tasks); j++ {
				errs[j] = err
			}
			break
		}
		select {
		case <-ctx.Done():
			errs[i] = ctx.Err()
			for j := i + 1; j < len(tasks); j++ {
				errs[j] = ctx.Err()
			}
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return errs
}
