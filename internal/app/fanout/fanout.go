// Package fanout provides a generic, bounded-concurrency fan-out helper for
// application-layer orchestration. It runs a function across a slice of items
// with at most maxWorkers calls in flight, preserving input order in results.
package fanout

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// calls. Results are returned in the same order as the input items.
//
// An item still waiting for a worker slot when ctx is canceled records
// ctx.Err() and fn is not called for it. Calls already running complete
// normally; fn should watch ctx itself if it can be interrupted.
//
// Run blocks until every item has a result. If items is empty, it returns
// an empty non-nil slice immediately. A maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	results := make([]Result[R], len(items))
	sem := semaphore.NewWeighted(int64(max(maxWorkers, 1)))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Go(func() {
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i] = Result[R]{Err: err}
				return
			}
			defer sem.Release(1)

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Values splits results into the successful values, in order, and the first
// error encountered.
func Values[R any](results []Result[R]) ([]R, error) {
	values := make([]R, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			return nil, r.Err
		}
		values = append(values, r.Value)
	}
	return values, nil
}
