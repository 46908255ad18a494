// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Collect runs fn for every item on at most workerCount goroutines and returns
// the results in item order. Every item is processed; fn is expected to honor ctx
// itself. A non-positive workerCount runs one goroutine per item.
func Collect[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) R,
) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}
	if workerCount <= 0 || workerCount > len(items) {
		workerCount = len(items)
	}

	tasks := make(chan int, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				results[idx] = fn(ctx, items[idx])
			}
		}()
	}

	for idx := range items {
		tasks <- idx
	}
	close(tasks)

	wg.Wait()
	return results
}
