// Package gather runs a batch of independent operations concurrently and
// collects every result before returning. The monitoring loop uses it twice:
// once to fan out over domains and once, inside each domain, to fan out over
// endpoints.
package gather

import (
	"context"
	"sync"
)

// All invokes fn concurrently for every item and blocks until all calls have
// returned. Results come back in input order; there are no partial results
// and no early return.
func All[T, R any](ctx context.Context, items []T, fn func(context.Context, T) R) []R {
	out := make([]R, len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			out[i] = fn(ctx, item)
		}(i, item)
	}
	wg.Wait()
	return out
}
