package lox

import (
	"context"
	"golang.org/x/sync/errgroup"
)

func Map[I any, R any](parallel bool, iterable []I, callback func(iteratee I) (R, error)) ([]R, error) {
	if parallel {
		return ParallelMap(context.Background(), 0, iterable, func(_ context.Context, iteratee I) (R, error) {
			return callback(iteratee)
		})
	}
	return SerialMap(iterable, callback)
}

// ParallelMap runs callback for every iteratee in its own goroutine, at most limit at once when limit is positive.
// The first error cancels the context passed to the remaining callbacks.
func ParallelMap[I any, R any](ctx context.Context, limit int, iterable []I, callback func(ctx context.Context, iteratee I) (R, error)) ([]R, error) {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	results := make([]R, len(iterable))
	for i, iteratee := range iterable {
		g.Go(func() error {
			result, err := callback(gctx, iteratee)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	err := g.Wait()
	return results, err
}

func SerialMap[I any, R any](iterable []I, callback func(iteratee I) (R, error)) ([]R, error) {
	results := make([]R, len(iterable))
	for i, iteratee := range iterable {
		result, err := callback(iteratee)
		if err != nil {
			return nil, err
		}
		results[i] = result
	}
	return results, nil
}
