package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

// fanOut calls fn for indexes [0, n) with at most x.concurrency calls in
// flight. fn records its own outcome; per-item failures never stop siblings.
// Once ctx is done no new call starts and the context error is returned.
func (x *UseCase) fanOut(ctx context.Context, n int, fn func(ctx context.Context, i int)) error {
	var eg errgroup.Group
	eg.SetLimit(x.concurrency)

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			fn(ctx, i)
			return nil
		})
	}
	_ = eg.Wait()

	if err := ctx.Err(); err != nil {
		return goerr.Wrap(err, "operation cancelled")
	}
	return nil
}
