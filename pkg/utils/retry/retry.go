package retry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/m-mizutani/crossbranch/pkg/domain/types"
	"github.com/m-mizutani/crossbranch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultMaxAttempts = 5
	DefaultBackoff     = 60 * time.Second
)

// SleepFunc blocks for d or until ctx is done, whichever comes first.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Options configures the rate limit retry policy. Only errors matching
// types.ErrRateLimited are retried; anything else is returned immediately.
type Options struct {
	MaxAttempts int
	Backoff     time.Duration
	Sleep       SleepFunc
}

func DefaultOptions() Options {
	return Options{
		MaxAttempts: DefaultMaxAttempts,
		Backoff:     DefaultBackoff,
	}
}

func (x Options) normalize() Options {
	if x.MaxAttempts <= 0 {
		x.MaxAttempts = DefaultMaxAttempts
	}
	if x.Backoff < 0 {
		x.Backoff = 0
	}
	if x.Sleep == nil {
		x.Sleep = Sleep
	}
	return x
}

// Do runs fn until it succeeds, fails with a non rate limit error, or
// MaxAttempts is reached. The fixed backoff sleep between attempts returns
// early when ctx is cancelled.
func Do[T any](ctx context.Context, opts Options, fn func(ctx context.Context) (T, error)) (T, error) {
	opts = opts.normalize()
	var (
		result  T
		lastErr error
	)

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, goerr.Wrap(err, "retry aborted", goerr.V("attempt", attempt))
		}

		result, lastErr = fn(ctx)
		if lastErr == nil {
			return result, nil
		}
		if !errors.Is(lastErr, types.ErrRateLimited) {
			return result, lastErr
		}
		if attempt == opts.MaxAttempts {
			break
		}

		logging.From(ctx).Warn("rate limited, backing off",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", opts.MaxAttempts),
			slog.Duration("backoff", opts.Backoff),
		)
		if err := opts.Sleep(ctx, opts.Backoff); err != nil {
			return result, goerr.Wrap(err, "retry backoff interrupted", goerr.V("attempt", attempt))
		}
	}

	return result, goerr.Wrap(lastErr, "rate limit retries exhausted", goerr.V("attempts", opts.MaxAttempts))
}

// Sleep waits for d unless ctx is done first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
