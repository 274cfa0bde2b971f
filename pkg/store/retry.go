package store

import (
	"context"
	"errors"
	"time"
)

// Remote backends are pinged this many times before Open gives up. The
// delay doubles after each failed ping.
var (
	pingAttempts = 3
	pingDelay    = 250 * time.Millisecond
)

// retry calls fn until it succeeds, attempts run out or ctx is done.
// Context errors from fn are not retried.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func(context.Context) error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, context.Canceled) || errors.Is(lastErr, context.DeadlineExceeded) {
			return lastErr
		}
		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
