package cache

import (
	"context"
	"errors"
	"time"
)

// ErrBackend marks failures of a remote cache backend. The [Runner] treats
// them as misses and computes the value fresh.
var ErrBackend = errors.New("cache backend unavailable")

// RetryableError marks a transient backend failure worth another attempt.
type RetryableError struct{ Err error }

// Retryable marks err as transient. Nil stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err was marked with [Retryable].
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

var (
	retryAttempts = 3
	retryDelay    = 100 * time.Millisecond
)

// RetryWithBackoff calls fn until it succeeds or returns an error that is not
// retryable. It gives up after three attempts, doubling the wait in between,
// and returns ctx.Err() if ctx ends while waiting.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	wait := retryDelay
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !IsRetryable(err) || attempt >= retryAttempts {
			return err
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		wait *= 2
	}
}
