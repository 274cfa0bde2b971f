package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetry(t *testing.T) {
	errDown := errors.New("connection refused")

	calls := 0
	err := retry(context.Background(), 3, time.Millisecond, func(context.Context) error {
		calls++
		if calls < 3 {
			return errDown
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Errorf("retry = %v after %d calls, want success after 3", err, calls)
	}

	calls = 0
	err = retry(context.Background(), 2, time.Millisecond, func(context.Context) error {
		calls++
		return errDown
	})
	if !errors.Is(err, errDown) || calls != 2 {
		t.Errorf("retry = %v after %d calls, want errDown after 2", err, calls)
	}

	calls = 0
	err = retry(context.Background(), 5, time.Millisecond, func(context.Context) error {
		calls++
		return context.DeadlineExceeded
	})
	if !errors.Is(err, context.DeadlineExceeded) || calls != 1 {
		t.Errorf("context errors should not be retried, got %v after %d calls", err, calls)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = retry(ctx, 3, time.Hour, func(context.Context) error { return errDown })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled wait = %v, want context.Canceled", err)
	}
}
