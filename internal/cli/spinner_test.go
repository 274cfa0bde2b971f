package cli

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestSpinnerNonTerminalIsSilent(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinnerWithContext(context.Background(), &buf, "Rendering svg")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if buf.Len() != 0 {
		t.Errorf("spinner wrote %q to a non-terminal", buf.String())
	}
	if s.Cancelled() {
		t.Error("a stopped spinner is not cancelled")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinnerWithContext(ctx, &bytes.Buffer{}, "Testing with context...")
	s.Start()

	cancel()
	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), &bytes.Buffer{}, "Testing idempotent stop...")
	s.Start()
	s.Stop()
	s.Stop()
}
