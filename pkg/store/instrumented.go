package store

import (
	"context"
	"time"

	"github.com/matzehuels/fordview/pkg/observability"
)

// instrumented reports every call to the registered store hooks.
type instrumented struct {
	Store
	backend string
}

// Instrument wraps s so loads, saves and deletes reach
// observability.Store(). backend names s in hook events.
func Instrument(s Store, backend string) Store {
	return &instrumented{Store: s, backend: backend}
}

func (s *instrumented) Get(ctx context.Context, id string) (*Record, error) {
	start := time.Now()
	rec, err := s.Store.Get(ctx, id)
	observability.Store().OnLoad(ctx, s.backend, time.Since(start), err)
	return rec, err
}

func (s *instrumented) Put(ctx context.Context, rec *Record) error {
	start := time.Now()
	err := s.Store.Put(ctx, rec)
	observability.Store().OnSave(ctx, s.backend, time.Since(start), err)
	return err
}

func (s *instrumented) Delete(ctx context.Context, id string) error {
	err := s.Store.Delete(ctx, id)
	observability.Store().OnDelete(ctx, s.backend, err)
	return err
}
