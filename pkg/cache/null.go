package cache

import (
	"context"
	"time"
)

// NullCache stores nothing. Every lookup misses, so a [Runner] backed by it
// always computes fresh.
type NullCache struct{}

// NewNullCache returns the cache used when caching is disabled.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}
