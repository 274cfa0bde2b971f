// Package cache stores shortest-path results keyed by graph content.
//
// # Overview
//
// Bellman-Ford runs are deterministic: the same graph (including adjacency
// order) and the same source always produce the same result. That makes a
// run result safe to reuse for as long as the graph is unchanged, and the
// graph's canonical encoding is a natural key.
//
// [Cache] is a small byte-oriented interface with three backends:
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: JSON entries under a directory, for the CLI
//   - [RedisCache]: shared entries in Redis, for the HTTP API
//
// [Runner] sits on top of a Cache and a [Keyer] and runs the engine only on
// a miss.
//
// # Keys
//
// Keys are produced by a [Keyer]. The default keyer hashes the graph's
// canonical JSON together with the source, so editing a single weight yields
// a new key. [ScopedKeyer] adds a prefix for isolating namespaces that share
// one backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// RunKey identifies a run from source over the graph with graphHash.
	RunKey(graphHash, source string) string

	// MatrixKey identifies the projection of the graph with graphHash.
	MatrixKey(graphHash string) string
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// RunKey implements Keyer.
func (DefaultKeyer) RunKey(graphHash, source string) string {
	return hashKey("run", graphHash, source)
}

// MatrixKey implements Keyer.
func (DefaultKeyer) MatrixKey(graphHash string) string {
	return hashKey("matrix", graphHash)
}
