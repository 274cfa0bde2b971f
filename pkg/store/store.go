// Package store persists graphs by ID.
//
// This package defines the [Store] interface with implementations for
// different backends:
//   - memory: In-memory storage for tests and a single-process server
//   - file: One JSON document per graph in a directory, for the CLI
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage for durable deployments
//
// # Usage
//
//	s, err := store.Open(ctx, store.Config{Backend: "file", Dir: dir})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	rec := store.NewRecord(g)
//	if err := s.Put(ctx, rec); err != nil {
//	    return err
//	}
//	err = store.Update(ctx, s, rec.ID, func(g *graph.Graph[string]) error {
//	    return g.AddEdge("1", "2", 4)
//	})
//
// Graphs are stored in the JSON graph format of package io, so a record
// loaded from any backend reproduces the saved graph's adjacency order.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/fordview/pkg/graph"
	fio "github.com/matzehuels/fordview/pkg/io"
)

// ErrNotFound is returned when no graph has the requested ID. It wraps
// graph.ErrNotFound.
var ErrNotFound = fmt.Errorf("graph %w", graph.ErrNotFound)

// Record is a stored graph with its metadata.
type Record struct {
	ID        string
	Graph     *graph.Graph[string]
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRecord wraps g in a record with a fresh UUID.
func NewRecord(g *graph.Graph[string]) *Record {
	now := timestamp()
	return &Record{
		ID:        uuid.NewString(),
		Graph:     g,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Store is the interface for graph storage backends.
type Store interface {
	// Get loads a graph. Returns ErrNotFound if id is unknown.
	Get(ctx context.Context, id string) (*Record, error)

	// Put creates or replaces a graph.
	Put(ctx context.Context, rec *Record) error

	// Delete removes a graph. Returns ErrNotFound if id is unknown.
	Delete(ctx context.Context, id string) error

	// List returns all stored IDs in sorted order.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}

// Update loads id, applies fn to the graph and saves the result. fn sees a
// private copy; when it fails nothing is written.
//
// Update does not lock across processes. Callers sharing a backend between
// instances must serialize updates of the same ID themselves.
func Update(ctx context.Context, s Store, id string, fn func(g *graph.Graph[string]) error) (*Record, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	g := rec.Graph.Clone()
	if err := fn(g); err != nil {
		return nil, err
	}
	rec.Graph = g
	rec.UpdatedAt = timestamp()
	if err := s.Put(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// document is the serialized form shared by the byte-oriented backends.
type document struct {
	ID        string          `json:"id"`
	Graph     json.RawMessage `json:"graph"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func encodeRecord(rec *Record) ([]byte, error) {
	g, err := fio.Marshal(rec.Graph)
	if err != nil {
		return nil, err
	}
	return json.Marshal(document{
		ID:        rec.ID,
		Graph:     g,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	})
}

func decodeRecord(data []byte) (*Record, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse record: %w", err)
	}
	g, err := fio.Unmarshal(doc.Graph)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", doc.ID, err)
	}
	return &Record{
		ID:        doc.ID,
		Graph:     g,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

func notFound(id string) error {
	return fmt.Errorf("%s: %w", id, ErrNotFound)
}

// timestamp is truncated to milliseconds, the precision every backend keeps.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
