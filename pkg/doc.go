// Package pkg provides the core libraries for fordview, a tool for exploring
// single-source shortest paths with the Bellman-Ford algorithm.
//
// # Overview
//
// The pkg directory is organized into three areas:
//
//  1. Domain logic: [graph] stores weighted graphs, [bellmanford] runs the
//     algorithm and records its per-pass history, [matrix] projects a graph
//     onto its adjacency weight matrix and [replay] turns a run into
//     step-by-step frames.
//  2. Infrastructure: [store] persists graphs (memory, files, Redis or
//     MongoDB), [cache] memoizes runs and matrices, [observability] exposes
//     hooks, and [server] serves everything over HTTP.
//  3. Formats: [io] reads and writes graph files, [render] draws graphs with
//     Graphviz, and [presets] ships sample graphs.
//
// # Data Flow
//
//	graph file / HTTP request
//	         ↓
//	    [graph] (nodes, weighted edges)
//	         ↓
//	    [bellmanford] (|V|-1 passes + verification)
//	         ↓
//	    [replay] / [matrix]
//	         ↓
//	    table, JSON, DOT/SVG/PNG/PDF
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/fordview/pkg/bellmanford"
//	    "github.com/matzehuels/fordview/pkg/presets"
//	)
//
//	g := presets.Errands()
//	res, err := bellmanford.Run(g, "Home")
//	if err != nil {
//	    return err
//	}
//	path, _ := res.PathTo("Gym") // [Home Work Gym]
//
// [graph]: github.com/matzehuels/fordview/pkg/graph
// [bellmanford]: github.com/matzehuels/fordview/pkg/bellmanford
// [matrix]: github.com/matzehuels/fordview/pkg/matrix
// [replay]: github.com/matzehuels/fordview/pkg/replay
// [store]: github.com/matzehuels/fordview/pkg/store
// [cache]: github.com/matzehuels/fordview/pkg/cache
// [observability]: github.com/matzehuels/fordview/pkg/observability
// [server]: github.com/matzehuels/fordview/pkg/server
// [io]: github.com/matzehuels/fordview/pkg/io
// [render]: github.com/matzehuels/fordview/pkg/render
// [presets]: github.com/matzehuels/fordview/pkg/presets
package pkg
