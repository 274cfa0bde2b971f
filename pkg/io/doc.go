// Package io reads and writes graph files and encodes shortest-path results.
//
// # Overview
//
// A graph file stores a graph's mode, its node list, and its weighted edge
// list. The same document can be written as JSON, TOML, or YAML; the format
// of a file is chosen from its extension with [FormatFromPath]. Reading a
// file rebuilds an equivalent graph: same nodes, same edges in the same
// adjacency order, same mode, so shortest-path runs and matrix projections
// over it give identical results.
//
// # Graph Format
//
//	{
//	  "mode": "directed",
//	  "nodes": ["1", "2", "3"],
//	  "edges": [
//	    {"from": "1", "to": "2", "weight": 4},
//	    {"from": "2", "to": "3", "weight": -1}
//	  ]
//	}
//
// Node IDs are strings and are ordered with graph.CompareNatural, so "2"
// sorts before "10". The mode is "directed" or "undirected" and is
// required. Edges are listed once each, in the order they were first
// added, so a reload reproduces adjacency order.
//
// Reading fails when an edge names a node missing from the node list, when
// a weight is not finite, or when the mode is missing or unknown. Errors
// wrap the graph package sentinels.
//
// # Import and Export
//
//	g, err := io.ImportFile("route.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = io.ExportFile(g, "route.json")
//
// [Read] and [Write] work on any io.Reader and io.Writer with an explicit
// [Format]. [Canonical] returns the JSON encoding used for content hashes.
//
// # Results
//
// JSON has no representation for infinity. [ResultDocument] and
// [MatrixDocument] encode unreached distances and missing edges as null and
// are shared by the HTTP API and the result cache. A [Distance] driven to
// -Inf by a negative cycle encodes as "-inf".
package io
