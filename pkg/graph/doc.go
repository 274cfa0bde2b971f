// Package graph provides the weighted graph store that shortest-path runs
// and matrix projections operate on.
//
// # Overview
//
// A [Graph] holds a set of nodes and a set of weighted edges. Every graph is
// created in one [Mode], either [Directed] or [Undirected], and keeps that mode
// for its lifetime. Converting a graph to the other mode means building a new
// one.
//
// Node identifiers are any comparable type paired with a total order. Use [New]
// for cmp.Ordered types (ints, strings, floats), or [NewFunc] to supply the
// order explicitly. [CompareNatural] is an order for string IDs that sorts
// numeric-looking IDs by value, so "2" comes before "10".
//
// # Basic Usage
//
//	g := graph.New[int](graph.Undirected)
//	g.AddNode(1)
//	g.AddNode(2)
//	if err := g.AddEdge(1, 2, 4.5); err != nil {
//	    return err
//	}
//	next, err := g.Neighbors(1)
//	for v, w := range next {
//	    fmt.Println(v, w)
//	}
//
// # Adjacency Order
//
// Each node keeps its outgoing edges in insertion order. Overwriting the weight
// of an existing edge keeps its position. Algorithms that iterate
// [Graph.Neighbors] therefore see a stable order, which matters when several
// equal-cost paths compete.
//
// # Atomicity
//
// Every mutating method validates all of its inputs before touching state.
// A call that returns an error leaves the graph exactly as it was. In
// [Undirected] mode, [Graph.AddEdge] and [Graph.RemoveEdge] always apply both
// directions together.
//
// # Errors
//
// Lookups of absent nodes and edges fail with [ErrNodeNotFound] and
// [ErrEdgeNotFound]. Both wrap [ErrNotFound], so callers that only care about
// the category can test errors.Is(err, graph.ErrNotFound).
//
// # Concurrency
//
// Graph is not safe for concurrent use. Callers must serialize mutations with
// any reads, including in-flight algorithm runs over the same graph.
package graph
