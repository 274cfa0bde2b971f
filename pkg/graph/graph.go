package graph

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
)

var (
	// ErrNotFound is the category of every lookup failure in this package.
	// Test for it with errors.Is when the specific kind does not matter.
	ErrNotFound = errors.New("not found")

	// ErrNodeNotFound is returned when an operation references a node that is
	// not in the graph.
	ErrNodeNotFound = fmt.Errorf("node %w", ErrNotFound)

	// ErrEdgeNotFound is returned by [Graph.RemoveEdge] and [Graph.Weight] when
	// the requested edge does not exist.
	ErrEdgeNotFound = fmt.Errorf("edge %w", ErrNotFound)

	// ErrInvalidWeight is returned by [Graph.AddEdge] for NaN or infinite
	// weights. Infinity is reserved for "unreached" in distance vectors.
	ErrInvalidWeight = errors.New("edge weight must be a finite number")

	// ErrInvalidMode is returned when parsing an unknown mode name.
	ErrInvalidMode = errors.New("invalid graph mode")
)

// arc is one outgoing adjacency entry. seq is shared by both directions of
// an undirected edge and survives weight overwrites.
type arc[N comparable] struct {
	to     N
	weight float64
	seq    uint64
}

// Edge is a weighted edge as reported by [Graph.Edges]. In undirected graphs
// From and To carry no direction; each edge is reported once.
type Edge[N comparable] struct {
	From   N
	To     N
	Weight float64
}

// Graph is a weighted directed or undirected graph over node IDs of type N.
//
// The zero value is not usable - create graphs with [New] or [NewFunc].
// Graph is not safe for concurrent use without external synchronization.
type Graph[N comparable] struct {
	mode    Mode
	compare func(a, b N) int
	nodes   map[N]struct{}
	adj     map[N][]arc[N] // node -> outgoing arcs in insertion order
	edges   int            // logical edge count (undirected pairs count once)
	nextSeq uint64
}

// New creates an empty graph whose nodes are ordered by cmp.Compare.
func New[N cmp.Ordered](mode Mode) *Graph[N] {
	return NewFunc[N](mode, cmp.Compare[N])
}

// NewFunc creates an empty graph whose nodes are ordered by compare, which
// must define a total order consistent with ==.
func NewFunc[N comparable](mode Mode, compare func(a, b N) int) *Graph[N] {
	return &Graph[N]{
		mode:    mode,
		compare: compare,
		nodes:   make(map[N]struct{}),
		adj:     make(map[N][]arc[N]),
	}
}

// Mode reports whether the graph is directed or undirected.
func (g *Graph[N]) Mode() Mode { return g.mode }

// Compare returns the total order used to sort nodes.
func (g *Graph[N]) Compare() func(a, b N) int { return g.compare }

// AddNode inserts id if it is absent. Adding an existing node is a no-op.
func (g *Graph[N]) AddNode(id N) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
}

// RemoveNode deletes id together with every edge incident to it.
// Returns ErrNodeNotFound if id is absent.
//
// This is O(N+E): every adjacency list is scanned for arcs pointing at id.
func (g *Graph[N]) RemoveNode(id N) error {
	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("remove %v: %w", id, ErrNodeNotFound)
	}

	for src, arcs := range g.adj {
		if src == id {
			continue
		}
		kept := slices.DeleteFunc(arcs, func(a arc[N]) bool { return a.to == id })
		if len(kept) != len(arcs) && g.mode == Directed {
			g.edges -= len(arcs) - len(kept)
		}
		g.setArcs(src, kept)
	}

	// Outgoing arcs of id: in undirected mode these are the only place each
	// incident pair is counted once; directed arcs are counted here too.
	g.edges -= len(g.adj[id])
	delete(g.adj, id)
	delete(g.nodes, id)
	return nil
}

// AddEdge inserts an edge from u to v with weight w, or overwrites the weight
// if the edge already exists. In [Undirected] mode the reverse direction is
// written as well.
//
// Returns ErrNodeNotFound if u or v is absent, or ErrInvalidWeight if w is NaN
// or infinite. On error the graph is unchanged.
func (g *Graph[N]) AddEdge(u, v N, w float64) error {
	if _, ok := g.nodes[u]; !ok {
		return fmt.Errorf("edge %v->%v: source %v: %w", u, v, u, ErrNodeNotFound)
	}
	if _, ok := g.nodes[v]; !ok {
		return fmt.Errorf("edge %v->%v: target %v: %w", u, v, v, ErrNodeNotFound)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("edge %v->%v: %w: %v", u, v, ErrInvalidWeight, w)
	}

	seq := g.nextSeq
	added := g.putArc(u, v, w, seq)
	if g.mode == Undirected && u != v {
		g.putArc(v, u, w, seq)
	}
	if added {
		g.edges++
		g.nextSeq++
	}
	return nil
}

// RemoveEdge deletes the edge from u to v. In [Undirected] mode both
// directions are removed. Returns ErrEdgeNotFound if there is no such edge.
func (g *Graph[N]) RemoveEdge(u, v N) error {
	i := g.arcIndex(u, v)
	if i < 0 {
		return fmt.Errorf("remove %v->%v: %w", u, v, ErrEdgeNotFound)
	}
	g.setArcs(u, slices.Delete(g.adj[u], i, i+1))
	if g.mode == Undirected && u != v {
		if j := g.arcIndex(v, u); j >= 0 {
			g.setArcs(v, slices.Delete(g.adj[v], j, j+1))
		}
	}
	g.edges--
	return nil
}

// Neighbors returns a lazy sequence of (neighbor, weight) pairs reachable
// from u by one outgoing edge, in stored order. The sequence is empty when u
// has no outgoing edges. Returns ErrNodeNotFound if u is absent.
//
// The sequence reads the graph as it is when iterated; do not mutate the
// graph while ranging over it.
func (g *Graph[N]) Neighbors(u N) (iter.Seq2[N, float64], error) {
	if _, ok := g.nodes[u]; !ok {
		return nil, fmt.Errorf("neighbors of %v: %w", u, ErrNodeNotFound)
	}
	return func(yield func(N, float64) bool) {
		for _, a := range g.adj[u] {
			if !yield(a.to, a.weight) {
				return
			}
		}
	}, nil
}

// Nodes returns every node sorted by the graph's order.
func (g *Graph[N]) Nodes() []N {
	out := make([]N, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	slices.SortFunc(out, g.compare)
	return out
}

// Edges returns all edges ordered by source node, then by adjacency position.
// In [Undirected] mode each edge is reported once, from the endpoint that
// sorts first (self-loops once, as stored).
func (g *Graph[N]) Edges() []Edge[N] {
	out := make([]Edge[N], 0, g.edges)
	for _, u := range g.Nodes() {
		for _, a := range g.adj[u] {
			if g.mode == Undirected && g.compare(u, a.to) > 0 {
				continue
			}
			out = append(out, Edge[N]{From: u, To: a.to, Weight: a.weight})
		}
	}
	return out
}

// InsertionOrder returns every edge in the order it was first added.
// Re-adding these edges to a graph with the same nodes and mode reproduces
// g's adjacency order exactly, which keeps tie-breaking in path algorithms
// stable across a save and load.
func (g *Graph[N]) InsertionOrder() []Edge[N] {
	type entry struct {
		Edge[N]
		seq uint64
	}
	var all []entry
	for _, u := range g.Nodes() {
		for _, a := range g.adj[u] {
			if g.mode == Undirected && g.compare(u, a.to) > 0 {
				continue
			}
			all = append(all, entry{Edge[N]{From: u, To: a.to, Weight: a.weight}, a.seq})
		}
	}
	slices.SortFunc(all, func(a, b entry) int { return cmp.Compare(a.seq, b.seq) })

	out := make([]Edge[N], len(all))
	for i, e := range all {
		out[i] = e.Edge
	}
	return out
}

// HasNode reports whether id is in the graph.
func (g *Graph[N]) HasNode(id N) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether an edge from u to v exists. Undirected edges
// answer true in both directions.
func (g *Graph[N]) HasEdge(u, v N) bool { return g.arcIndex(u, v) >= 0 }

// Weight returns the weight of the edge from u to v, or ErrEdgeNotFound.
func (g *Graph[N]) Weight(u, v N) (float64, error) {
	i := g.arcIndex(u, v)
	if i < 0 {
		return 0, fmt.Errorf("weight %v->%v: %w", u, v, ErrEdgeNotFound)
	}
	return g.adj[u][i].weight, nil
}

// NodeCount returns the number of nodes.
func (g *Graph[N]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges. An undirected edge counts once.
func (g *Graph[N]) EdgeCount() int { return g.edges }

// Clone returns an independent deep copy sharing no mutable state with g.
func (g *Graph[N]) Clone() *Graph[N] {
	c := NewFunc[N](g.mode, g.compare)
	for id := range g.nodes {
		c.nodes[id] = struct{}{}
	}
	for id, arcs := range g.adj {
		c.adj[id] = slices.Clone(arcs)
	}
	c.edges = g.edges
	c.nextSeq = g.nextSeq
	return c
}

// putArc writes u->v with weight w and reports whether it was newly added.
func (g *Graph[N]) putArc(u, v N, w float64, seq uint64) bool {
	if i := g.arcIndex(u, v); i >= 0 {
		g.adj[u][i].weight = w
		return false
	}
	g.adj[u] = append(g.adj[u], arc[N]{to: v, weight: w, seq: seq})
	return true
}

func (g *Graph[N]) arcIndex(u, v N) int {
	return slices.IndexFunc(g.adj[u], func(a arc[N]) bool { return a.to == v })
}

func (g *Graph[N]) setArcs(u N, arcs []arc[N]) {
	if len(arcs) == 0 {
		delete(g.adj, u)
		return
	}
	g.adj[u] = arcs
}
