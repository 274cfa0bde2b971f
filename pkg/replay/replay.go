// Package replay turns a shortest-path result into frames for step-by-step
// display.
//
// Frame i shows History[i]. An edge u->v is settled in a frame when v
// already carries its final distance and u has been reached; settled edges
// grow from frame to frame as the passes converge. After the last frame,
// displays highlight [Replay.Tree], the final shortest-path tree.
package replay

import (
	"math"

	"github.com/matzehuels/fordview/pkg/bellmanford"
	"github.com/matzehuels/fordview/pkg/graph"
)

// Frame is one step of a replay.
type Frame[N comparable] struct {
	// Index is the position in History; 0 is the state before any pass.
	Index int

	Distances bellmanford.Distances[N]

	// Changed lists nodes whose distance differs from the previous frame,
	// in node order. Always empty for frame 0.
	Changed []N

	// Settled lists edges whose target holds its final distance and whose
	// source is reached. Undirected edges are oriented along the tree when
	// they belong to it, otherwise in the direction that satisfied the rule.
	Settled []graph.Edge[N]
}

// Replay is the full sequence of frames for one run.
type Replay[N comparable] struct {
	Source        N
	Nodes         []N
	Frames        []Frame[N]
	Tree          []graph.Edge[N]
	NegativeCycle bool
}

// Build computes frames for res, which must come from a run over g.
func Build[N comparable](g *graph.Graph[N], res *bellmanford.Result[N]) *Replay[N] {
	r := &Replay[N]{
		Source:        res.Source,
		Nodes:         res.Nodes,
		Frames:        make([]Frame[N], len(res.History)),
		Tree:          res.TreeEdges(),
		NegativeCycle: res.NegativeCycle,
	}
	edges := g.Edges()
	undirected := g.Mode() == graph.Undirected
	for i, snap := range res.History {
		f := Frame[N]{Index: i, Distances: snap}
		if i > 0 {
			prev := res.History[i-1]
			for _, n := range res.Nodes {
				if prev[n] != snap[n] {
					f.Changed = append(f.Changed, n)
				}
			}
		}
		for _, e := range edges {
			if undirected && r.InTree(e.To, e.From) {
				e.From, e.To = e.To, e.From
			}
			switch {
			case settled(snap, res.Distances, e.From, e.To):
				f.Settled = append(f.Settled, e)
			case undirected && settled(snap, res.Distances, e.To, e.From):
				f.Settled = append(f.Settled, graph.Edge[N]{From: e.To, To: e.From, Weight: e.Weight})
			}
		}
		r.Frames[i] = f
	}
	return r
}

// Len returns the number of frames.
func (r *Replay[N]) Len() int { return len(r.Frames) }

// Frame returns frame i clamped to the valid range.
func (r *Replay[N]) Frame(i int) Frame[N] {
	if i < 0 {
		i = 0
	}
	if i >= len(r.Frames) {
		i = len(r.Frames) - 1
	}
	return r.Frames[i]
}

// InTree reports whether u->v is a tree edge. Undirected callers should ask
// in both directions.
func (r *Replay[N]) InTree(u, v N) bool {
	for _, e := range r.Tree {
		if e.From == u && e.To == v {
			return true
		}
	}
	return false
}

func settled[N comparable](snap, final bellmanford.Distances[N], u, v N) bool {
	return snap[v] == final[v] && !math.IsInf(snap[u], 1)
}
