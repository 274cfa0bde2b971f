package bellmanford

import (
	"fmt"
	"math"
	"time"

	"github.com/matzehuels/fordview/pkg/graph"
)

// Run computes single-source shortest paths from source over g.
//
// Run performs exactly NodeCount()-1 relaxation passes, with no early exit
// when a pass changes nothing, and records a History snapshot before the
// first pass and after each one. A final verification pass then stops at the
// first edge that can still be relaxed and sets NegativeCycle.
//
// Nodes are visited in g's order and each node's neighbors in stored order.
// Only strictly shorter distances replace a label, so among equal-cost paths
// the first one discovered keeps its parent.
//
// Returns ErrSourceNotFound if source is not in g. g must not be mutated
// while Run executes.
func Run[N comparable](g *graph.Graph[N], source N, opts ...Option) (*Result[N], error) {
	cfg := buildOptions(opts)

	if !g.HasNode(source) {
		err := fmt.Errorf("run from %v: %w", source, ErrSourceNotFound)
		cfg.Hooks.OnRunComplete(cfg.Context, g.NodeCount(), false, 0, err)
		return nil, err
	}

	start := time.Now()
	cfg.Hooks.OnRunStart(cfg.Context, g.NodeCount(), g.EdgeCount())

	r := &runner[N]{g: g, opts: cfg}
	r.init(source)
	for pass := 1; pass < len(r.res.Nodes); pass++ {
		n := r.pass(pass)
		r.res.History = append(r.res.History, r.res.Distances.clone())
		cfg.Logger.Debug("bellman-ford pass", "pass", pass, "relaxed", n)
	}
	r.verify()

	cfg.Hooks.OnRunComplete(cfg.Context, len(r.res.Nodes), r.res.NegativeCycle, time.Since(start), nil)
	return r.res, nil
}

// runner holds the mutable state of a single Run.
type runner[N comparable] struct {
	g    *graph.Graph[N]
	opts Options
	res  *Result[N]
}

// init labels the source 0 and every other node +Inf, and records the
// initial snapshot.
func (r *runner[N]) init(source N) {
	nodes := r.g.Nodes()
	dist := make(Distances[N], len(nodes))
	for _, n := range nodes {
		dist[n] = math.Inf(1)
	}
	dist[source] = 0

	r.res = &Result[N]{
		Source:    source,
		Nodes:     nodes,
		Distances: dist,
		Parents:   make(map[N]N),
		History:   make([]Distances[N], 0, len(nodes)),
	}
	r.res.History = append(r.res.History, dist.clone())
}

// pass relaxes every edge once and returns how many labels improved.
func (r *runner[N]) pass(pass int) int {
	relaxed := 0
	r.edges(func(u, v N, w float64) bool {
		if r.relax(pass, u, v, w) {
			relaxed++
		}
		return true
	})
	return relaxed
}

// relax lowers dist[v] through u when that is strictly shorter.
func (r *runner[N]) relax(pass int, u, v N, w float64) bool {
	dist := r.res.Distances
	du := dist[u]
	if math.IsInf(du, 1) {
		return false
	}
	cand := du + w
	if !(cand < dist[v]) {
		return false
	}
	r.res.Relaxations = append(r.res.Relaxations, Relaxation[N]{
		Pass:   pass,
		From:   u,
		To:     v,
		Weight: w,
		Before: dist[v],
		After:  cand,
	})
	dist[v] = cand
	r.res.Parents[v] = u
	return true
}

// verify scans all edges once more without relaxing and flags the first
// edge that still improves a label.
func (r *runner[N]) verify() {
	dist := r.res.Distances
	r.edges(func(u, v N, w float64) bool {
		if math.IsInf(dist[u], 1) || !(dist[u]+w < dist[v]) {
			return true
		}
		r.res.NegativeCycle = true
		r.res.Violation = &graph.Edge[N]{From: u, To: v, Weight: w}
		return false
	})
}

// edges walks every reached node's outgoing edges in pass order. fn returns
// false to stop.
func (r *runner[N]) edges(fn func(u, v N, w float64) bool) {
	for _, u := range r.res.Nodes {
		if math.IsInf(r.res.Distances[u], 1) {
			continue
		}
		next, err := r.g.Neighbors(u)
		if err != nil {
			// Nodes came from g and g is not mutated during a run.
			panic(err)
		}
		for v, w := range next {
			if !fn(u, v, w) {
				return
			}
		}
	}
}
