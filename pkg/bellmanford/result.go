package bellmanford

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/matzehuels/fordview/pkg/graph"
)

var (
	// ErrSourceNotFound is returned by [Run] when the source is not a node of
	// the graph.
	ErrSourceNotFound = fmt.Errorf("source %w", graph.ErrNotFound)

	// ErrTargetNotFound is returned by [Result.PathTo] for unknown targets.
	ErrTargetNotFound = fmt.Errorf("target %w", graph.ErrNotFound)

	// ErrUnreachable is returned by [Result.PathTo] when the target has no
	// finite distance from the source.
	ErrUnreachable = errors.New("target unreachable from source")

	// ErrCycleInPath is returned by [Result.PathTo] when the parent chain loops
	// before reaching the source. This only happens when a negative cycle is
	// reachable from the source.
	ErrCycleInPath = errors.New("parent chain contains a cycle")
)

// Distances maps every node to its tentative distance from the source.
// Unreached nodes hold +Inf.
type Distances[N comparable] map[N]float64

// Reached reports whether n has a finite distance.
func (d Distances[N]) Reached(n N) bool {
	v, ok := d[n]
	return ok && !math.IsInf(v, 1)
}

// Relaxation records one successful relax step.
type Relaxation[N comparable] struct {
	Pass   int // 1-based pass number
	From   N
	To     N
	Weight float64
	Before float64 // distance of To before the step (may be +Inf)
	After  float64
}

// Result is the outcome of one [Run]. It is never modified after Run returns.
type Result[N comparable] struct {
	Source N

	// Nodes lists every node in the order passes visited them.
	Nodes []N

	// Distances holds the final distance labels.
	Distances Distances[N]

	// Parents maps a node to its predecessor on the best known path. Nodes
	// without a predecessor, including the source, are absent.
	Parents map[N]N

	// NegativeCycle is set when the verification pass found an edge that
	// could still be relaxed.
	NegativeCycle bool

	// Violation is the first edge the verification pass could still relax.
	// Nil unless NegativeCycle is set.
	Violation *graph.Edge[N]

	// History holds one snapshot before any relaxation followed by one per
	// pass, len(Nodes) entries in total.
	History []Distances[N]

	// Relaxations lists every relax step in execution order.
	Relaxations []Relaxation[N]
}

// Parent returns the predecessor of n, if any.
func (r *Result[N]) Parent(n N) (N, bool) {
	p, ok := r.Parents[n]
	return p, ok
}

// Distance returns the final distance of n. Unknown nodes report +Inf and
// false.
func (r *Result[N]) Distance(n N) (float64, bool) {
	d, ok := r.Distances[n]
	if !ok {
		return math.Inf(1), false
	}
	return d, true
}

// PathTo follows parent pointers back from t and returns the path from the
// source to t, both ends included.
func (r *Result[N]) PathTo(t N) ([]N, error) {
	d, ok := r.Distances[t]
	if !ok {
		return nil, fmt.Errorf("path to %v: %w", t, ErrTargetNotFound)
	}
	if math.IsInf(d, 1) {
		return nil, fmt.Errorf("path to %v: %w", t, ErrUnreachable)
	}

	path := []N{t}
	seen := map[N]bool{t: true}
	for cur := t; cur != r.Source; {
		p, ok := r.Parents[cur]
		if !ok {
			return nil, fmt.Errorf("path to %v: %w", t, ErrUnreachable)
		}
		if seen[p] {
			return nil, fmt.Errorf("path to %v: %w at %v", t, ErrCycleInPath, p)
		}
		seen[p] = true
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)
	return path, nil
}

// TreeEdges returns the shortest-path tree as (parent, node) edges in node
// order. Each weight is the one used by the last relax step into that node.
func (r *Result[N]) TreeEdges() []graph.Edge[N] {
	last := make(map[N]float64, len(r.Parents))
	for _, rx := range r.Relaxations {
		if r.Parents[rx.To] == rx.From {
			last[rx.To] = rx.Weight
		}
	}

	var out []graph.Edge[N]
	for _, n := range r.Nodes {
		p, ok := r.Parents[n]
		if !ok {
			continue
		}
		out = append(out, graph.Edge[N]{From: p, To: n, Weight: last[n]})
	}
	return out
}

// Reachable returns the nodes with a finite distance, in node order.
func (r *Result[N]) Reachable() []N {
	var out []N
	for _, n := range r.Nodes {
		if r.Distances.Reached(n) {
			out = append(out, n)
		}
	}
	return out
}

func (d Distances[N]) clone() Distances[N] {
	return maps.Clone(d)
}
