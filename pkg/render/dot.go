package render

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/fordview/pkg/graph"
	"github.com/matzehuels/fordview/pkg/replay"
)

// Edge and node colors.
const (
	ColorTree    = "red"
	ColorSettled = "forestgreen"
	ColorSource  = "gold"
	ColorChanged = "lightblue"
)

// Options configures DOT generation.
type Options struct {
	// Replay, when set, adds distance labels and edge highlighting.
	Replay *replay.Replay[string]

	// Frame selects the replay frame. Negative values count from the end,
	// so -1 is the final state. Out-of-range values are clamped.
	Frame int

	// HideWeights drops edge weight labels.
	HideWeights bool
}

// ToDOT converts g to Graphviz DOT. Directed graphs become a digraph,
// undirected graphs a plain graph.
func ToDOT(g *graph.Graph[string], opts Options) string {
	var buf bytes.Buffer
	kind, arrow := "digraph", "->"
	if g.Mode() == graph.Undirected {
		kind, arrow = "graph", "--"
	}

	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  layout=dot;\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=12];\n")
	buf.WriteString("\n")

	v := newView(opts)
	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", n, strings.Join(v.nodeAttrs(n), ", "))
	}

	buf.WriteString("\n")
	undirected := g.Mode() == graph.Undirected
	for _, e := range g.Edges() {
		attrs := v.edgeAttrs(e, undirected)
		if !opts.HideWeights {
			attrs = append([]string{fmt.Sprintf("label=%q", FormatWeight(e.Weight))}, attrs...)
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q %s %q;\n", e.From, arrow, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q %s %q [%s];\n", e.From, arrow, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// FormatWeight prints w compactly, with ∞ for +Inf.
func FormatWeight(w float64) string {
	switch {
	case math.IsInf(w, 1):
		return "∞"
	case math.IsInf(w, -1):
		return "-∞"
	}
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// view is the replay state of one frame, resolved for lookups.
type view struct {
	rp      *replay.Replay[string]
	frame   replay.Frame[string]
	final   bool
	settled map[[2]string]bool
	changed map[string]bool
}

func newView(opts Options) *view {
	v := &view{rp: opts.Replay}
	if v.rp == nil || v.rp.Len() == 0 {
		v.rp = nil
		return v
	}
	i := opts.Frame
	if i < 0 {
		i += v.rp.Len()
	}
	v.frame = v.rp.Frame(i)
	v.final = v.frame.Index == v.rp.Len()-1
	v.settled = make(map[[2]string]bool, len(v.frame.Settled))
	for _, e := range v.frame.Settled {
		v.settled[[2]string{e.From, e.To}] = true
	}
	v.changed = make(map[string]bool, len(v.frame.Changed))
	for _, n := range v.frame.Changed {
		v.changed[n] = true
	}
	return v
}

func (v *view) nodeAttrs(n string) []string {
	if v.rp == nil {
		return []string{fmt.Sprintf("label=%q", n)}
	}
	label := n + "\n" + FormatWeight(v.frame.Distances[n])
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case n == v.rp.Source:
		attrs = append(attrs, "fillcolor="+ColorSource)
	case v.changed[n]:
		attrs = append(attrs, "fillcolor="+ColorChanged)
	}
	return attrs
}

func (v *view) edgeAttrs(e graph.Edge[string], undirected bool) []string {
	if v.rp == nil {
		return nil
	}
	match := func(set func(u, w string) bool) bool {
		return set(e.From, e.To) || (undirected && set(e.To, e.From))
	}
	switch {
	case v.final && match(v.rp.InTree):
		return []string{"color=" + ColorTree, "fontcolor=" + ColorTree, "penwidth=2.5"}
	case match(func(u, w string) bool { return v.settled[[2]string{u, w}] }):
		return []string{"color=" + ColorSettled, "penwidth=1.5"}
	}
	return nil
}
