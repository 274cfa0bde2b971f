// Package presets provides ready-made sample graphs.
package presets

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/fordview/pkg/graph"
)

// ErrUnknown is returned by [ByName] for names not in [Names].
var ErrUnknown = fmt.Errorf("preset %w", graph.ErrNotFound)

type edge struct {
	u, v string
	w    float64
}

var catalog = map[string]func() *graph.Graph[string]{
	"undirected": Undirected,
	"directed":   Directed,
	"errands":    Errands,
}

// Names lists the available presets in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// ByName returns a fresh copy of the named preset.
func ByName(name string) (*graph.Graph[string], error) {
	build, ok := catalog[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknown, name, strings.Join(Names(), ", "))
	}
	return build(), nil
}

// Undirected is a five-node undirected graph with positive weights.
func Undirected() *graph.Graph[string] {
	return build(graph.Undirected, []string{"1", "2", "3", "4", "5"}, []edge{
		{"1", "2", 1}, {"1", "3", 2}, {"2", "3", 3}, {"3", "4", 1}, {"4", "5", 2},
	})
}

// Directed is a seven-node directed graph: the ring 1..7 closed by a -7
// edge back to 1, plus chords skipping one node. The ring sums to 14, so no
// negative cycle exists.
func Directed() *graph.Graph[string] {
	return build(graph.Directed, []string{"1", "2", "3", "4", "5", "6", "7"}, []edge{
		{"1", "2", 1}, {"2", "3", 2}, {"3", "4", 3}, {"4", "5", 4},
		{"5", "6", 5}, {"6", "7", 6}, {"7", "1", -7},
		{"1", "3", 2}, {"2", "4", 3}, {"3", "5", 4}, {"4", "6", 5}, {"5", "7", 6},
	})
}

// Errands models trips between everyday places, weighted in minutes.
func Errands() *graph.Graph[string] {
	return build(graph.Undirected, []string{"Home", "Work", "Grocery", "Gym", "Park"}, []edge{
		{"Home", "Work", 5}, {"Home", "Grocery", 2}, {"Work", "Gym", 3}, {"Work", "Park", 4},
	})
}

func build(mode graph.Mode, nodes []string, edges []edge) *graph.Graph[string] {
	g := graph.NewFunc[string](mode, graph.CompareNatural)
	for _, n := range nodes {
		g.AddNode(n)
	}
	for _, e := range edges {
		if err := g.AddEdge(e.u, e.v, e.w); err != nil {
			panic(fmt.Sprintf("presets: %v", err))
		}
	}
	return g
}
