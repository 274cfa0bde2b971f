package presets

import (
	"errors"
	"testing"

	"github.com/matzehuels/fordview/pkg/bellmanford"
	"github.com/matzehuels/fordview/pkg/graph"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			g, err := ByName(name)
			if err != nil {
				t.Fatalf("ByName(%q): %v", name, err)
			}
			if g.NodeCount() == 0 {
				t.Error("preset has no nodes")
			}
		})
	}

	if _, err := ByName("nope"); !errors.Is(err, ErrUnknown) || !errors.Is(err, graph.ErrNotFound) {
		t.Errorf("ByName(nope) error = %v, want ErrUnknown", err)
	}
}

func TestByNameReturnsCopies(t *testing.T) {
	a, _ := ByName("errands")
	if err := a.RemoveNode("Home"); err != nil {
		t.Fatal(err)
	}
	b, _ := ByName("ERRANDS")
	if !b.HasNode("Home") {
		t.Error("mutating one preset leaked into the next")
	}
}

func TestPresetShapes(t *testing.T) {
	tests := []struct {
		name         string
		g            *graph.Graph[string]
		mode         graph.Mode
		nodes, edges int
	}{
		{"undirected", Undirected(), graph.Undirected, 5, 5},
		{"directed", Directed(), graph.Directed, 7, 12},
		{"errands", Errands(), graph.Undirected, 5, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.g.Mode() != tt.mode {
				t.Errorf("mode = %v, want %v", tt.g.Mode(), tt.mode)
			}
			if tt.g.NodeCount() != tt.nodes || tt.g.EdgeCount() != tt.edges {
				t.Errorf("got %d nodes / %d edges, want %d / %d",
					tt.g.NodeCount(), tt.g.EdgeCount(), tt.nodes, tt.edges)
			}
		})
	}
}

func TestErrandsDistances(t *testing.T) {
	res, err := bellmanford.Run(Errands(), "Home")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"Home": 0, "Grocery": 2, "Work": 5, "Gym": 8, "Park": 9}
	for n, d := range want {
		if res.Distances[n] != d {
			t.Errorf("distance(%s) = %g, want %g", n, res.Distances[n], d)
		}
	}
	if res.NegativeCycle {
		t.Error("unexpected negative cycle")
	}
}

func TestDirectedHasNoNegativeCycle(t *testing.T) {
	res, err := bellmanford.Run(Directed(), "1")
	if err != nil {
		t.Fatal(err)
	}
	if res.NegativeCycle {
		t.Error("ring sums to 14, no negative cycle expected")
	}
	if got := len(res.Reachable()); got != 7 {
		t.Errorf("reachable = %d, want 7", got)
	}
}
