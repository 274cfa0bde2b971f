package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type pair struct {
	To     int
	Weight float64
}

func collect(t *testing.T, g *Graph[int], u int) []pair {
	t.Helper()
	next, err := g.Neighbors(u)
	require.NoError(t, err)
	var out []pair
	for v, w := range next {
		out = append(out, pair{To: v, Weight: w})
	}
	return out
}

func TestAddNodeIdempotent(t *testing.T) {
	g := New[int](Directed)
	g.AddNode(1)
	g.AddNode(1)
	g.AddNode(2)

	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, []int{1, 2}, g.Nodes())
}

func TestNodesSorted(t *testing.T) {
	g := NewFunc[string](Undirected, CompareNatural)
	for _, n := range []string{"10", "b", "2", "a", "1"} {
		g.AddNode(n)
	}
	require.Equal(t, []string{"1", "2", "10", "a", "b"}, g.Nodes())
}

func TestAddEdgeDirected(t *testing.T) {
	g := New[int](Directed)
	g.AddNode(1)
	g.AddNode(2)
	require.NoError(t, g.AddEdge(1, 2, -3.5))

	require.True(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(2, 1))
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, []pair{{To: 2, Weight: -3.5}}, collect(t, g, 1))
	require.Empty(t, collect(t, g, 2))
}

func TestAddEdgeUndirectedMirrors(t *testing.T) {
	g := New[int](Undirected)
	g.AddNode(1)
	g.AddNode(2)
	require.NoError(t, g.AddEdge(1, 2, 4))

	w, err := g.Weight(2, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, w)
	require.Equal(t, 1, g.EdgeCount())

	require.NoError(t, g.AddEdge(2, 1, 9))
	w, _ = g.Weight(1, 2)
	require.Equal(t, 9.0, w, "one weight per unordered pair")
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdgeOverwriteKeepsPosition(t *testing.T) {
	g := New[int](Directed)
	for n := 1; n <= 4; n++ {
		g.AddNode(n)
	}
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 4, 1))
	require.NoError(t, g.AddEdge(1, 2, 7))

	require.Equal(t, []pair{
		{To: 3, Weight: 1},
		{To: 2, Weight: 7},
		{To: 4, Weight: 1},
	}, collect(t, g, 1))
	require.Equal(t, 3, g.EdgeCount())
}

func TestAddEdgeErrorsLeaveGraphUnchanged(t *testing.T) {
	tests := []struct {
		name string
		u, v int
		w    float64
		want error
	}{
		{"missing source", 9, 1, 1, ErrNodeNotFound},
		{"missing target", 1, 9, 1, ErrNodeNotFound},
		{"nan", 1, 2, math.NaN(), ErrInvalidWeight},
		{"+inf", 1, 2, math.Inf(1), ErrInvalidWeight},
		{"-inf", 1, 2, math.Inf(-1), ErrInvalidWeight},
	}
	for _, mode := range []Mode{Directed, Undirected} {
		for _, tt := range tests {
			t.Run(mode.String()+"/"+tt.name, func(t *testing.T) {
				g := New[int](mode)
				g.AddNode(1)
				g.AddNode(2)
				require.NoError(t, g.AddEdge(1, 2, 5))
				before := g.Edges()

				err := g.AddEdge(tt.u, tt.v, tt.w)
				require.ErrorIs(t, err, tt.want)
				require.Equal(t, before, g.Edges())
				require.Equal(t, []int{1, 2}, g.Nodes())
			})
		}
	}
}

func TestErrorsWrapNotFound(t *testing.T) {
	g := New[int](Directed)
	g.AddNode(1)

	err := g.AddEdge(1, 2, 1)
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "2")

	require.ErrorIs(t, g.RemoveEdge(1, 1), ErrEdgeNotFound)
	require.ErrorIs(t, g.RemoveEdge(1, 1), ErrNotFound)
	require.ErrorIs(t, g.RemoveNode(5), ErrNodeNotFound)

	_, err = g.Neighbors(3)
	require.ErrorIs(t, err, ErrNodeNotFound)

	_, err = g.Weight(1, 1)
	require.ErrorIs(t, err, ErrEdgeNotFound)
}

func TestRemoveEdge(t *testing.T) {
	t.Run("directed keeps reverse", func(t *testing.T) {
		g := New[int](Directed)
		g.AddNode(1)
		g.AddNode(2)
		require.NoError(t, g.AddEdge(1, 2, 1))
		require.NoError(t, g.AddEdge(2, 1, 2))

		require.NoError(t, g.RemoveEdge(1, 2))
		require.False(t, g.HasEdge(1, 2))
		require.True(t, g.HasEdge(2, 1))
		require.Equal(t, 1, g.EdgeCount())
	})

	t.Run("undirected removes both", func(t *testing.T) {
		g := New[int](Undirected)
		g.AddNode(1)
		g.AddNode(2)
		require.NoError(t, g.AddEdge(1, 2, 1))

		require.NoError(t, g.RemoveEdge(2, 1))
		require.False(t, g.HasEdge(1, 2))
		require.False(t, g.HasEdge(2, 1))
		require.Zero(t, g.EdgeCount())
		require.ErrorIs(t, g.RemoveEdge(1, 2), ErrEdgeNotFound)
	})
}

func TestRemoveNodeDropsIncidentEdges(t *testing.T) {
	for _, mode := range []Mode{Directed, Undirected} {
		t.Run(mode.String(), func(t *testing.T) {
			g := New[int](mode)
			for n := 1; n <= 4; n++ {
				g.AddNode(n)
			}
			require.NoError(t, g.AddEdge(1, 2, 1))
			require.NoError(t, g.AddEdge(2, 3, 1))
			require.NoError(t, g.AddEdge(3, 2, 1))
			require.NoError(t, g.AddEdge(2, 2, 1))
			require.NoError(t, g.AddEdge(3, 4, 1))

			require.NoError(t, g.RemoveNode(2))

			require.False(t, g.HasNode(2))
			require.Equal(t, []int{1, 3, 4}, g.Nodes())
			for _, e := range g.Edges() {
				require.NotEqual(t, 2, e.From)
				require.NotEqual(t, 2, e.To)
			}
			require.Equal(t, []Edge[int]{{From: 3, To: 4, Weight: 1}}, g.Edges())
			require.Equal(t, 1, g.EdgeCount())
		})
	}
}

func TestSelfLoop(t *testing.T) {
	g := New[int](Undirected)
	g.AddNode(1)
	require.NoError(t, g.AddEdge(1, 1, 3))

	require.Equal(t, []pair{{To: 1, Weight: 3}}, collect(t, g, 1))
	require.Equal(t, 1, g.EdgeCount())
	require.NoError(t, g.RemoveEdge(1, 1))
	require.Zero(t, g.EdgeCount())
}

func TestEdgesListsUndirectedOnce(t *testing.T) {
	g := New[int](Undirected)
	for n := 1; n <= 3; n++ {
		g.AddNode(n)
	}
	require.NoError(t, g.AddEdge(2, 1, 1))
	require.NoError(t, g.AddEdge(3, 2, 2))

	require.Equal(t, []Edge[int]{
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 2},
	}, g.Edges())
}

func TestNeighborsStopsEarly(t *testing.T) {
	g := New[int](Directed)
	for n := 1; n <= 4; n++ {
		g.AddNode(n)
	}
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(1, 4, 1))

	next, err := g.Neighbors(1)
	require.NoError(t, err)
	var seen []int
	for v := range next {
		seen = append(seen, v)
		if len(seen) == 2 {
			break
		}
	}
	require.Equal(t, []int{2, 3}, seen)
}

func TestClone(t *testing.T) {
	g := New[int](Directed)
	g.AddNode(1)
	g.AddNode(2)
	require.NoError(t, g.AddEdge(1, 2, 1))

	c := g.Clone()
	require.NoError(t, c.AddEdge(2, 1, 5))
	require.NoError(t, c.AddEdge(1, 2, 8))
	c.AddNode(3)

	require.False(t, g.HasEdge(2, 1))
	w, _ := g.Weight(1, 2)
	require.Equal(t, 1.0, w)
	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, Directed, c.Mode())
	require.Equal(t, 2, c.EdgeCount())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		err  bool
	}{
		{"directed", Directed, false},
		{"D", Directed, false},
		{"digraph", Directed, false},
		{"Undirected", Undirected, false},
		{"u", Undirected, false},
		{"", Undirected, false},
		{"mixed", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.err {
				require.ErrorIs(t, err, ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestModeText(t *testing.T) {
	b, err := Directed.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "directed", string(b))

	var m Mode
	require.NoError(t, m.UnmarshalText([]byte("undirected")))
	require.Equal(t, Undirected, m)

	_, err = Mode(7).MarshalText()
	require.ErrorIs(t, err, ErrInvalidMode)
	require.Equal(t, "Mode(7)", Mode(7).String())
}

func TestInsertionOrderRebuildsAdjacency(t *testing.T) {
	for _, mode := range []Mode{Directed, Undirected} {
		t.Run(mode.String(), func(t *testing.T) {
			g := New[int](mode)
			for n := 1; n <= 4; n++ {
				g.AddNode(n)
			}
			require.NoError(t, g.AddEdge(2, 4, 1))
			require.NoError(t, g.AddEdge(3, 2, 2))
			require.NoError(t, g.AddEdge(1, 2, 3))
			require.NoError(t, g.AddEdge(4, 1, 4))
			require.NoError(t, g.AddEdge(2, 4, 9)) // overwrite keeps its slot
			require.NoError(t, g.AddEdge(3, 1, 5))
			require.NoError(t, g.RemoveEdge(3, 1))

			order := g.InsertionOrder()
			require.Len(t, order, g.EdgeCount())

			r := New[int](mode)
			for _, n := range g.Nodes() {
				r.AddNode(n)
			}
			for _, e := range order {
				require.NoError(t, r.AddEdge(e.From, e.To, e.Weight))
			}
			for _, n := range g.Nodes() {
				require.Equal(t, collect(t, g, n), collect(t, r, n), "node %d", n)
			}
		})
	}
}
