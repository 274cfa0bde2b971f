package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/fordview/pkg/graph"
)

var inf = math.Inf(1)

func TestProjectUndirected(t *testing.T) {
	g := graph.New[int](graph.Undirected)
	for n := 1; n <= 3; n++ {
		g.AddNode(n)
	}
	require.NoError(t, g.AddEdge(1, 2, 4))
	require.NoError(t, g.AddEdge(3, 2, -1))

	m := Project(g)
	require.Equal(t, []int{1, 2, 3}, m.Nodes)
	require.Equal(t, [][]float64{
		{0, 4, inf},
		{4, 0, -1},
		{inf, -1, 0},
	}, m.Weights)
}

func TestProjectDirected(t *testing.T) {
	g := graph.New[string](graph.Directed)
	for _, n := range []string{"c", "a", "b"} {
		g.AddNode(n)
	}
	require.NoError(t, g.AddEdge("a", "b", 2))
	require.NoError(t, g.AddEdge("c", "a", 0))

	m := Project(g)
	require.Equal(t, []string{"a", "b", "c"}, m.Nodes)

	tests := []struct {
		u, v string
		want float64
	}{
		{"a", "b", 2},
		{"b", "a", inf},
		{"c", "a", 0},
		{"a", "c", inf},
		{"b", "b", 0},
	}
	for _, tt := range tests {
		got, ok := m.At(tt.u, tt.v)
		require.True(t, ok)
		require.Equal(t, tt.want, got, "%s->%s", tt.u, tt.v)
	}
}

func TestProjectDiagonalWinsOverSelfLoop(t *testing.T) {
	g := graph.New[int](graph.Directed)
	g.AddNode(1)
	require.NoError(t, g.AddEdge(1, 1, -5))

	got, ok := Project(g).At(1, 1)
	require.True(t, ok)
	require.Zero(t, got)
}

func TestProjectMatchesEdges(t *testing.T) {
	g := graph.New[int](graph.Directed)
	for n := 0; n < 5; n++ {
		g.AddNode(n)
	}
	for _, e := range [][3]int{{0, 1, 3}, {1, 2, -2}, {2, 0, 7}, {4, 3, 1}} {
		require.NoError(t, g.AddEdge(e[0], e[1], float64(e[2])))
	}

	m := Project(g)
	for _, u := range m.Nodes {
		for _, v := range m.Nodes {
			got, _ := m.At(u, v)
			w, err := g.Weight(u, v)
			switch {
			case u == v:
				require.Zero(t, got)
			case err == nil:
				require.Equal(t, w, got)
			default:
				require.True(t, math.IsInf(got, 1))
			}
		}
	}
}

func TestProjectDoesNotTrackGraph(t *testing.T) {
	g := graph.New[int](graph.Directed)
	g.AddNode(1)
	g.AddNode(2)
	m := Project(g)

	require.NoError(t, g.AddEdge(1, 2, 1))
	got, _ := m.At(1, 2)
	require.True(t, math.IsInf(got, 1))
}

func TestAtUnknownNode(t *testing.T) {
	g := graph.New[int](graph.Directed)
	g.AddNode(1)
	m := Project(g)

	_, ok := m.At(1, 2)
	require.False(t, ok)
	_, ok = m.At(3, 1)
	require.False(t, ok)
	_, ok = m.Index(3)
	require.False(t, ok)
}

func TestDense(t *testing.T) {
	g := graph.New[int](graph.Undirected)
	g.AddNode(1)
	g.AddNode(2)
	require.NoError(t, g.AddEdge(1, 2, 3))

	d := Project(g).Dense()
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.True(t, mat.Equal(d, mat.NewDense(2, 2, []float64{0, 3, 3, 0})))
	require.True(t, mat.Equal(d, d.T()), "undirected projection is symmetric")
}

func TestEmptyGraph(t *testing.T) {
	m := Project(graph.New[int](graph.Directed))
	require.Zero(t, m.Size())
	require.Empty(t, m.Weights)

	r, c := m.Dense().Dims()
	require.Zero(t, r)
	require.Zero(t, c)
}
