package replay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/fordview/pkg/bellmanford"
	"github.com/matzehuels/fordview/pkg/graph"
	"github.com/matzehuels/fordview/pkg/presets"
)

func TestBuildChain(t *testing.T) {
	// Reverse node order forces one new label per pass.
	g := graph.NewFunc[int](graph.Directed, func(a, b int) int { return b - a })
	for n := 1; n <= 3; n++ {
		g.AddNode(n)
	}
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	res, err := bellmanford.Run(g, 1)
	require.NoError(t, err)
	r := Build(g, res)

	require.Equal(t, 3, r.Len())
	require.Empty(t, r.Frames[0].Changed)
	require.Empty(t, r.Frames[0].Settled, "only the source is final, and 1->2 needs 2 final")

	require.Equal(t, []int{2}, r.Frames[1].Changed)
	require.Equal(t, []graph.Edge[int]{{From: 1, To: 2, Weight: 1}}, r.Frames[1].Settled)

	require.Equal(t, []int{3}, r.Frames[2].Changed)
	require.Len(t, r.Frames[2].Settled, 2)

	require.True(t, r.InTree(1, 2))
	require.True(t, r.InTree(2, 3))
	require.False(t, r.InTree(3, 2))
}

func TestBuildUndirectedOrientation(t *testing.T) {
	g := presets.Errands()
	res, err := bellmanford.Run(g, "Work")
	require.NoError(t, err)
	r := Build(g, res)

	last := r.Frame(r.Len() - 1)
	require.Len(t, last.Settled, g.EdgeCount(), "every edge of a tree graph ends settled")
	for _, e := range last.Settled {
		require.True(t, r.InTree(e.From, e.To), "edge %v should be oriented along the tree", e)
	}
}

func TestFrameClamps(t *testing.T) {
	g := presets.Undirected()
	res, err := bellmanford.Run(g, "1")
	require.NoError(t, err)
	r := Build(g, res)

	require.Equal(t, 0, r.Frame(-3).Index)
	require.Equal(t, r.Len()-1, r.Frame(99).Index)
}

func TestBuildNegativeCycle(t *testing.T) {
	g := graph.New[string](graph.Directed)
	g.AddNode("A")
	g.AddNode("B")
	require.NoError(t, g.AddEdge("A", "B", -1))
	require.NoError(t, g.AddEdge("B", "A", -1))

	res, err := bellmanford.Run(g, "A")
	require.NoError(t, err)
	r := Build(g, res)
	require.True(t, r.NegativeCycle)
	require.Equal(t, 2, r.Len())
	require.Equal(t, []string{"A", "B"}, r.Frames[1].Changed)
}
