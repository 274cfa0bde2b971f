// Package matrix projects a graph onto a dense adjacency-weight matrix.
//
// Rows and columns follow the graph's node order. The diagonal is always 0,
// even when the node has a self-loop, and a missing edge reads as +Inf, the
// same convention distance vectors use for unreached nodes. Undirected graphs
// therefore project to symmetric matrices.
//
// A Matrix is computed on demand and is not kept in sync with the graph.
package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/matzehuels/fordview/pkg/graph"
)

// Matrix is a square weight matrix over a sorted node list.
type Matrix[N comparable] struct {
	Nodes   []N
	Weights [][]float64

	index map[N]int
}

// Project builds the adjacency matrix of g. It never fails.
func Project[N comparable](g *graph.Graph[N]) *Matrix[N] {
	nodes := g.Nodes()
	m := &Matrix[N]{
		Nodes:   nodes,
		Weights: make([][]float64, len(nodes)),
		index:   make(map[N]int, len(nodes)),
	}
	for i, n := range nodes {
		m.index[n] = i
	}

	inf := math.Inf(1)
	for i, u := range nodes {
		row := make([]float64, len(nodes))
		for j := range row {
			row[j] = inf
		}
		row[i] = 0

		next, _ := g.Neighbors(u)
		for v, w := range next {
			if j := m.index[v]; j != i {
				row[j] = w
			}
		}
		m.Weights[i] = row
	}
	return m
}

// Size returns the number of rows (and columns).
func (m *Matrix[N]) Size() int { return len(m.Nodes) }

// Index returns the row of n, or false if n is not in the matrix.
func (m *Matrix[N]) Index(n N) (int, bool) {
	i, ok := m.index[n]
	return i, ok
}

// At returns the cell for (u, v). It reports false when either node is
// unknown.
func (m *Matrix[N]) At(u, v N) (float64, bool) {
	i, ok := m.index[u]
	if !ok {
		return 0, false
	}
	j, ok := m.index[v]
	if !ok {
		return 0, false
	}
	return m.Weights[i][j], true
}

// Dense copies the weights into a gonum matrix. An empty projection returns
// an empty, zero-sized *mat.Dense.
func (m *Matrix[N]) Dense() *mat.Dense {
	n := m.Size()
	if n == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, 0, n*n)
	for _, row := range m.Weights {
		data = append(data, row...)
	}
	return mat.NewDense(n, n, data)
}
