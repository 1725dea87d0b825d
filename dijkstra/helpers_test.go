package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sptree/graph"
)

// referenceGraph is the six-vertex directed graph of the reference program:
// 0→1:2, 0→2:8, 1→2:5, 1→3:6, 2→3:3, 2→4:2, 3→4:1, 3→5:9, 4→5:3.
func referenceGraph(t testing.TB) *graph.Graph {
	t.Helper()
	g, err := graph.New(6)
	require.NoError(t, err)
	for _, e := range []graph.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 0, To: 2, Weight: 8},
		{From: 1, To: 2, Weight: 5},
		{From: 1, To: 3, Weight: 6},
		{From: 2, To: 3, Weight: 3},
		{From: 2, To: 4, Weight: 2},
		{From: 3, To: 4, Weight: 1},
		{From: 3, To: 5, Weight: 9},
		{From: 4, To: 5, Weight: 3},
	} {
		require.NoError(t, g.SetEdge(e.From, e.To, e.Weight))
	}

	return g
}
