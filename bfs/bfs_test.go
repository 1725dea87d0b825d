package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sptree/bfs"
	"github.com/katalvlaran/sptree/graph"
)

// cycle4 builds the undirected cycle 0–1–2–3–0 with unit weights.
func cycle4(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.SetUndirectedEdge(i, (i+1)%4, 1))
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(graph.AdjacencyList{}, 0)
	require.ErrorIs(t, err, graph.ErrInvalidOrder)

	g := cycle4(t)
	_, err = bfs.BFS(g, 4)
	require.ErrorIs(t, err, graph.ErrInvalidVertex)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	bad := graph.AdjacencyList{{{From: 0, To: 7, Weight: 1}}}
	_, err = bfs.BFS(bad, 0)
	require.ErrorIs(t, err, graph.ErrInvalidVertex)
}

// TestBFS_CycleDepths checks layering and parents on a 4-cycle.
func TestBFS_CycleDepths(t *testing.T) {
	res, err := bfs.BFS(cycle4(t), 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 2}, res.Order)
	require.Equal(t, []int{0, 1, 2, 1}, res.Depth)
	require.Equal(t, bfs.Unreached, res.Parent[0])
	require.Equal(t, 1, res.Parent[2])

	path, err := res.PathTo(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, path)
}

// TestBFS_Directed ensures heads are only followed along edge direction.
func TestBFS_Directed(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.SetEdge(1, 0, 1))
	require.NoError(t, g.SetEdge(1, 2, 1))

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.Order)
	require.False(t, res.Reached(1))
	require.False(t, res.Reached(-1))

	_, err = res.PathTo(2)
	require.Error(t, err)
}

// TestBFS_FilterAndDepth covers edge filtering and MaxDepth.
func TestBFS_FilterAndDepth(t *testing.T) {
	g := cycle4(t)

	res, err := bfs.BFS(g, 0, bfs.WithFilterEdge(func(curr, nbr int, _ int64) bool { return !(curr == 0 && nbr == 3) }))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, res.Order, "3 is still reachable through 2")
	require.Equal(t, 3, res.Depth[3])

	res, err = bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 1, 3}, res.Order)
	require.False(t, res.Reached(2))
}

// TestBFS_Hooks checks hook order and abort semantics.
func TestBFS_Hooks(t *testing.T) {
	var enq []int
	stop := errors.New("stop")
	_, err := bfs.BFS(cycle4(t), 0,
		bfs.WithOnEnqueue(func(v, _ int) { enq = append(enq, v) }),
		bfs.WithOnVisit(func(v, _ int) error {
			if v == 3 {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	require.Equal(t, []int{0, 1, 3, 2}, enq)
}

// TestBFS_Cancelled returns the context error before visiting anything.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(cycle4(t), 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
