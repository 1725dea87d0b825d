package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sptree/builder"
	"github.com/katalvlaran/sptree/dijkstra"
	"github.com/katalvlaran/sptree/graph"
)

// TestStrategiesAgree runs both strategies over seeded random graphs and
// requires identical tables, including settle order.
func TestStrategiesAgree(t *testing.T) {
	cases := []struct {
		name string
		n    int
		p    float64
		sym  bool
	}{
		{"sparse", 24, 0.10, false},
		{"medium", 40, 0.25, false},
		{"dense", 16, 0.80, false},
		{"undirected", 30, 0.15, true},
		{"nearly-empty", 20, 0.02, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for seed := int64(1); seed <= 8; seed++ {
				bopts := []builder.BuilderOption{
					builder.WithSeed(seed),
					builder.WithWeightFn(builder.UniformWeightFn(1, 5)),
				}
				if tc.sym {
					bopts = append(bopts, builder.WithSymmetric())
				}
				g, err := builder.BuildGraph(tc.n, bopts, builder.RandomSparse(tc.p))
				require.NoError(t, err)

				for _, src := range []int{0, tc.n / 2, tc.n - 1} {
					lin, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithStrategy(dijkstra.StrategyLinear))
					require.NoError(t, err)
					hp, err := dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithStrategy(dijkstra.StrategyHeap))
					require.NoError(t, err)

					require.Equal(t, lin.Dist, hp.Dist, "seed=%d src=%d", seed, src)
					require.Equal(t, lin.Prev, hp.Prev, "seed=%d src=%d", seed, src)
					require.Equal(t, lin.Known, hp.Known, "seed=%d src=%d", seed, src)
					require.Equal(t, lin.Order, hp.Order, "seed=%d src=%d", seed, src)
				}
			}
		})
	}
}

// TestShortestAgainstBellmanFord checks distances against a plain
// edge-relaxation fixpoint on random graphs.
func TestShortestAgainstBellmanFord(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph(25, []builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightFn(builder.UniformWeightFn(1, 9)),
		}, builder.RandomSparse(0.2))
		require.NoError(t, err)

		tables, err := dijkstra.Dijkstra(g, dijkstra.WithStrategy(dijkstra.StrategyHeap))
		require.NoError(t, err)
		require.Equal(t, bellmanFord(g.Adjacency(), 0), tables.Dist, "seed=%d", seed)
	}
}

func bellmanFord(adj graph.AdjacencyList, src int) []int64 {
	dist := make([]int64, len(adj))
	for i := range dist {
		dist[i] = dijkstra.Infinity
	}
	dist[src] = 0
	for changed := true; changed; {
		changed = false
		for u, row := range adj {
			if dist[u] == dijkstra.Infinity {
				continue
			}
			for _, e := range row {
				if nd := dist[u] + e.Weight; nd < dist[e.To] {
					dist[e.To] = nd
					changed = true
				}
			}
		}
	}

	return dist
}

// TestBuilderTopologies checks closed-form distances on generated shapes.
func TestBuilderTopologies(t *testing.T) {
	unit := []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(1))}

	path, err := builder.BuildGraph(7, unit, builder.Path())
	require.NoError(t, err)
	cycle, err := builder.BuildGraph(7, unit, builder.Cycle())
	require.NoError(t, err)
	complete, err := builder.BuildGraph(7, []builder.BuilderOption{
		builder.WithWeightFn(builder.ConstantWeightFn(3)),
	}, builder.Complete())
	require.NoError(t, err)

	for _, s := range strategies {
		tp, err := dijkstra.Dijkstra(path, dijkstra.WithStrategy(s))
		require.NoError(t, err)
		tc, err := dijkstra.Dijkstra(cycle, dijkstra.WithStrategy(s), dijkstra.Source(3))
		require.NoError(t, err)
		tk, err := dijkstra.Dijkstra(complete, dijkstra.WithStrategy(s), dijkstra.Source(6))
		require.NoError(t, err)

		for v := 0; v < 7; v++ {
			require.Equal(t, int64(v), tp.Dist[v], "path v=%d", v)
			require.Equal(t, int64((v-3+7)%7), tc.Dist[v], "cycle v=%d", v)
			if v == 6 {
				require.Zero(t, tk.Dist[v])
			} else {
				require.Equal(t, int64(3), tk.Dist[v], "complete v=%d", v)
				require.Equal(t, 6, tk.Prev[v])
			}
		}
	}
}

// TestMatrixReaderNegative runs the engine on a raw weight matrix carrying a
// negative entry, reachable and unreachable.
func TestMatrixReaderNegative(t *testing.T) {
	reachable := graph.AdjacencyMatrix{
		{0, 4, 0},
		{0, 0, -3},
		{0, 0, 0},
	}
	_, err := dijkstra.Dijkstra(reachable)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	unreachable := graph.AdjacencyMatrix{
		{0, 4, 0},
		{0, 0, 0},
		{-3, 0, 0},
	}
	tables, err := dijkstra.Dijkstra(unreachable)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 4, dijkstra.Infinity}, tables.Dist)
}

// TestMatrixReaderRagged rejects a matrix whose rows do not match its order.
func TestMatrixReaderRagged(t *testing.T) {
	for _, s := range []dijkstra.Strategy{dijkstra.StrategyLinear, dijkstra.StrategyHeap} {
		tables, err := dijkstra.Dijkstra(graph.AdjacencyMatrix{
			{0, 1},
			{0},
			{0, 0, 0, 7},
		}, dijkstra.WithStrategy(s))
		require.ErrorIs(t, err, graph.ErrInvalidVertex)
		require.Nil(t, tables)
	}

	_, err := dijkstra.Dijkstra(graph.AdjacencyMatrix{})
	require.ErrorIs(t, err, graph.ErrInvalidOrder)
}

// TestRawListIsolatedFromRun mutates a raw list from inside a run and checks
// the run still sees the list as it was when the run started.
func TestRawListIsolatedFromRun(t *testing.T) {
	adj := graph.AdjacencyList{
		{{From: 0, To: 1, Weight: 1}, {From: 0, To: 2, Weight: 10}},
		{{From: 1, To: 2, Weight: 1}},
		nil,
	}
	tables, err := dijkstra.Dijkstra(adj,
		dijkstra.WithOnSettle(func(v int, _ int64) {
			if v == 0 {
				adj[1][0].Weight = 100
			}
		}),
	)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2}, tables.Dist)
	require.Equal(t, int64(100), adj[1][0].Weight)
}
