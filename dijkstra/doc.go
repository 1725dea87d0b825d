// Package dijkstra provides single-source shortest paths on small, static,
// integer-indexed graphs with positive edge weights, together with
// on-demand path reconstruction and a textual diagnostic dump.
//
// Overview:
//
//   - Dijkstra(g, opts...) consumes any graph.Reader (a *graph.Graph or a raw
//     graph.AdjacencyList) and returns a fresh, immutable *Tables snapshot:
//     Dist, Prev, Known and the settlement Order.
//   - Tables.PathTo(target) walks the predecessor table backwards; it never
//     recomputes the tree and is safe to call from many goroutines.
//   - Tables.WriteTo(w) writes "<index>\t<distance>\t<chain>" lines;
//     Tables.WriteDOT(w) writes the tree as Graphviz DOT text.
//
// Algorithm (label-setting):
//
//	All distances start at Infinity except the source (0); all predecessors are
//	NoVertex. Up to V-1 times, the unknown vertex with the smallest finite
//	distance is settled (lowest index on ties) and each edge v→w towards an
//	unknown w is relaxed: if dist[v]+weight < dist[w], dist[w] and prev[w]
//	are updated. The loop ends early when no unknown vertex is reachable.
//
// Strategies:
//
//   - StrategyLinear (default): O(V² + E), the classical scan.
//   - StrategyHeap:             O((V + E) log V), lazy decrease-key on a heap
//     ordered by (dist, index). Tables are identical to StrategyLinear.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:             nil graph.
//   - graph.ErrInvalidOrder:   empty adjacency list.
//   - graph.ErrInvalidVertex:  source or target outside [0, V), or an edge head out of range.
//   - ErrNegativeWeight:       a negative weight on an edge reachable from the source;
//     detected before any table is built, so no tables are returned.
//   - ErrBadStrategy:          unknown strategy.
//   - ErrBrokenChain:          predecessor walk that cycles or misses the source.
//
// An unreachable target is not an error: PathTo reports it with ok == false
// and Dist holds Infinity.
//
// Example usage:
//
//	tables, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithStrategy(dijkstra.StrategyHeap))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, ok, err := tables.PathTo(5)
package dijkstra
