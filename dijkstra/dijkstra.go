// Package dijkstra implements Dijkstra's shortest-path algorithm on
// integer-indexed, positively weighted graphs.
//
// Two strategies share one relaxation step:
//
//   - StrategyLinear selects the next vertex by scanning all unknown vertices,
//     O(V² + E). This is the label-setting algorithm in its classical form.
//   - StrategyHeap keeps a binary min-heap with lazy decrease-key,
//     O((V + E) log V).
//
// Both break ties by the lowest vertex index and settle at most V-1 vertices,
// so they produce identical Dist, Prev, Known and Order tables.
//
// Notes on implementation choices:
//
//   - The adjacency list is copied once at the start of a run: *graph.Graph
//     hands out a deep copy and any other Reader's list is cloned, so later
//     writes to the input never reach an in-flight run.
//   - A Reader that also implements Validate() error (graph.AdjacencyMatrix)
//     is validated before its adjacency is read.
//   - A BFS from the source rejects negative weights on reachable edges before
//     any table is allocated.
//   - Weight 0 means "no edge" and is skipped.
//   - A relaxation whose sum would overflow int64 is skipped.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/sptree/bfs"
	"github.com/katalvlaran/sptree/graph"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source,
// default 0) to every vertex of g.
//
// Preconditions and validation (in order):
//  1. options must be valid (ErrBadStrategy).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must pass its own Validate, if it has one, and have at least one
//     vertex (graph.ErrInvalidOrder).
//  4. Source must lie in [0, V) (graph.ErrInvalidVertex).
//  5. No edge reachable from Source may point outside [0, V) (graph.ErrInvalidVertex)
//     or carry a negative weight (ErrNegativeWeight).
//
// On error no tables are returned.
//
// Complexity:
//
//   - StrategyLinear: O(V² + E) time, O(V) extra space.
//   - StrategyHeap:   O((V + E) log V) time, O(V + E) extra space.
func Dijkstra(g graph.Reader, opts ...Option) (*Tables, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph
	if g == nil {
		return nil, ErrNilGraph
	}
	if v, ok := g.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	adj := g.Adjacency()
	if _, owned := g.(*graph.Graph); !owned {
		adj = adj.Clone()
	}
	n := adj.Order()
	if n == 0 {
		return nil, graph.ErrInvalidOrder
	}

	// 3) Validate Source
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("dijkstra: source %d not in [0, %d): %w", cfg.Source, n, graph.ErrInvalidVertex)
	}

	// 4) Scan every edge reachable from Source before touching any table.
	if err := validateReachable(adj, cfg); err != nil {
		return nil, err
	}

	// 5) Run the selected strategy.
	r := &runner{
		adj: adj,
		cfg: cfg,
		t:   newTables(n, cfg.Source, cfg.Strategy),
	}
	var err error
	switch cfg.Strategy {
	case StrategyHeap:
		err = r.runHeap()
	default:
		err = r.runLinear()
	}
	if err != nil {
		return nil, err
	}

	return r.t, nil
}

// validator is implemented by readers that can check their own shape.
type validator interface {
	Validate() error
}

// validateReachable walks the vertices reachable from the source and fails on
// the first outgoing edge with a negative weight.
func validateReachable(adj graph.AdjacencyList, cfg Options) error {
	_, err := bfs.BFS(adj, cfg.Source,
		bfs.WithContext(cfg.Ctx),
		bfs.WithFilterEdge(func(_, _ int, w int64) bool { return w != graph.NoEdge }),
		bfs.WithOnVisit(func(v, _ int) error {
			for _, e := range adj[v] {
				if e.Weight < 0 {
					return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, v, e.To, e.Weight)
				}
			}
			return nil
		}),
	)

	return err
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj graph.AdjacencyList // private copy of the input; read-only here
	cfg Options
	t   *Tables // tables under construction; published only on success
}

// runLinear is the classical O(V²) loop: up to V-1 times, settle the unknown
// vertex with the smallest finite distance (lowest index on ties) and relax
// its outgoing edges.
func (r *runner) runLinear() error {
	n := len(r.adj)
	for count := 0; count < n-1; count++ {
		if err := r.cancelled(); err != nil {
			return err
		}
		v := r.selectMin()
		if v == NoVertex {
			break // remaining vertices are unreachable
		}
		r.settle(v)
		r.relax(v, nil)
	}

	return nil
}

// selectMin returns the unknown vertex with minimal finite distance, or
// NoVertex when none exists. The strict comparison keeps the lowest index.
func (r *runner) selectMin() int {
	best := NoVertex
	bestDist := Infinity
	for v, d := range r.t.Dist {
		if !r.t.Known[v] && d < bestDist {
			best, bestDist = v, d
		}
	}

	return best
}

// runHeap settles vertices in (dist, index) order using a lazy heap. Stale
// entries (already known, or carrying an outdated distance) are skipped.
func (r *runner) runHeap() error {
	n := len(r.adj)
	pq := make(nodePQ, 0, n)
	heap.Push(&pq, nodeItem{id: r.cfg.Source, dist: 0})

	push := func(v int, d int64) {
		heap.Push(&pq, nodeItem{id: v, dist: d})
	}

	for settled := 0; settled < n-1 && pq.Len() > 0; {
		if err := r.cancelled(); err != nil {
			return err
		}
		item := heap.Pop(&pq).(nodeItem)
		if r.t.Known[item.id] || item.dist != r.t.Dist[item.id] {
			continue
		}
		r.settle(item.id)
		settled++
		r.relax(item.id, push)
	}

	return nil
}

// settle marks v known. Its distance is final from here on.
func (r *runner) settle(v int) {
	r.t.Known[v] = true
	r.t.Order = append(r.t.Order, v)
	r.cfg.OnSettle(v, r.t.Dist[v])
}

// relax examines each edge leaving v towards an unknown head and lowers the
// head's distance when going through v is strictly shorter. push, if non-nil,
// receives every lowered (vertex, distance) pair.
func (r *runner) relax(v int, push func(int, int64)) {
	dv := r.t.Dist[v]
	for _, e := range r.adj[v] {
		w := e.To
		if e.Weight <= 0 || r.t.Known[w] {
			continue
		}
		// Infinity - dv is the largest weight that keeps the sum finite.
		if e.Weight >= Infinity-dv {
			continue
		}
		nd := dv + e.Weight
		if nd >= r.t.Dist[w] {
			continue
		}
		r.t.Dist[w] = nd
		r.t.Prev[w] = v
		r.cfg.OnRelax(v, w, nd)
		if push != nil {
			push(w, nd)
		}
	}
}

// cancelled reports the context error, if any.
func (r *runner) cancelled() error {
	select {
	case <-r.cfg.Ctx.Done():
		return r.cfg.Ctx.Err()
	default:
		return nil
	}
}

// nodeItem is a heap entry: a vertex and the distance it was pushed with.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id).
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by lowest vertex index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element of the backing slice.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
