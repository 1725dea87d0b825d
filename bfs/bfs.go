// Package bfs provides breadth-first search over a graph.Reader,
// returning hop distances, parent links, and visit order.
//
// BFS explores vertices in increasing hop count from a start vertex,
// with optional hooks, depth limiting, and edge filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sptree/graph"
)

// walker encapsulates mutable BFS state.
type walker struct {
	adj   graph.AdjacencyList
	opts  BFSOptions
	ctx   context.Context
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil, graph.ErrInvalidOrder or graph.ErrInvalidVertex for
// invalid input, ErrOptionViolation for bad options, or any hook error.
// Edges whose head lies outside [0, V) are reported as graph.ErrInvalidVertex.
func BFS(g graph.Reader, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	adj := g.Adjacency()
	n := adj.Order()
	if n == 0 {
		return nil, graph.ErrInvalidOrder
	}
	if start < 0 || start >= n {
		return nil, fmt.Errorf("bfs: start %d: %w", start, graph.ErrInvalidVertex)
	}

	w := &walker{
		adj:   adj,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = Unreached
	}

	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// enqueue marks v seen at depth d, records its parent, calls OnEnqueue
// and appends it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}
		if err := w.enqueueNeighbors(v); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen head.
func (w *walker) enqueueNeighbors(v int) error {
	next := w.res.Depth[v] + 1
	n := len(w.adj)
	for _, e := range w.adj[v] {
		if e.To < 0 || e.To >= n {
			return fmt.Errorf("bfs: edge %d→%d: %w", v, e.To, graph.ErrInvalidVertex)
		}
		if !w.opts.FilterEdge(v, e.To, e.Weight) {
			continue
		}
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		if w.res.Depth[e.To] == Unreached {
			w.enqueue(e.To, next, v)
		}
	}

	return nil
}
