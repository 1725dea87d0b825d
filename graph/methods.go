package graph

import "fmt"

// Order returns the number of vertices V.
// Thread-safe: acquires a read lock.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of stored directed edges.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, row := range g.adj {
		n += len(row)
	}

	return n
}

// SetEdge stores the directed edge u→v with weight w, replacing any previous
// weight on that pair.
// Returns ErrInvalidVertex if u or v is outside [0, V) and ErrInvalidWeight if w <= 0.
// Thread-safe: acquires a write lock.
//
// Complexity: O(deg(u))
func (g *Graph) SetEdge(u, v int, w int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEdge(u, v, w); err != nil {
		return err
	}
	g.adj.upsert(Edge{From: u, To: v, Weight: w})

	return nil
}

// SetUndirectedEdge stores u→v and v→u with the same weight. Both directions
// are validated before either is written.
// Thread-safe: acquires a write lock.
func (g *Graph) SetUndirectedEdge(u, v int, w int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkEdge(u, v, w); err != nil {
		return err
	}
	g.adj.upsert(Edge{From: u, To: v, Weight: w})
	if u != v {
		g.adj.upsert(Edge{From: v, To: u, Weight: w})
	}

	return nil
}

// RemoveEdge deletes u→v. Removing an absent edge is a no-op.
// Thread-safe: acquires a write lock.
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	g.adj.remove(u, v)

	return nil
}

// Weight returns the weight of u→v, or NoEdge if there is none.
// Thread-safe: acquires a read lock.
func (g *Graph) Weight(u, v int) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(u); err != nil {
		return NoEdge, err
	}
	if err := g.checkVertex(v); err != nil {
		return NoEdge, err
	}

	return g.adj.Weight(u, v), nil
}

// Neighbors returns a copy of u's outgoing edges sorted by head vertex.
// Thread-safe: acquires a read lock.
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkVertex(u); err != nil {
		return nil, err
	}

	return append([]Edge(nil), g.adj[u]...), nil
}

// Edges returns every stored edge ordered by (From, To).
// Thread-safe: acquires a read lock.
//
// Complexity: O(V + E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.adj))
	for _, row := range g.adj {
		out = append(out, row...)
	}

	return out
}

// Adjacency returns a deep copy of the adjacency list taken under a single
// read lock. Later mutations of g are not visible through the copy.
//
// Complexity: O(V + E)
func (g *Graph) Adjacency() AdjacencyList {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj.Clone()
}

// Clone returns an independent Graph with the same edges.
func (g *Graph) Clone() *Graph {
	return &Graph{adj: g.Adjacency()}
}

// checkVertex validates v against the current vertex count. Caller holds mu.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidVertex, v, len(g.adj))
	}

	return nil
}

// checkEdge validates both endpoints and the weight. Caller holds mu.
func (g *Graph) checkEdge(u, v int, w int64) error {
	if err := g.checkVertex(u); err != nil {
		return err
	}
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if w <= 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrInvalidWeight, u, v, w)
	}

	return nil
}
