package graph

import "fmt"

// AdjacencyMatrix is a dense V×V weight matrix: m[i][j] is the weight of
// i→j, NoEdge (0) when absent. Entries may be negative; only the Graph
// store rejects non-positive weights.
//
// AdjacencyMatrix implements Reader, so a matrix can be handed straight to
// the engine without building a Graph.
type AdjacencyMatrix [][]int64

// Order returns the number of vertices.
func (m AdjacencyMatrix) Order() int { return len(m) }

// Validate reports ErrInvalidOrder for an empty matrix and ErrInvalidVertex
// for any row whose length differs from the row count.
func (m AdjacencyMatrix) Validate() error {
	n := len(m)
	if n == 0 {
		return ErrInvalidOrder
	}
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("AdjacencyMatrix: row %d has %d columns, want %d: %w", i, len(row), n, ErrInvalidVertex)
		}
	}

	return nil
}

// Adjacency converts m into an adjacency list, skipping NoEdge entries.
// Columns beyond the row count are ignored. Rows come out sorted by To.
// Complexity: O(V²).
func (m AdjacencyMatrix) Adjacency() AdjacencyList {
	n := len(m)
	adj := make(AdjacencyList, n)
	for i, row := range m {
		for j, w := range row {
			if j >= n {
				break
			}
			if w != NoEdge {
				adj[i] = append(adj[i], Edge{From: i, To: j, Weight: w})
			}
		}
	}

	return adj
}

// FromMatrix builds a Graph from m. Every non-zero entry goes through
// SetEdge, so negative weights are rejected with ErrInvalidWeight.
func FromMatrix(m AdjacencyMatrix) (*Graph, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	g, err := New(len(m))
	if err != nil {
		return nil, err
	}
	for i, row := range m {
		for j, w := range row {
			if w == NoEdge {
				continue
			}
			if err := g.SetEdge(i, j, w); err != nil {
				return nil, fmt.Errorf("FromMatrix: %w", err)
			}
		}
	}

	return g, nil
}

// Matrix returns a dense copy of the store's weights.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V² + E)
func (g *Graph) Matrix() AdjacencyMatrix {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.adj)
	m := make(AdjacencyMatrix, n)
	for i := range m {
		m[i] = make([]int64, n)
		for _, e := range g.adj[i] {
			m[i][e.To] = e.Weight
		}
	}

	return m
}
