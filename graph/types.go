// Package graph defines the fixed-size, directed, positively weighted graph
// store consumed by the shortest-path engine.
//
// Vertices are integer indices in [0, V). The store is directed by
// construction; an undirected relationship is two mirrored edges of equal
// weight (see SetUndirectedEdge).
//
// Errors:
//
//	ErrInvalidOrder  - vertex count is smaller than one.
//	ErrInvalidVertex - vertex index outside [0, V).
//	ErrInvalidWeight - non-positive weight supplied to the store.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph store operations.
var (
	// ErrInvalidOrder indicates a vertex count smaller than one.
	ErrInvalidOrder = errors.New("graph: vertex count must be at least 1")

	// ErrInvalidVertex indicates a vertex index outside [0, V).
	ErrInvalidVertex = errors.New("graph: vertex index out of range")

	// ErrInvalidWeight indicates a zero or negative edge weight passed to the store.
	ErrInvalidWeight = errors.New("graph: edge weight must be positive")
)

// NoEdge is the weight reported for an absent edge.
const NoEdge int64 = 0

// Edge is a directed, weighted connection From→To.
type Edge struct {
	From   int   // tail vertex
	To     int   // head vertex
	Weight int64 // strictly positive for edges held by a Graph
}

// Reader is implemented by anything that can hand out an adjacency snapshot.
// The returned list must not be mutated by the caller's producer afterwards.
type Reader interface {
	Adjacency() AdjacencyList
}

// Graph is the owned, lock-protected graph store.
//
// The length of adj is the vertex count; there is no separate capacity.
// mu guards adj. Each row of adj is sorted by Edge.To with no duplicates.
type Graph struct {
	mu  sync.RWMutex
	adj AdjacencyList
}

// New creates an empty graph over n vertices.
// Complexity: O(n).
func New(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrInvalidOrder
	}

	return &Graph{adj: make(AdjacencyList, n)}, nil
}
