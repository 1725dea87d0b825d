package query

import (
	"fmt"

	"github.com/katalvlaran/sptree/dijkstra"
	"github.com/katalvlaran/sptree/graph"
)

// KeyToVertex maps '0'..'9' to vertex indices of a graph with n vertices.
func KeyToVertex(key rune, n int) (int, error) {
	if key < '0' || key > '9' {
		return dijkstra.NoVertex, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	v := int(key - '0')
	if v >= n {
		return dijkstra.NoVertex, fmt.Errorf("query: key %q: vertex %d not in [0, %d): %w", key, v, n, graph.ErrInvalidVertex)
	}

	return v, nil
}
