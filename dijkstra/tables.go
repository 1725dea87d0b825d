package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/sptree/graph"
)

// Tables is the immutable result of one Dijkstra run.
//
// All slices have length V. Dist[v] is Infinity for unreached vertices;
// Prev[v] is NoVertex for the source and for unreached vertices. Known[v]
// reports whether v was settled; Order lists settled vertices in the order
// they were settled. Tables returned by Dijkstra are never written again and
// may be read from any number of goroutines.
type Tables struct {
	Source   int
	Strategy Strategy
	Dist     []int64
	Prev     []int
	Known    []bool
	Order    []int
}

// newTables allocates tables for n vertices with every distance infinite,
// every predecessor NoVertex and the source at distance 0.
func newTables(n, source int, s Strategy) *Tables {
	t := &Tables{
		Source:   source,
		Strategy: s,
		Dist:     make([]int64, n),
		Prev:     make([]int, n),
		Known:    make([]bool, n),
		Order:    make([]int, 0, n),
	}
	for v := 0; v < n; v++ {
		t.Dist[v] = Infinity
		t.Prev[v] = NoVertex
	}
	t.Dist[source] = 0

	return t
}

// Len returns the vertex count the tables were computed for.
func (t *Tables) Len() int { return len(t.Dist) }

// Reachable reports whether v has a finite distance. Out-of-range v is unreachable.
func (t *Tables) Reachable(v int) bool {
	return v >= 0 && v < len(t.Dist) && t.Dist[v] != Infinity
}

// Distance returns Dist[v] (Infinity if unreached).
func (t *Tables) Distance(v int) (int64, error) {
	if err := t.check(v); err != nil {
		return Infinity, err
	}

	return t.Dist[v], nil
}

// Predecessor returns Prev[v] (NoVertex for the source or unreached vertices).
func (t *Tables) Predecessor(v int) (int, error) {
	if err := t.check(v); err != nil {
		return NoVertex, err
	}

	return t.Prev[v], nil
}

// IsKnown reports whether v was settled during the run.
func (t *Tables) IsKnown(v int) (bool, error) {
	if err := t.check(v); err != nil {
		return false, err
	}

	return t.Known[v], nil
}

func (t *Tables) check(v int) error {
	if v < 0 || v >= len(t.Dist) {
		return fmt.Errorf("dijkstra: vertex %d not in [0, %d): %w", v, len(t.Dist), graph.ErrInvalidVertex)
	}

	return nil
}
