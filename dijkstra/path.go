package dijkstra

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/sptree/graph"
)

// Path is an ordered vertex sequence from the source to a target, both inclusive.
type Path []int

// Hops returns the number of edges along p.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// String renders p as "0 -> 1 -> 2".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " -> ")
}

// PathTo reconstructs the shortest path from the source to target by walking
// Prev backwards. It is read-only against t and safe for concurrent use.
//
// Returns:
//   - (path, true, nil) for a reachable target; [source] when target == source.
//   - (nil, false, nil) when target is unreachable. This is not an error.
//   - graph.ErrInvalidVertex when target is outside [0, V).
//   - ErrBrokenChain when the predecessor walk cycles or stops short of the source.
//
// Complexity: O(len(path)).
func (t *Tables) PathTo(target int) (Path, bool, error) {
	if err := t.check(target); err != nil {
		return nil, false, err
	}
	if t.Dist[target] == Infinity {
		return nil, false, nil
	}

	chain, err := t.walk(target)
	if err != nil {
		return nil, false, err
	}
	// reverse target→source into source→target
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return Path(chain), true, nil
}

// Chain returns the predecessor chain from v back to the source, v first.
// The source and unreachable vertices yield the single-element chain [v].
func (t *Tables) Chain(v int) ([]int, error) {
	if err := t.check(v); err != nil {
		return nil, err
	}
	if t.Dist[v] == Infinity {
		return []int{v}, nil
	}

	return t.walk(v)
}

// walk follows Prev from v until NoVertex. A chain longer than V, or one that
// ends anywhere but the source, is reported as ErrBrokenChain.
func (t *Tables) walk(v int) ([]int, error) {
	n := len(t.Prev)
	chain := make([]int, 0, 8)
	for cur := v; cur != NoVertex; cur = t.Prev[cur] {
		if len(chain) == n || cur < 0 || cur >= n {
			return nil, fmt.Errorf("%w: from %d", ErrBrokenChain, v)
		}
		chain = append(chain, cur)
	}
	if chain[len(chain)-1] != t.Source {
		return nil, fmt.Errorf("%w: from %d ends at %d", ErrBrokenChain, v, chain[len(chain)-1])
	}

	return chain, nil
}

// PathCost sums the edge weights along p in g. A missing edge between two
// consecutive vertices is reported as ErrBrokenChain.
func PathCost(g graph.Reader, p Path) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	adj := g.Adjacency()
	var total int64
	for i := 1; i < len(p); i++ {
		w := adj.Weight(p[i-1], p[i])
		if w == graph.NoEdge {
			return 0, fmt.Errorf("%w: no edge %d→%d", ErrBrokenChain, p[i-1], p[i])
		}
		total += w
	}

	return total, nil
}
