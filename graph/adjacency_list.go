package graph

import "sort"

// AdjacencyList is a per-vertex list of outgoing edges. len(a) is the vertex
// count. Rows produced by this package are sorted by Edge.To.
//
// AdjacencyList implements Reader by returning itself, so raw lists can be
// handed straight to the engine.
type AdjacencyList [][]Edge

// Adjacency returns a unchanged.
func (a AdjacencyList) Adjacency() AdjacencyList { return a }

// Order returns the number of vertices.
func (a AdjacencyList) Order() int { return len(a) }

// Weight returns the weight of u→v, or NoEdge if absent or out of range.
// Rows not sorted by To (hand-built lists) fall back to a linear scan.
// Complexity: O(log deg(u)) on sorted rows, O(deg(u)) otherwise.
func (a AdjacencyList) Weight(u, v int) int64 {
	if u < 0 || u >= len(a) {
		return NoEdge
	}
	row := a[u]
	i := search(row, v)
	if i < len(row) && row[i].To == v {
		return row[i].Weight
	}
	if sorted(row) {
		return NoEdge
	}
	for _, e := range row {
		if e.To == v {
			return e.Weight
		}
	}

	return NoEdge
}

// Clone returns a deep copy; rows of the copy share no backing arrays with a.
// Complexity: O(V + E).
func (a AdjacencyList) Clone() AdjacencyList {
	out := make(AdjacencyList, len(a))
	for u, row := range a {
		if len(row) == 0 {
			continue
		}
		out[u] = append([]Edge(nil), row...)
	}

	return out
}

// search returns the insertion index of target in a row sorted by To.
func search(row []Edge, target int) int {
	return sort.Search(len(row), func(i int) bool { return row[i].To >= target })
}

// sorted reports whether row is ordered by To.
func sorted(row []Edge) bool {
	for i := 1; i < len(row); i++ {
		if row[i-1].To > row[i].To {
			return false
		}
	}

	return true
}

// upsert stores e in its row, replacing an existing edge to the same head.
func (a AdjacencyList) upsert(e Edge) {
	row := a[e.From]
	i := search(row, e.To)
	if i < len(row) && row[i].To == e.To {
		row[i].Weight = e.Weight
		return
	}
	row = append(row, Edge{})
	copy(row[i+1:], row[i:])
	row[i] = e
	a[e.From] = row
}

// remove deletes u→v and reports whether it existed.
func (a AdjacencyList) remove(u, v int) bool {
	row := a[u]
	i := search(row, v)
	if i >= len(row) || row[i].To != v {
		return false
	}
	a[u] = append(row[:i], row[i+1:]...)

	return true
}
