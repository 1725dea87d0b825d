// Package bfs provides breadth-first search over a graph.Reader,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: per-vertex hop count from start (Unreached if never seen)
//   - Parent: per-vertex predecessor in the BFS tree
//   - Hooks: OnEnqueue (before a vertex is enqueued) and OnVisit (may abort with an error).
//   - Edge filtering via WithFilterEdge; MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//	The shortest-path engine uses BFS to collect the vertices reachable from
//	the source before any distance table is allocated, so that a negative
//	weight on a reachable edge is rejected up front.
//
// Determinism
//
//	Adjacency rows are sorted by head vertex and BFS enqueues heads in that
//	order, so the visit sequence is fully reproducible.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil            if the graph is nil.
//   - graph.ErrInvalidOrder  if the adjacency list is empty.
//   - graph.ErrInvalidVertex if start, or the head of a visited edge, is outside [0, V).
//   - ErrOptionViolation     if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
