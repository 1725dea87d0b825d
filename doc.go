// Package sptree computes single-source shortest-path trees over small,
// static, integer-indexed graphs with positive edge weights.
//
// 🚀 What is sptree?
//
//	A compact, thread-safe library and CLI that brings together:
//		• Graph store: a directed adjacency list guarded by a RW lock
//		• Traversal: BFS with hooks, depth limits and edge filters
//		• Shortest paths: Dijkstra, linear-scan or heap selection
//		• Path reconstruction and a textual dump of the tree
//		• A query facade publishing immutable snapshots to concurrent readers
//
// ✨ Why sptree?
//
//   - Small API with integer vertices and sentinel errors
//   - Engine runs never see a half-written graph; results never change after return
//   - Linear and heap strategies produce identical tables, tie-broken by lowest index
//
// Packages:
//
//	graph/        — Graph, AdjacencyList, Edge and the Reader interface
//	bfs/          — breadth-first search, used to validate reachable edges
//	dijkstra/     — the engine, Tables, PathTo, WriteTo (dump) and WriteDOT
//	query/        — Facade: Compute, Distance, Path, Dump, TargetForKey
//	builder/      — deterministic graph constructors for tests and benchmarks
//	config/       — TOML / YAML graph files
//	internal/cli/ — the sptree command (dump, path, tree, select)
//
// Quick example:
//
//	g, _ := graph.New(3)
//	_ = g.SetEdge(0, 1, 2)
//	_ = g.SetEdge(1, 2, 3)
//	tables, _ := dijkstra.Dijkstra(g, dijkstra.Source(0))
//	path, ok, _ := tables.PathTo(2) // [0 1 2], true
//
//	go install github.com/katalvlaran/sptree/cmd/sptree@latest
package sptree
