// SPDX-License-Identifier: MIT
// Package: sptree/builder

// Package builder provides deterministic, functional-options constructors for
// graph.Graph fixtures: Path, Cycle, Complete and RandomSparse.
//
// BuildGraph(n, opts, cons...) creates a graph over n vertices and applies the
// constructors in order. Options:
//
//   - WithSeed / WithRand:  RNG for stochastic constructors and weight draws.
//   - WithWeightFn:         per-edge weight generator (ConstantWeightFn, UniformWeightFn).
//   - WithSymmetric:        emit every edge in both directions.
//
// Same n, options, seed and constructor order always yield the same graph,
// which is what the shortest-path cross-tests and benchmarks rely on.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, plus wrapped graph sentinels from SetEdge.
package builder
