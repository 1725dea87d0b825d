// SPDX-License-Identifier: MIT
// Package: sptree/builder
//
// impl_complete.go — implementation of the Complete() constructor.
//
// Contract:
//   • V ≥ 1 (always true for a graph.Graph).
//   • Emits every ordered pair (i,j), i≠j, in lexicographic order, so the
//     directed result has V·(V-1) edges. With WithSymmetric each unordered
//     pair {i,j}, i<j, is emitted once in both directions.

package builder

import "github.com/katalvlaran/sptree/graph"

const methodComplete = "Complete"

// Complete returns a Constructor that connects every pair of distinct vertices.
func Complete() Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		n := g.Order()
		for i := 0; i < n; i++ {
			// symmetric emission covers (j,i) while handling (i,j)
			start := 0
			if cfg.symmetric {
				start = i + 1
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
