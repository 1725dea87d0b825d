// SPDX-License-Identifier: MIT
// Package: sptree/builder
//
// impl_cycle.go — implementation of the Cycle() constructor.
//
// Contract:
//   • V ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i -> (i+1)%V for i=0..V-1.
//   • Weight policy: cfg.weightFn(cfg.rng) per edge.
//
// Complexity:
//   • Time: O(V) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sptree/graph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that closes all vertices into a ring C_V.
func Cycle() Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		n := g.Order()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// Emit edges in ascending i; for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
