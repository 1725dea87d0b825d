// SPDX-License-Identifier: MIT
// Package: sptree/builder
//
// impl_path.go - implementation of the Path() constructor.
//
// Contract:
//   • V ≥ 2 (else ErrTooFewVertices).
//   • Emits edges i→i+1 for i=0..V-2 in ascending order.
//   • Weight policy: cfg.weightFn(cfg.rng) per edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sptree/graph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that chains all vertices 0→1→…→V-1.
func Path() Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		n := g.Order()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
