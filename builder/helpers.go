// SPDX-License-Identifier: MIT
// Package: sptree/builder
//
// helpers.go - shared edge emission for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sptree/graph"
)

// addEdge draws one weight from cfg and stores u→v, plus v→u when
// cfg.symmetric is set. Errors carry the method name for context.
func addEdge(g *graph.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)

	var err error
	if cfg.symmetric {
		err = g.SetUndirectedEdge(u, v, w)
	} else {
		err = g.SetEdge(u, v, w)
	}
	if err != nil {
		return fmt.Errorf("%s: SetEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
