// SPDX-License-Identifier: MIT
// Package: sptree/builder
//
// impl_random_sparse.go - implementation of the RandomSparse(p) constructor.
//
// Model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Directed (default): iterate ordered pairs (i,j), i≠j.
//   - WithSymmetric: iterate unordered pairs {i,j} with i<j.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Weight policy: cfg.weightFn(cfg.rng), drawn only for included edges.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc.
//   - Deterministic outcomes for fixed seed/options.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sptree/graph"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that samples edges independently with
// probability p.
func RandomSparse(p float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Trial every admissible pair in stable order.
		n := g.Order()
		for i := 0; i < n; i++ {
			start := 0
			if cfg.symmetric {
				start = i + 1
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if !include(cfg, p) {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// include runs one Bernoulli trial; p ∈ {0,1} needs no RNG.
func include(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
