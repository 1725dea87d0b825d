// SPDX-License-Identifier: MIT
// Package: sptree/builder
//
// config.go - resolved, immutable configuration shared by all constructors.

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph call and passed by value.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges; must return a positive weight.
	weightFn func(*rand.Rand) int64
	// symmetric makes every constructor emit both u→v and v→u.
	symmetric bool
}

// defaultConstWeight is the edge weight used when no WeightFn is configured.
const defaultConstWeight = int64(1)

// newBuilderConfig applies opts over strict, deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		weightFn:  func(*rand.Rand) int64 { return defaultConstWeight },
		symmetric: false,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
