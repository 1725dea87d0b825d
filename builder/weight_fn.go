// SPDX-License-Identifier: MIT
// Package: sptree/builder
//
// weight_fn.go - edge-weight generators for WithWeightFn.

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn draws one positive edge weight.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always returns value. Panics if value < 1.
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from the closed range [min, max].
// A nil RNG yields min. Panics unless 1 ≤ min ≤ max.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
