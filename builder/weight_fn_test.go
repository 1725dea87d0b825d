// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sptree/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_zero", func() builder.WeightFn { return builder.ConstantWeightFn(0) }},
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minZero", func() builder.WeightFn { return builder.UniformWeightFn(0, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Panics(t, func() { tc.constructor() }, tc.name)
		})
	}
}

// TestUniformWeightFnRange draws many samples and checks the closed bounds.
func TestUniformWeightFnRange(t *testing.T) {
	fn := builder.UniformWeightFn(3, 7)
	rng := rand.New(rand.NewSource(1))
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		w := fn(rng)
		require.GreaterOrEqual(t, w, int64(3))
		require.LessOrEqual(t, w, int64(7))
		seen[w] = true
	}
	require.Len(t, seen, 5, "every value in [3,7] should appear")

	require.Equal(t, int64(3), fn(nil), "nil RNG yields min")
	require.Equal(t, int64(9), builder.ConstantWeightFn(9)(rng))
}
