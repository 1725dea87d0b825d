// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaults verifies the strict, deterministic defaults.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	require.Nil(t, cfg.rng)
	require.False(t, cfg.symmetric)
	require.Equal(t, defaultConstWeight, cfg.weightFn(nil))
}

// TestRNGOptions verifies reproducibility with WithSeed and that WithRand panics on nil.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	for i := 0; i < 5; i++ {
		require.Equal(t, a.rng.Int63(), b.rng.Int63(), "same seed must produce same draws")
	}

	r := rand.New(rand.NewSource(7))
	cfg := newBuilderConfig(WithRand(r))
	require.Same(t, r, cfg.rng)

	require.Panics(t, func() { WithRand(nil) })
}

// TestWeightFnOptions verifies last-wins semantics and generator contracts.
func TestWeightFnOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithWeightFn(ConstantWeightFn(3)),
		WithWeightFn(ConstantWeightFn(5)),
	)
	require.Equal(t, int64(5), cfg.weightFn(nil))

	require.Panics(t, func() { WithWeightFn(nil) })
	require.Panics(t, func() { ConstantWeightFn(0) })
	require.Panics(t, func() { UniformWeightFn(0, 4) })
	require.Panics(t, func() { UniformWeightFn(5, 4) })

	uniform := UniformWeightFn(2, 6)
	require.Equal(t, int64(2), uniform(nil))
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		w := uniform(rng)
		require.GreaterOrEqual(t, w, int64(2))
		require.LessOrEqual(t, w, int64(6))
	}
	require.Equal(t, int64(4), UniformWeightFn(4, 4)(rng))
}
