package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/frequent/builder"
)

func TestWeightFnConstructors_Panic(t *testing.T) {
	t.Parallel()

	tests := map[string]func(){
		"Constant/negative":    func() { builder.ConstantWeightFn(-1) },
		"Uniform/minNegative":  func() { builder.UniformWeightFn(-1, 5) },
		"Uniform/maxBelowMin":  func() { builder.UniformWeightFn(5, 4) },
		"Normal/stddevNeg":     func() { builder.NormalWeightFn(0, -0.1) },
		"Exponential/zeroRate": func() { builder.ExponentialWeightFn(0) },
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Panics(t, fn)
		})
	}
}

func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	const seed = 42
	fns := map[string]builder.WeightFn{
		"Default":     builder.DefaultWeightFn,
		"Uniform":     builder.UniformWeightFn(2, 4),
		"Normal":      builder.NormalWeightFn(10, 2),
		"Exponential": builder.ExponentialWeightFn(1.5),
	}
	for name, fn := range fns {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, builder.DefaultEdgeWeight, fn(nil), "nil rng yields the default weight")

			w := fn(rand.New(rand.NewSource(seed)))
			assert.GreaterOrEqual(t, w, 0.0)
			assert.Equal(t, w, fn(rand.New(rand.NewSource(seed))), "same seed, same weight")
		})
	}

	assert.Equal(t, 7.0, builder.ConstantWeightFn(7)(nil))
	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 3)(rand.New(rand.NewSource(seed))))

	w := builder.UniformWeightFn(2, 4)(rand.New(rand.NewSource(seed)))
	assert.True(t, w >= 2 && w < 4, "uniform sample %g outside [2,4)", w)
}
