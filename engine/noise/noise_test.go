package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatorIsDeterministicPerSeed(t *testing.T) {
	for _, alg := range []Algorithm{AlgorithmOpenSimplex, AlgorithmCellular, AlgorithmPerlin} {
		a := NewEvaluator(WithAlgorithm(alg), WithSeed(99))
		b := NewEvaluator(WithAlgorithm(alg), WithSeed(99))

		assert.Equal(t, a.Eval2(1.5, -2.25), b.Eval2(1.5, -2.25))
		assert.Equal(t, a.Eval3(0.1, 0.2, 0.3), b.Eval3(0.1, 0.2, 0.3))
	}
}

func TestCellularSeedsProduceDistinctFields(t *testing.T) {
	a := NewEvaluator(WithAlgorithm(AlgorithmCellular), WithSeed(1))
	b := NewEvaluator(WithAlgorithm(AlgorithmCellular), WithSeed(2))

	// A single sample could coincide by chance; over many samples the
	// fields must diverge somewhere.
	differ := false
	for i := range 32 {
		x := float32(i) * 0.37
		y := float32(i) * 0.91
		if a.Eval2(x, y) != b.Eval2(x, y) {
			differ = true
			break
		}
	}
	assert.True(t, differ)
}

func TestEvaluatorOutputStaysInRange(t *testing.T) {
	evaluators := map[string]Evaluator{
		"opensimplex": NewEvaluator(WithAlgorithm(AlgorithmOpenSimplex), WithSeed(7)),
		"cellular":    NewEvaluator(WithAlgorithm(AlgorithmCellular), WithSeed(7)),
		"perlin":      NewEvaluator(WithAlgorithm(AlgorithmPerlin), WithSeed(7)),
		"fbm":         NewEvaluator(WithAlgorithm(AlgorithmOpenSimplex), WithSeed(7), WithFractal(5, 2.0, 0.5)),
	}

	for name, e := range evaluators {
		for i := range 64 {
			x := float32(i)*0.73 - 20
			y := float32(i)*1.19 + 3
			z := float32(i) * 0.41

			v2 := e.Eval2(x, y)
			assert.GreaterOrEqual(t, v2, float32(-1.01), "%s Eval2", name)
			assert.LessOrEqual(t, v2, float32(1.01), "%s Eval2", name)

			v3 := e.Eval3(x, y, z)
			assert.GreaterOrEqual(t, v3, float32(-1.01), "%s Eval3", name)
			assert.LessOrEqual(t, v3, float32(1.01), "%s Eval3", name)
		}
	}
}

func TestWithFrequencyScalesSampling(t *testing.T) {
	base := NewEvaluator(WithAlgorithm(AlgorithmOpenSimplex), WithSeed(5))
	scaled := NewEvaluator(WithAlgorithm(AlgorithmOpenSimplex), WithSeed(5), WithFrequency(0.5))

	// Sampling the scaled field at (x, y) equals sampling the base field
	// at (x/2, y/2).
	assert.Equal(t, base.Eval2(1.1, 2.3), scaled.Eval2(2.2, 4.6))
}

func TestWithFrequencyIgnoresNonPositiveValues(t *testing.T) {
	base := NewEvaluator(WithAlgorithm(AlgorithmOpenSimplex), WithSeed(5))
	zero := NewEvaluator(WithAlgorithm(AlgorithmOpenSimplex), WithSeed(5), WithFrequency(0))
	negative := NewEvaluator(WithAlgorithm(AlgorithmOpenSimplex), WithSeed(5), WithFrequency(-3))

	assert.Equal(t, base.Eval2(4, 9), zero.Eval2(4, 9))
	assert.Equal(t, base.Eval2(4, 9), negative.Eval2(4, 9))
}

func TestFractalDiffersFromSingleOctave(t *testing.T) {
	single := NewEvaluator(WithAlgorithm(AlgorithmOpenSimplex), WithSeed(11))
	fractal := NewEvaluator(WithAlgorithm(AlgorithmOpenSimplex), WithSeed(11), WithFractal(5, 2.0, 0.5))

	differ := false
	for i := range 32 {
		x := float32(i) * 0.61
		y := float32(i) * 0.17
		if single.Eval2(x, y) != fractal.Eval2(x, y) {
			differ = true
			break
		}
	}
	assert.True(t, differ)
}

func TestWithFractalSingleOctaveDisablesLoop(t *testing.T) {
	plain := NewEvaluator(WithAlgorithm(AlgorithmPerlin), WithSeed(3))
	degenerate := NewEvaluator(WithAlgorithm(AlgorithmPerlin), WithSeed(3), WithFractal(1, 2.0, 0.5))

	assert.Equal(t, plain.Eval3(1, 2, 3), degenerate.Eval3(1, 2, 3))
}

func TestPresets(t *testing.T) {
	cloud := NewCloudNoise()
	require.NotNil(t, cloud)
	assert.Equal(t, int64(1337), cloud.Seed())

	terrain := NewTerrainNoise()
	require.NotNil(t, terrain)
	assert.Equal(t, int64(1337), terrain.Seed())

	lava := NewLavaNoise()
	require.NotNil(t, lava)
	assert.Equal(t, int64(42), lava.Seed())

	cell := NewCellNoise()
	require.NotNil(t, cell)
	assert.Equal(t, int64(1337), cell.Seed())
}
