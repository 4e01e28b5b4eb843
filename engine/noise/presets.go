package noise

// Preset evaluators for the stock planet materials. Seeds, frequencies, and
// fractal parameters are the tuned values the shading constants in the
// material package were calibrated against; changing them changes every
// surface that samples the evaluator.

// NewCloudNoise creates the smooth OpenSimplex field used for clouds,
// atmospheres, and gas-giant bands.
//
// Returns:
//   - Evaluator: OpenSimplex, seed 1337, frequency 0.01
func NewCloudNoise() Evaluator {
	return NewEvaluator(
		WithAlgorithm(AlgorithmOpenSimplex),
		WithSeed(1337),
		WithFrequency(0.01),
	)
}

// NewCellNoise creates a plain cellular field, useful for coarse surface
// patching.
//
// Returns:
//   - Evaluator: Cellular, seed 1337, frequency 0.1
func NewCellNoise() Evaluator {
	return NewEvaluator(
		WithAlgorithm(AlgorithmCellular),
		WithSeed(1337),
		WithFrequency(0.1),
	)
}

// NewTerrainNoise creates the fractal cellular field used for rocky terrain:
// continents, craters, and dust patterns.
//
// Returns:
//   - Evaluator: Cellular FBm, 5 octaves, lacunarity 2, gain 0.5, frequency 0.05, seed 1337
func NewTerrainNoise() Evaluator {
	return NewEvaluator(
		WithAlgorithm(AlgorithmCellular),
		WithSeed(1337),
		WithFrequency(0.05),
		WithFractal(5, 2.0, 0.5),
	)
}

// NewLavaNoise creates the fractal Perlin field used for the sun's pulsating
// lava surface.
//
// Returns:
//   - Evaluator: Perlin FBm, 6 octaves, lacunarity 2, gain 0.5, frequency 0.002, seed 42
func NewLavaNoise() Evaluator {
	return NewEvaluator(
		WithAlgorithm(AlgorithmPerlin),
		WithSeed(42),
		WithFrequency(0.002),
		WithFractal(6, 2.0, 0.5),
	)
}
