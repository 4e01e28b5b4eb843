package noise

// EvaluatorOption is a functional option for configuring an Evaluator.
// Use the With* functions to create options that are applied directly to the evaluator instance.
type EvaluatorOption func(*evaluator)

// WithAlgorithm selects the base noise algorithm family.
//
// Parameters:
//   - a: the algorithm family
//
// Returns:
//   - EvaluatorOption: option function to apply
func WithAlgorithm(a Algorithm) EvaluatorOption {
	return func(e *evaluator) {
		e.algorithm = a
	}
}

// WithSeed sets the evaluator's seed. Evaluators with equal configuration and
// equal seeds produce identical fields.
//
// Parameters:
//   - seed: the seed value
//
// Returns:
//   - EvaluatorOption: option function to apply
func WithSeed(seed int64) EvaluatorOption {
	return func(e *evaluator) {
		e.seed = seed
	}
}

// WithFrequency sets the base sampling frequency: input coordinates are
// multiplied by this factor before evaluation. Values <= 0 are ignored.
//
// Parameters:
//   - frequency: the frequency scale
//
// Returns:
//   - EvaluatorOption: option function to apply
func WithFrequency(frequency float32) EvaluatorOption {
	return func(e *evaluator) {
		if frequency > 0 {
			e.frequency = frequency
		}
	}
}

// WithFractal enables FBm fractal summation over the base algorithm.
// Octave counts <= 1 disable the fractal loop.
//
// Parameters:
//   - octaves: number of octaves to accumulate
//   - lacunarity: per-octave frequency multiplier (typically 2.0)
//   - gain: per-octave amplitude multiplier (typically 0.5)
//
// Returns:
//   - EvaluatorOption: option function to apply
func WithFractal(octaves int, lacunarity, gain float32) EvaluatorOption {
	return func(e *evaluator) {
		if octaves <= 1 {
			e.fractal = nil
			return
		}
		e.fractal = &FractalConfig{
			Octaves:    octaves,
			Lacunarity: lacunarity,
			Gain:       gain,
		}
	}
}
