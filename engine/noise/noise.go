// Package noise provides the coherent-noise evaluators that drive the
// procedural planet materials. An Evaluator is a deterministic continuous
// scalar field configured once (algorithm family, seed, frequency, optional
// fractal summation) and sampled many times per frame by the fragment
// shading stage.
package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Algorithm identifies the base noise algorithm family of an Evaluator.
type Algorithm int

const (
	// AlgorithmOpenSimplex selects smooth gradient noise (OpenSimplex).
	// Used by the cloud, atmosphere, and gas-giant band effects.
	AlgorithmOpenSimplex Algorithm = iota

	// AlgorithmCellular selects Worley/cellular noise (F1 feature-point
	// distance). Used by the rocky-terrain effects.
	AlgorithmCellular

	// AlgorithmPerlin selects classic gradient Perlin noise. Used by the
	// sun's lava effect.
	AlgorithmPerlin
)

// FractalConfig describes fractal (FBm) summation over the base algorithm:
// Octaves samples are accumulated, each at Lacunarity times the previous
// frequency and Gain times the previous amplitude, then normalized back to
// the nominal [-1, 1] range.
type FractalConfig struct {
	Octaves    int
	Lacunarity float32
	Gain       float32
}

// Evaluator is a configured coherent-noise field. Evaluation never fails and
// is safe for concurrent use by multiple goroutines: configuration is fixed
// at construction and sampling is read-only.
type Evaluator interface {
	// Eval2 samples the field at a 2D point.
	//
	// Parameters:
	//   - x, y: sample coordinates
	//
	// Returns:
	//   - float32: the noise value, nominally in [-1, 1]
	Eval2(x, y float32) float32

	// Eval3 samples the field at a 3D point.
	//
	// Parameters:
	//   - x, y, z: sample coordinates
	//
	// Returns:
	//   - float32: the noise value, nominally in [-1, 1]
	Eval3(x, y, z float32) float32

	// Seed returns the seed the evaluator was configured with.
	//
	// Returns:
	//   - int64: the seed
	Seed() int64
}

type evaluator struct {
	algorithm Algorithm
	seed      int64
	frequency float32
	fractal   *FractalConfig

	simplex opensimplex.Noise
	perlin  *perlin.Perlin
}

// Ensure evaluator implements Evaluator interface.
var _ Evaluator = &evaluator{}

// NewEvaluator creates a configured noise Evaluator. Defaults match a plain
// OpenSimplex field: seed 0, frequency 1, no fractal summation.
//
// Parameters:
//   - options: functional options for algorithm, seed, frequency, and fractal parameters
//
// Returns:
//   - Evaluator: the configured evaluator
func NewEvaluator(options ...EvaluatorOption) Evaluator {
	e := &evaluator{
		algorithm: AlgorithmOpenSimplex,
		seed:      0,
		frequency: 1,
	}

	for _, opt := range options {
		opt(e)
	}

	switch e.algorithm {
	case AlgorithmOpenSimplex:
		e.simplex = opensimplex.New(e.seed)
	case AlgorithmPerlin:
		// Single-iteration Perlin; octave accumulation is handled by the
		// fractal loop so Lacunarity/Gain stay configurable.
		e.perlin = perlin.NewPerlin(2, 2, 1, e.seed)
	}

	return e
}

func (e *evaluator) Seed() int64 {
	return e.seed
}

func (e *evaluator) Eval2(x, y float32) float32 {
	x *= e.frequency
	y *= e.frequency

	if e.fractal == nil || e.fractal.Octaves <= 1 {
		return e.base2(x, y)
	}

	sum := float32(0)
	amp := float32(1)
	ampSum := float32(0)
	for range e.fractal.Octaves {
		sum += e.base2(x, y) * amp
		ampSum += amp
		x *= e.fractal.Lacunarity
		y *= e.fractal.Lacunarity
		amp *= e.fractal.Gain
	}
	return sum / ampSum
}

func (e *evaluator) Eval3(x, y, z float32) float32 {
	x *= e.frequency
	y *= e.frequency
	z *= e.frequency

	if e.fractal == nil || e.fractal.Octaves <= 1 {
		return e.base3(x, y, z)
	}

	sum := float32(0)
	amp := float32(1)
	ampSum := float32(0)
	for range e.fractal.Octaves {
		sum += e.base3(x, y, z) * amp
		ampSum += amp
		x *= e.fractal.Lacunarity
		y *= e.fractal.Lacunarity
		z *= e.fractal.Lacunarity
		amp *= e.fractal.Gain
	}
	return sum / ampSum
}

// base2 samples one octave of the configured algorithm at a 2D point.
func (e *evaluator) base2(x, y float32) float32 {
	switch e.algorithm {
	case AlgorithmCellular:
		return cellular2(e.seed, x, y)
	case AlgorithmPerlin:
		return float32(e.perlin.Noise2D(float64(x), float64(y)))
	default:
		return float32(e.simplex.Eval2(float64(x), float64(y)))
	}
}

// base3 samples one octave of the configured algorithm at a 3D point.
func (e *evaluator) base3(x, y, z float32) float32 {
	switch e.algorithm {
	case AlgorithmCellular:
		return cellular3(e.seed, x, y, z)
	case AlgorithmPerlin:
		return float32(e.perlin.Noise3D(float64(x), float64(y), float64(z)))
	default:
		return float32(e.simplex.Eval3(float64(x), float64(y), float64(z)))
	}
}

// --- cellular (Worley F1) backend ---

// hash21 derives a deterministic feature-point offset in [0, 1) for a cell.
func hash(seed int64, ix, iy, iz, channel int32) float32 {
	h := uint64(seed)
	h ^= uint64(uint32(ix)) * 0x9e3779b97f4a7c15
	h = (h ^ (h >> 29)) * 0xbf58476d1ce4e5b9
	h ^= uint64(uint32(iy)) * 0x94d049bb133111eb
	h = (h ^ (h >> 32)) * 0xd6e8feb86659fd93
	h ^= uint64(uint32(iz)) * 0x2545f4914f6cdd1d
	h = (h ^ (h >> 29)) * 0xff51afd7ed558ccd
	h ^= uint64(uint32(channel)) * 0xc2b2ae3d27d4eb4f
	h ^= h >> 33
	return float32(h&0xffffff) / float32(0x1000000)
}

// cellular2 evaluates 2D Worley noise: the distance to the nearest hashed
// feature point over the 3x3 cell neighborhood, remapped to [-1, 1].
func cellular2(seed int64, x, y float32) float32 {
	cx := int32(math.Floor(float64(x)))
	cy := int32(math.Floor(float64(y)))

	minDistSq := float32(math.MaxFloat32)
	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			ix, iy := cx+dx, cy+dy
			fx := float32(ix) + hash(seed, ix, iy, 0, 0)
			fy := float32(iy) + hash(seed, ix, iy, 0, 1)
			ddx := fx - x
			ddy := fy - y
			distSq := ddx*ddx + ddy*ddy
			if distSq < minDistSq {
				minDistSq = distSq
			}
		}
	}

	return remapCellular(minDistSq)
}

// cellular3 evaluates 3D Worley noise over the 3x3x3 cell neighborhood.
func cellular3(seed int64, x, y, z float32) float32 {
	cx := int32(math.Floor(float64(x)))
	cy := int32(math.Floor(float64(y)))
	cz := int32(math.Floor(float64(z)))

	minDistSq := float32(math.MaxFloat32)
	for dz := int32(-1); dz <= 1; dz++ {
		for dy := int32(-1); dy <= 1; dy++ {
			for dx := int32(-1); dx <= 1; dx++ {
				ix, iy, iz := cx+dx, cy+dy, cz+dz
				fx := float32(ix) + hash(seed, ix, iy, iz, 0)
				fy := float32(iy) + hash(seed, ix, iy, iz, 1)
				fz := float32(iz) + hash(seed, ix, iy, iz, 2)
				ddx := fx - x
				ddy := fy - y
				ddz := fz - z
				distSq := ddx*ddx + ddy*ddy + ddz*ddz
				if distSq < minDistSq {
					minDistSq = distSq
				}
			}
		}
	}

	return remapCellular(minDistSq)
}

// remapCellular maps an F1 squared distance to the nominal [-1, 1] range:
// 0 at a feature point, approaching +1 in the empty middle of a cell.
func remapCellular(distSq float32) float32 {
	d := float32(math.Sqrt(float64(distSq)))
	if d > 1 {
		d = 1
	}
	return d*2 - 1
}
