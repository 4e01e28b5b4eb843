// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// Color is an 8-bit-per-channel RGB color value. It is a plain value type:
// two Colors are equal iff their channels are equal.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// NewColor creates a Color from the provided channel values, clamping each
// channel to the [0, 255] range.
//
// Parameters:
//   - r, g, b: channel values (values outside [0, 255] are clamped)
//
// Returns:
//   - Color: the clamped color
func NewColor(r, g, b int) Color {
	return Color{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
	}
}

// ColorFromHex unpacks a 0xRRGGBB value into a Color.
//
// Parameters:
//   - hex: packed color, low 24 bits used
//
// Returns:
//   - Color: the unpacked color
func ColorFromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
	}
}

// Hex packs the color into a 0xRRGGBB value for framebuffer storage.
//
// Returns:
//   - uint32: the packed color
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Lerp linearly interpolates between c and other component-wise.
// The factor is clamped to [0, 1], so Lerp(other, 0) == c and
// Lerp(other, 1) == other, and every output channel stays in range.
//
// Parameters:
//   - other: the target color
//   - t: interpolation factor, clamped to [0, 1]
//
// Returns:
//   - Color: the interpolated color
func (c Color) Lerp(other Color, t float32) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Color{
		R: uint8(float32(c.R) + (float32(other.R)-float32(c.R))*t),
		G: uint8(float32(c.G) + (float32(other.G)-float32(c.G))*t),
		B: uint8(float32(c.B) + (float32(other.B)-float32(c.B))*t),
	}
}

// Scale multiplies every channel by f, clamping the result per channel to
// [0, 255]. Negative factors produce black.
//
// Parameters:
//   - f: the scale factor
//
// Returns:
//   - Color: the scaled color
func (c Color) Scale(f float32) Color {
	if f < 0 {
		f = 0
	}
	return Color{
		R: clampChannel(int(float32(c.R) * f)),
		G: clampChannel(int(float32(c.G) * f)),
		B: clampChannel(int(float32(c.B) * f)),
	}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// NoiseEvaluator is the coherent-noise collaborator consumed by the fragment
// shading stage. Implementations are deterministic continuous scalar fields;
// returned values are nominally in [-1, 1]. Configuration (algorithm family,
// fractal parameters, frequency, seed) is fixed at construction time.
type NoiseEvaluator interface {
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
}

// Fragment is a candidate pixel write produced by rasterizing one triangle.
// It carries the integer screen position, the normalized depth, and the
// attributes interpolated from the triangle's vertices. Fragments are
// consumed by exactly one shader invocation and then discarded.
type Fragment struct {
	// X, Y is the integer pixel position in screen space.
	X int
	Y int

	// Depth is the normalized depth at the pixel center (0 = near, 1 = far).
	Depth float32

	// Position is the interpolated model-space vertex position. Shaders use
	// it as a stable noise-sampling coordinate so procedural patterns stick
	// to the surface instead of swimming in screen space.
	Position [3]float32

	// Normal is the interpolated, normal-matrix-transformed surface normal.
	Normal [3]float32

	// Intensity is the scalar lighting term in [0, 1] derived from the
	// interpolated normal against the scene's directional light.
	Intensity float32
}

// Uniforms is the per-frame, per-body snapshot consumed by the vertex and
// fragment stages. Matrices are column-major (see math.go). The noise
// evaluators are independently configured instances, one per shading effect,
// owned by the scene and reused across frames.
type Uniforms struct {
	ModelMatrix      [16]float32
	ViewMatrix       [16]float32
	ProjectionMatrix [16]float32
	ViewportMatrix   [16]float32

	// Time is a monotonically increasing frame counter used to animate
	// cloud, band, and lava patterns.
	Time uint32

	// CloudNoise drives cloud, atmosphere, and gas-giant band effects.
	CloudNoise NoiseEvaluator

	// TerrainNoise drives rocky-surface effects (continents, craters, dust).
	TerrainNoise NoiseEvaluator

	// LavaNoise drives the sun's pulsating lava effect.
	LavaNoise NoiseEvaluator
}
