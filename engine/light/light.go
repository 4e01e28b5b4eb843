package light

import "github.com/DanielDubon/ShadersLab/common"

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	direction [3]float32
	intensity float32
}

// Light defines the interface for the scene's directional light source.
//
// The pipeline lights every fragment with a single distant source: shading
// multiplies each material color by max(0, normal · direction), so only the
// direction and a scalar intensity matter. There is no position and no
// distance attenuation.
type Light interface {
	// Direction returns the normalized direction toward the light.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32
}

// Ensure lightImpl implements Light interface.
var _ Light = &lightImpl{}

// NewLight creates a new directional light. Unless overridden via options,
// the light points along +z with intensity 1, matching a viewer-aligned
// source for a camera looking down -z.
//
// Parameters:
//   - options: functional options for light configuration
//
// Returns:
//   - Light: the newly created light
func NewLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		direction: [3]float32{0, 0, 1},
		intensity: 1,
	}

	for _, opt := range options {
		opt(l)
	}

	return l
}

func (l *lightImpl) Direction() [3]float32 {
	return l.direction
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func normalize3(x, y, z float32) [3]float32 {
	return common.Normalize3([3]float32{x, y, z})
}
