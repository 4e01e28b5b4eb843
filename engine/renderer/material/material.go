// Package material maps celestial bodies to procedural surface shaders.
// Every shader is a pure function of the fragment, the per-frame uniforms,
// and the noise evaluators carried in the uniforms; there are no textures.
package material

import (
	"github.com/DanielDubon/ShadersLab/common"
)

// Kind identifies which procedural surface shader colors a mesh.
type Kind int

const (
	// KindFlat shades every fragment plain white scaled by light intensity.
	// Useful for debugging geometry and the depth test.
	KindFlat Kind = iota

	// KindSun renders pulsating lava with additive-looking brightness.
	KindSun

	// KindMercury renders cratered gray-brown rock.
	KindMercury

	// KindVenus renders a thick yellow cloud deck with a bright haze rim.
	KindVenus

	// KindEarth renders oceans and continents under an animated cloud layer.
	KindEarth

	// KindMars renders rust-colored terrain with drifting dust.
	KindMars

	// KindJupiter renders turbulent horizontal bands with storm highlights.
	KindJupiter

	// KindSaturn renders soft pale bands.
	KindSaturn

	// KindUranus renders a calm cyan haze with faint clouds.
	KindUranus

	// KindNeptune renders deep blue bands with bright storm streaks.
	KindNeptune
)

// String returns the lowercase name of the material kind.
func (k Kind) String() string {
	switch k {
	case KindFlat:
		return "flat"
	case KindSun:
		return "sun"
	case KindMercury:
		return "mercury"
	case KindVenus:
		return "venus"
	case KindEarth:
		return "earth"
	case KindMars:
		return "mars"
	case KindJupiter:
		return "jupiter"
	case KindSaturn:
		return "saturn"
	case KindUranus:
		return "uranus"
	case KindNeptune:
		return "neptune"
	default:
		return "unknown"
	}
}

// Shade computes the final color of one fragment for the given material kind.
// Unknown kinds fall back to flat shading.
//
// Parameters:
//   - f: the rasterized fragment (position, normal, depth, light intensity)
//   - u: the per-frame uniforms (time and noise evaluators)
//   - k: the material kind selecting the shader
//
// Returns:
//   - common.Color: the shaded fragment color
func Shade(f *common.Fragment, u *common.Uniforms, k Kind) common.Color {
	switch k {
	case KindSun:
		return lavaShader(f, u)
	case KindMercury:
		return mercuryShader(f, u)
	case KindVenus:
		return venusShader(f, u)
	case KindEarth:
		return blendLayers(earthShader(f, u), cloudShader(f, u))
	case KindMars:
		return marsShader(f, u)
	case KindJupiter:
		return jupiterShader(f, u)
	case KindSaturn:
		return saturnShader(f, u)
	case KindUranus:
		return uranusShader(f, u)
	case KindNeptune:
		return neptuneShader(f, u)
	default:
		return flatShader(f)
	}
}
