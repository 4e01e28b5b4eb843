package material

import (
	"testing"

	"github.com/DanielDubon/ShadersLab/common"
	"github.com/DanielDubon/ShadersLab/engine/noise"
	"github.com/stretchr/testify/assert"
)

func testUniforms() *common.Uniforms {
	return &common.Uniforms{
		Time:         0,
		CloudNoise:   noise.NewCloudNoise(),
		TerrainNoise: noise.NewTerrainNoise(),
		LavaNoise:    noise.NewLavaNoise(),
	}
}

func testFragment() *common.Fragment {
	return &common.Fragment{
		X:         10,
		Y:         10,
		Depth:     0.5,
		Position:  [3]float32{0.3, -0.2, 0.5},
		Normal:    [3]float32{0, 0, 1},
		Intensity: 1,
	}
}

func TestFlatShaderScalesWithIntensity(t *testing.T) {
	f := testFragment()
	u := testUniforms()

	full := Shade(f, u, KindFlat)
	assert.Equal(t, common.NewColor(255, 255, 255), full)

	f.Intensity = 0.5
	half := Shade(f, u, KindFlat)
	assert.Equal(t, common.NewColor(127, 127, 127), half)

	f.Intensity = 0
	dark := Shade(f, u, KindFlat)
	assert.Equal(t, common.NewColor(0, 0, 0), dark)
}

func TestBlendLayersThreshold(t *testing.T) {
	base := common.NewColor(10, 20, 30)

	// A dim cloud sample leaves the base untouched.
	dim := common.NewColor(50, 50, 50)
	assert.Equal(t, base, blendLayers(base, dim))

	// A bright cloud sample blends most of the way toward the cloud color.
	bright := common.NewColor(255, 255, 255)
	blended := blendLayers(base, bright)
	assert.NotEqual(t, base, blended)
	assert.Equal(t, base.Lerp(bright, 0.7), blended)
}

func TestShadeIsDeterministic(t *testing.T) {
	f := testFragment()
	u := testUniforms()

	kinds := []Kind{
		KindSun, KindMercury, KindVenus, KindEarth, KindMars,
		KindJupiter, KindSaturn, KindUranus, KindNeptune,
	}
	for _, k := range kinds {
		a := Shade(f, u, k)
		b := Shade(f, u, k)
		assert.Equal(t, a, b, "kind %s", k)
	}
}

func TestShadeZeroIntensityIsBlack(t *testing.T) {
	f := testFragment()
	f.Intensity = 0
	u := testUniforms()

	// The sun overshoots intensity but zero in stays zero out.
	kinds := []Kind{
		KindSun, KindMercury, KindVenus, KindMars,
		KindJupiter, KindSaturn, KindUranus, KindNeptune,
	}
	for _, k := range kinds {
		c := Shade(f, u, k)
		assert.Equal(t, common.NewColor(0, 0, 0), c, "kind %s", k)
	}
}

func TestShadeWithoutNoiseEvaluators(t *testing.T) {
	f := testFragment()
	u := &common.Uniforms{}

	// Missing evaluators read as zero noise rather than panicking.
	for k := KindFlat; k <= KindNeptune; k++ {
		assert.NotPanics(t, func() { Shade(f, u, k) }, "kind %s", k)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "sun", KindSun.String())
	assert.Equal(t, "earth", KindEarth.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
