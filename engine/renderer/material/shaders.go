package material

import (
	"math"

	"github.com/DanielDubon/ShadersLab/common"
)

// sample2 evaluates 2D noise, treating a missing evaluator as silence.
func sample2(n common.NoiseEvaluator, x, y float32) float32 {
	if n == nil {
		return 0
	}
	return n.Eval2(x, y)
}

// sample3 evaluates 3D noise, treating a missing evaluator as silence.
func sample3(n common.NoiseEvaluator, x, y, z float32) float32 {
	if n == nil {
		return 0
	}
	return n.Eval3(x, y, z)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// flatShader colors the fragment white scaled by light intensity.
func flatShader(f *common.Fragment) common.Color {
	return common.NewColor(255, 255, 255).Scale(f.Intensity)
}

// blendLayers composites an animated cloud layer over a base surface color.
// The cloud layer contributes only where it is bright enough to read as cloud.
func blendLayers(base, clouds common.Color) common.Color {
	cloudIntensity := (float32(clouds.R) + float32(clouds.G) + float32(clouds.B)) / (3 * 255)
	if cloudIntensity > 0.3 {
		return base.Lerp(clouds, 0.7)
	}
	return base
}

// cloudShader produces the drifting white cloud layer composited over the
// earth surface. Coverage starts where the noise field exceeds a small
// threshold and ramps up to full white.
func cloudShader(f *common.Fragment, u *common.Uniforms) common.Color {
	const (
		zoom      = 100.0
		offsetX   = 100.0
		offsetY   = 100.0
		threshold = 0.1
	)
	t := float32(u.Time) * 0.1

	n := sample2(u.CloudNoise,
		f.Position[0]*zoom+offsetX+t,
		f.Position[1]*zoom+offsetY,
	)

	var factor float32
	if n > threshold {
		factor = min32((n-threshold)/(1-threshold), 1)
	}

	return common.NewColor(255, 255, 255).Scale(factor * f.Intensity)
}

// lavaShader renders the sun: two offset noise octaves over a slowly
// pulsating depth coordinate, blended between dark orange and bright yellow.
// The final scale overshoots 1 so the surface reads as emissive.
func lavaShader(f *common.Fragment, u *common.Uniforms) common.Color {
	bright := common.NewColor(255, 255, 100)
	dark := common.NewColor(255, 140, 0)

	const (
		baseFrequency    = 0.4
		pulsateAmplitude = 0.8
		zoom             = 800.0
	)
	t := float32(u.Time) * 0.02
	pulsate := float32(math.Sin(float64(t*baseFrequency))) * pulsateAmplitude

	x := f.Position[0]
	y := f.Position[1]
	z := f.Depth

	n1 := sample3(u.LavaNoise, x*zoom, y*zoom, (z+pulsate)*zoom)
	n2 := sample3(u.LavaNoise, x*zoom+1000, y*zoom+1000, (z+pulsate)*zoom+1000)
	n := min32((n1+n2)*0.5+0.2, 1)

	return dark.Lerp(bright, n).Scale(f.Intensity * 1.2)
}

// earthShader picks ocean or land from a terrain noise field with a smooth
// shoreline band, then tints the silhouette with a thin atmosphere rim.
func earthShader(f *common.Fragment, u *common.Uniforms) common.Color {
	ocean := common.NewColor(25, 80, 180)
	land := common.NewColor(50, 160, 80)
	atmosphere := common.NewColor(150, 200, 255)

	const (
		zoom            = 250.0
		threshold       = 0.5
		transitionWidth = 0.1
	)

	n := abs32(sample3(u.TerrainNoise,
		f.Position[0]*zoom,
		f.Position[1]*zoom,
		f.Depth*zoom,
	))

	var landFactor float32
	switch {
	case n > threshold+transitionWidth:
		landFactor = 1
	case n < threshold-transitionWidth:
		landFactor = 0
	default:
		landFactor = (n - (threshold - transitionWidth)) / (2 * transitionWidth)
	}

	base := ocean.Lerp(land, landFactor)

	facing := abs32(common.Dot3(f.Normal, [3]float32{0, 0, 1}))
	atmosphereFactor := (1 - facing) * (1 - facing)

	return base.Lerp(atmosphere, atmosphereFactor*0.4).Scale(f.Intensity)
}

// mercuryShader layers crater pockmarks over a gray-brown terrain gradient.
func mercuryShader(f *common.Fragment, u *common.Uniforms) common.Color {
	dark := common.NewColor(80, 75, 70)
	light := common.NewColor(170, 160, 150)
	crater := common.NewColor(60, 55, 50)

	x := f.Position[0]
	y := f.Position[1]
	z := f.Position[2]

	terrain := abs32(sample3(u.TerrainNoise, x*300, y*300, z*300))
	base := dark.Lerp(light, terrain)

	craters := abs32(sample3(u.TerrainNoise, x*600, y*600, z*600))
	if craters > 0.7 {
		base = base.Lerp(crater, 0.5)
	}

	return base.Scale(f.Intensity)
}

// venusShader renders a dense yellow cloud deck that slowly drifts, plus a
// haze rim that brightens the silhouette.
func venusShader(f *common.Fragment, u *common.Uniforms) common.Color {
	base := common.NewColor(230, 180, 50)
	cloud := common.NewColor(255, 198, 88)
	atmosphere := common.NewColor(255, 220, 150)

	t := float32(u.Time) * 0.05
	x := f.Position[0]
	y := f.Position[1]
	z := f.Position[2]

	clouds := abs32(sample3(u.CloudNoise, x*150+t, y*150, z*150))
	c := base.Lerp(cloud, clouds)

	facing := common.Dot3(f.Normal, [3]float32{0, 0, 1})
	atmosphereFactor := float32(math.Sqrt(math.Max(0, float64(1-facing))))

	return c.Lerp(atmosphere, atmosphereFactor*0.3).Scale(f.Intensity)
}

// marsShader blends rust tones from terrain noise and overlays thin dust.
func marsShader(f *common.Fragment, u *common.Uniforms) common.Color {
	darkRed := common.NewColor(145, 50, 20)
	lightRed := common.NewColor(200, 80, 30)
	dust := common.NewColor(230, 130, 50)

	x := f.Position[0]
	y := f.Position[1]
	z := f.Position[2]

	terrain := abs32(sample3(u.TerrainNoise, x*250, y*250, z*250))
	base := darkRed.Lerp(lightRed, terrain)

	dustAmount := abs32(sample3(u.TerrainNoise, x*400, y*400, z*400))

	return base.Lerp(dust, dustAmount*0.3).Scale(f.Intensity)
}

// jupiterShader mixes horizontal bands from the fragment's latitude with a
// turbulence field, then warms storm regions.
func jupiterShader(f *common.Fragment, u *common.Uniforms) common.Color {
	lightBand := common.NewColor(255, 220, 180)
	darkBand := common.NewColor(180, 140, 100)
	storm := common.NewColor(255, 160, 120)

	t := float32(u.Time) * 0.1
	x := f.Position[0]
	y := f.Position[1]
	z := f.Position[2]

	bands := abs32(sample2(u.CloudNoise, y*100, t))
	turbulence := abs32(sample3(u.CloudNoise, x*300+t, y*300, z*300))

	return darkBand.Lerp(lightBand, bands).
		Lerp(storm, turbulence*0.3).
		Scale(f.Intensity)
}

// saturnShader renders muted bands softened by a turbulence field.
func saturnShader(f *common.Fragment, u *common.Uniforms) common.Color {
	light := common.NewColor(255, 240, 200)
	dark := common.NewColor(200, 180, 140)

	t := float32(u.Time) * 0.08
	x := f.Position[0]
	y := f.Position[1]
	z := f.Position[2]

	bands := abs32(sample2(u.CloudNoise, y*120, t))
	turbulence := abs32(sample3(u.CloudNoise, x*350+t, y*350, z*350))

	return light.Lerp(dark, bands*(1-turbulence*0.3)).Scale(f.Intensity)
}

// uranusShader renders a nearly featureless cyan sphere with faint drifting
// clouds.
func uranusShader(f *common.Fragment, u *common.Uniforms) common.Color {
	base := common.NewColor(150, 210, 230)
	cloud := common.NewColor(180, 230, 255)

	t := float32(u.Time) * 0.03
	x := f.Position[0]
	y := f.Position[1]
	z := f.Position[2]

	clouds := abs32(sample3(u.CloudNoise, x*200+t, y*200, z*200))

	return base.Lerp(cloud, clouds*0.4).Scale(f.Intensity)
}

// neptuneShader renders deep blue with bright storm streaks driven by both a
// 3D storm field and a latitude band field.
func neptuneShader(f *common.Fragment, u *common.Uniforms) common.Color {
	base := common.NewColor(30, 100, 200)
	storm := common.NewColor(100, 160, 255)

	t := float32(u.Time) * 0.06
	x := f.Position[0]
	y := f.Position[1]
	z := f.Position[2]

	storms := abs32(sample3(u.CloudNoise, x*250+t, y*250, z*250))
	bands := abs32(sample2(u.CloudNoise, y*150, t))

	return base.Lerp(storm, (storms+bands*0.5)*0.4).Scale(f.Intensity)
}
