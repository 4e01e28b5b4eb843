package renderer

import (
	"testing"

	"github.com/DanielDubon/ShadersLab/common"
	"github.com/DanielDubon/ShadersLab/engine/model"
	"github.com/DanielDubon/ShadersLab/engine/renderer/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func centeredTriangle(depth float32) model.Mesh {
	n := [3]float32{0, 0, 1}
	return model.NewMesh("tri", []model.Vertex{
		{Position: [3]float32{-0.9, -0.9, depth}, Normal: n},
		{Position: [3]float32{0.9, -0.9, depth}, Normal: n},
		{Position: [3]float32{0, 0.9, depth}, Normal: n},
	})
}

func TestDrawMeshShadesCoveredPixels(t *testing.T) {
	r := NewRenderer(
		WithSize(40, 30),
		WithBackground(0x333355),
		WithWorkers(2),
	)

	u := identityUniforms(40, 30)
	r.BeginFrame()
	r.DrawMesh(centeredTriangle(0.5), u, material.KindFlat)

	fb := r.Framebuffer()

	// The screen center is inside the triangle and lit head-on.
	assert.Equal(t, uint32(0xFFFFFF), fb.ColorAt(20, 15))
	assert.InDelta(t, 0.5, float64(fb.DepthAt(20, 15)), 1e-4)

	// The top corners stay background.
	assert.Equal(t, uint32(0x333355), fb.ColorAt(0, 0))
	assert.Equal(t, uint32(0x333355), fb.ColorAt(39, 0))
}

func TestDrawMeshDepthComposite(t *testing.T) {
	r := NewRenderer(
		WithSize(40, 30),
		WithBackground(0x000000),
		WithWorkers(2),
	)

	u := identityUniforms(40, 30)
	r.BeginFrame()

	// Far triangle first, near triangle second.
	r.DrawMesh(centeredTriangle(0.8), u, material.KindFlat)
	r.DrawMesh(centeredTriangle(0.2), u, material.KindFlat)

	fb := r.Framebuffer()
	assert.InDelta(t, 0.2, float64(fb.DepthAt(20, 15)), 1e-4)

	// Draw order does not matter: near first, far second ends the same.
	r.BeginFrame()
	r.DrawMesh(centeredTriangle(0.2), u, material.KindFlat)
	r.DrawMesh(centeredTriangle(0.8), u, material.KindFlat)
	assert.InDelta(t, 0.2, float64(fb.DepthAt(20, 15)), 1e-4)
}

func TestBeginFrameResetsTarget(t *testing.T) {
	r := NewRenderer(WithSize(16, 16), WithBackground(0x112233), WithWorkers(1))

	u := identityUniforms(16, 16)
	r.BeginFrame()
	r.DrawMesh(centeredTriangle(0.5), u, material.KindFlat)
	require.NotEqual(t, uint32(0x112233), r.Framebuffer().ColorAt(8, 8))

	r.BeginFrame()
	assert.Equal(t, uint32(0x112233), r.Framebuffer().ColorAt(8, 8))
}

func TestFrameReturnsRGBA(t *testing.T) {
	r := NewRenderer(WithSize(4, 2), WithBackground(0x010203), WithWorkers(1))
	r.BeginFrame()

	frame := r.Frame()
	require.Len(t, frame, 4*2*4)
	assert.Equal(t, []byte{1, 2, 3, 255}, frame[:4])
}

func TestDrawMeshWithFewVerticesIsNoop(t *testing.T) {
	r := NewRenderer(WithSize(8, 8), WithWorkers(1))
	u := identityUniforms(8, 8)

	r.BeginFrame()
	assert.NotPanics(t, func() {
		r.DrawMesh(model.NewMesh("pair", []model.Vertex{
			{Position: [3]float32{0, 0, 0}},
			{Position: [3]float32{1, 0, 0}},
		}), u, material.KindFlat)
	})
}

func TestRendererResize(t *testing.T) {
	r := NewRenderer(WithSize(8, 8), WithWorkers(1))
	r.Resize(20, 10)

	fb := r.Framebuffer()
	assert.Equal(t, 20, fb.Width())
	assert.Equal(t, 10, fb.Height())
	assert.Len(t, r.Frame(), 20*10*4)
}

func TestDrawMeshWithProceduralMaterial(t *testing.T) {
	r := NewRenderer(WithSize(32, 32), WithBackground(0x000000), WithWorkers(2))

	u := identityUniforms(32, 32)
	u.CloudNoise = stubNoise{}
	u.TerrainNoise = stubNoise{}
	u.LavaNoise = stubNoise{}

	r.BeginFrame()
	r.DrawMesh(centeredTriangle(0.5), u, material.KindSun)

	// Lava never shades to black at full intensity.
	assert.NotEqual(t, uint32(0x000000), r.Framebuffer().ColorAt(16, 16))
}

type stubNoise struct{}

func (stubNoise) Eval2(x, y float32) float32    { return 0.5 }
func (stubNoise) Eval3(x, y, z float32) float32 { return 0.5 }

var _ common.NoiseEvaluator = stubNoise{}
