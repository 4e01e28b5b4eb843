package renderer

import (
	"testing"

	"github.com/DanielDubon/ShadersLab/common"
	"github.com/DanielDubon/ShadersLab/engine/model"
	"github.com/stretchr/testify/assert"
)

func identityUniforms(width, height int) *common.Uniforms {
	u := &common.Uniforms{}
	common.Identity(u.ModelMatrix[:])
	common.Identity(u.ViewMatrix[:])
	common.Identity(u.ProjectionMatrix[:])
	common.Viewport(u.ViewportMatrix[:], float32(width), float32(height))
	return u
}

func TestTransformVertexCenterMapsToScreenCenter(t *testing.T) {
	u := identityUniforms(800, 600)

	v := model.Vertex{Position: [3]float32{0, 0, 0}, Normal: [3]float32{0, 0, 1}}
	tv := TransformVertex(v, u)

	assert.InDelta(t, 400.0, float64(tv.Screen[0]), 1e-4)
	assert.InDelta(t, 300.0, float64(tv.Screen[1]), 1e-4)
	assert.InDelta(t, 0.0, float64(tv.Screen[2]), 1e-4)
}

func TestTransformVertexYAxisFlips(t *testing.T) {
	u := identityUniforms(800, 600)

	// +y in world space lands in the upper half of the screen.
	up := TransformVertex(model.Vertex{Position: [3]float32{0, 0.5, 0}}, u)
	down := TransformVertex(model.Vertex{Position: [3]float32{0, -0.5, 0}}, u)

	assert.Less(t, up.Screen[1], float32(300))
	assert.Greater(t, down.Screen[1], float32(300))
}

func TestTransformVertexDepthPassesThrough(t *testing.T) {
	u := identityUniforms(100, 100)

	tv := TransformVertex(model.Vertex{Position: [3]float32{0, 0, 0.25}}, u)
	assert.InDelta(t, 0.25, float64(tv.Screen[2]), 1e-5)
}

func TestTransformVertexTinyWDoesNotDivideByZero(t *testing.T) {
	u := identityUniforms(100, 100)
	common.Perspective(u.ProjectionMatrix[:], 0.8, 1, 0.1, 1000)

	// A point on the camera plane drives clip w to zero.
	tv := TransformVertex(model.Vertex{Position: [3]float32{0, 0, 0}}, u)
	for _, c := range tv.Screen {
		assert.False(t, isNaN32(c), "screen coordinate must stay finite-valued")
	}
}

func TestTransformVertexNormalRotates(t *testing.T) {
	u := identityUniforms(100, 100)
	// Quarter turn around y sends +z to +x.
	common.BuildModelMatrix(u.ModelMatrix[:], 0, 0, 0, 0, 1.5707964, 0, 1)

	tv := TransformVertex(model.Vertex{
		Position: [3]float32{0, 0, 0},
		Normal:   [3]float32{0, 0, 1},
	}, u)

	assert.InDelta(t, 1.0, float64(tv.Normal[0]), 1e-4)
	assert.InDelta(t, 0.0, float64(tv.Normal[1]), 1e-4)
	assert.InDelta(t, 0.0, float64(tv.Normal[2]), 1e-4)
}

func isNaN32(f float32) bool {
	return f != f
}
