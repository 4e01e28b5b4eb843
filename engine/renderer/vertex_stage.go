package renderer

import (
	"github.com/DanielDubon/ShadersLab/common"
	"github.com/DanielDubon/ShadersLab/engine/model"
)

// TransformedVertex is the output of the vertex stage for one input vertex.
type TransformedVertex struct {
	// Vertex is the untransformed input vertex. Shaders sample noise from its
	// model-space position, so it rides along with the screen coordinates.
	Vertex model.Vertex

	// Screen is the viewport-mapped position: x and y in pixel coordinates,
	// z the normalized depth in [0, 1].
	Screen [3]float32

	// Normal is the vertex normal transformed by the normal matrix and
	// renormalized.
	Normal [3]float32
}

// vertexTransformer caches the matrix products shared by every vertex of one
// mesh: the combined projection*view*model matrix and the 3x3 normal matrix.
type vertexTransformer struct {
	pvm          [16]float32
	normalMatrix [9]float32
}

func newVertexTransformer(u *common.Uniforms) *vertexTransformer {
	vt := &vertexTransformer{}

	var pv [16]float32
	common.Mul4(pv[:], u.ProjectionMatrix[:], u.ViewMatrix[:])
	common.Mul4(vt.pvm[:], pv[:], u.ModelMatrix[:])

	common.NormalMatrix(vt.normalMatrix[:], u.ModelMatrix[:])

	return vt
}

// transform runs one vertex through clip space, perspective divide, and the
// viewport map. Vertices whose clip w collapses toward zero are pushed to a
// guard epsilon instead of dividing by zero; they land far outside the
// viewport and are dropped by rasterization bounds clamping.
func (vt *vertexTransformer) transform(v model.Vertex, u *common.Uniforms) TransformedVertex {
	cx, cy, cz, cw := common.MulVec4(vt.pvm[:], v.Position[0], v.Position[1], v.Position[2], 1)

	if cw > -1e-6 && cw < 1e-6 {
		if cw < 0 {
			cw = -1e-6
		} else {
			cw = 1e-6
		}
	}

	nx := cx / cw
	ny := cy / cw
	nz := cz / cw

	sx, sy, sz, _ := common.MulVec4(u.ViewportMatrix[:], nx, ny, nz, 1)

	tnx, tny, tnz := common.MulVec3Mat3(vt.normalMatrix[:], v.Normal[0], v.Normal[1], v.Normal[2])

	return TransformedVertex{
		Vertex: v,
		Screen: [3]float32{sx, sy, sz},
		Normal: common.Normalize3([3]float32{tnx, tny, tnz}),
	}
}

// TransformVertex runs the full vertex stage for a single vertex using only
// the uniforms. It rebuilds the cached matrices on every call, so bulk
// transforms inside the renderer go through vertexTransformer instead.
//
// Parameters:
//   - v: the input vertex
//   - u: the per-body uniforms
//
// Returns:
//   - TransformedVertex: the screen-mapped vertex
func TransformVertex(v model.Vertex, u *common.Uniforms) TransformedVertex {
	return newVertexTransformer(u).transform(v, u)
}
