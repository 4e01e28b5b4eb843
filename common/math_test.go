package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityAndMul4(t *testing.T) {
	var id, out [16]float32
	Identity(id[:])

	m := [16]float32{
		2, 0, 0, 0,
		0, 3, 0, 0,
		0, 0, 4, 0,
		5, 6, 7, 1,
	}

	Mul4(out[:], id[:], m[:])
	assert.Equal(t, m, out)

	Mul4(out[:], m[:], id[:])
	assert.Equal(t, m, out)
}

func TestMul4MatchesVectorComposition(t *testing.T) {
	var a, b, ab [16]float32
	BuildModelMatrix(a[:], 1, 2, 3, 0.4, 0.5, 0.6, 1.5)
	BuildModelMatrix(b[:], -2, 0, 1, 0.1, 0, 0.9, 0.8)
	Mul4(ab[:], a[:], b[:])

	// (A*B)v == A*(B*v)
	x, y, z, w := MulVec4(b[:], 0.3, -0.7, 0.2, 1)
	ex, ey, ez, ew := MulVec4(a[:], x, y, z, w)
	gx, gy, gz, gw := MulVec4(ab[:], 0.3, -0.7, 0.2, 1)

	assert.InDelta(t, float64(ex), float64(gx), 1e-4)
	assert.InDelta(t, float64(ey), float64(gy), 1e-4)
	assert.InDelta(t, float64(ez), float64(gz), 1e-4)
	assert.InDelta(t, float64(ew), float64(gw), 1e-4)
}

func TestPerspectiveDepthRange(t *testing.T) {
	var p [16]float32
	near, far := float32(0.1), float32(1000.0)
	Perspective(p[:], float32(math.Pi/4), 4.0/3.0, near, far)

	// A point on the near plane projects to depth 0 after the divide.
	_, _, z, w := MulVec4(p[:], 0, 0, -near, 1)
	assert.InDelta(t, 0.0, float64(z/w), 1e-5)

	// A point on the far plane projects to depth 1.
	_, _, z, w = MulVec4(p[:], 0, 0, -far, 1)
	assert.InDelta(t, 1.0, float64(z/w), 1e-4)

	// Depth grows monotonically with distance.
	_, _, zn, wn := MulVec4(p[:], 0, 0, -1, 1)
	_, _, zf, wf := MulVec4(p[:], 0, 0, -10, 1)
	assert.Less(t, zn/wn, zf/wf)
}

func TestViewportMapping(t *testing.T) {
	var v [16]float32
	Viewport(v[:], 800, 600)

	// NDC origin maps to the screen center.
	x, y, z, _ := MulVec4(v[:], 0, 0, 0.5, 1)
	assert.InDelta(t, 400.0, float64(x), 1e-5)
	assert.InDelta(t, 300.0, float64(y), 1e-5)
	assert.InDelta(t, 0.5, float64(z), 1e-5)

	// NDC (-1, 1) maps to the top-left corner (y axis flips).
	x, y, _, _ = MulVec4(v[:], -1, 1, 0, 1)
	assert.InDelta(t, 0.0, float64(x), 1e-5)
	assert.InDelta(t, 0.0, float64(y), 1e-5)

	// NDC (1, -1) maps to the bottom-right corner.
	x, y, _, _ = MulVec4(v[:], 1, -1, 0, 1)
	assert.InDelta(t, 800.0, float64(x), 1e-5)
	assert.InDelta(t, 600.0, float64(y), 1e-5)
}

func TestBuildModelMatrixTranslationAndScale(t *testing.T) {
	var m [16]float32
	BuildModelMatrix(m[:], 7, 0, 0, 0, 0, 0, 2)

	// The local origin lands at the body position.
	x, y, z, w := MulVec4(m[:], 0, 0, 0, 1)
	assert.Equal(t, [4]float32{7, 0, 0, 1}, [4]float32{x, y, z, w})

	// A unit offset is doubled by the scale before translating.
	x, _, _, _ = MulVec4(m[:], 1, 0, 0, 1)
	assert.InDelta(t, 9.0, float64(x), 1e-5)
}

func TestBuildModelMatrixRotationY(t *testing.T) {
	var m [16]float32
	BuildModelMatrix(m[:], 0, 0, 0, 0, float32(math.Pi/2), 0, 1)

	// A quarter turn around y sends +z to +x.
	x, y, z, _ := MulVec4(m[:], 0, 0, 1, 1)
	assert.InDelta(t, 1.0, float64(x), 1e-5)
	assert.InDelta(t, 0.0, float64(y), 1e-5)
	assert.InDelta(t, 0.0, float64(z), 1e-5)
}

func TestNormalMatrixUniformScale(t *testing.T) {
	var m [16]float32
	var n [9]float32
	BuildModelMatrix(m[:], 3, -2, 5, 0, 0, 0, 4)

	require.True(t, NormalMatrix(n[:], m[:]))

	// Under uniform scale the normal direction is unchanged after
	// renormalizing.
	ox, oy, oz := MulVec3Mat3(n[:], 0, 1, 0)
	v := Normalize3([3]float32{ox, oy, oz})
	assert.InDelta(t, 0.0, float64(v[0]), 1e-5)
	assert.InDelta(t, 1.0, float64(v[1]), 1e-5)
	assert.InDelta(t, 0.0, float64(v[2]), 1e-5)
}

func TestNormalMatrixSingularFallsBackToIdentity(t *testing.T) {
	var m [16]float32 // all zeros: singular upper-left block
	var n [9]float32

	require.False(t, NormalMatrix(n[:], m[:]))

	ox, oy, oz := MulVec3Mat3(n[:], 0.5, -0.25, 1)
	assert.Equal(t, [3]float32{0.5, -0.25, 1}, [3]float32{ox, oy, oz})
}

func TestLookAtTransformsEyeToOrigin(t *testing.T) {
	var v [16]float32
	LookAt(v[:], 0, 0, 5, 0, 0, 0, 0, 1, 0)

	// The eye maps to the view-space origin.
	x, y, z, _ := MulVec4(v[:], 0, 0, 5, 1)
	assert.InDelta(t, 0.0, float64(x), 1e-5)
	assert.InDelta(t, 0.0, float64(y), 1e-5)
	assert.InDelta(t, 0.0, float64(z), 1e-5)

	// The target sits on the -z axis at the eye distance.
	_, _, z, _ = MulVec4(v[:], 0, 0, 0, 1)
	assert.InDelta(t, -5.0, float64(z), 1e-5)
}

func TestNormalize3(t *testing.T) {
	v := Normalize3([3]float32{3, 0, 4})
	assert.InDelta(t, 0.6, float64(v[0]), 1e-5)
	assert.InDelta(t, 0.8, float64(v[2]), 1e-5)

	// The zero vector passes through untouched.
	assert.Equal(t, [3]float32{0, 0, 0}, Normalize3([3]float32{0, 0, 0}))
}

func TestDot3(t *testing.T) {
	assert.Equal(t, float32(0), Dot3([3]float32{1, 0, 0}, [3]float32{0, 1, 0}))
	assert.Equal(t, float32(1), Dot3([3]float32{0, 0, 1}, [3]float32{0, 0, 1}))
	assert.Equal(t, float32(-2), Dot3([3]float32{1, 1, 0}, [3]float32{-1, -1, 0}))
}
