package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testFrustum builds a frustum for a camera at (0, 0, 5) looking at the
// origin with a 45 degree vertical field of view.
func testFrustum(t *testing.T) Frustum {
	t.Helper()

	var view, proj, viewProj [16]float32
	LookAt(view[:], 0, 0, 5, 0, 0, 0, 0, 1, 0)
	Perspective(proj[:], float32(math.Pi/4), 4.0/3.0, 0.1, 100)
	Mul4(viewProj[:], proj[:], view[:])

	return ExtractFrustumFromMatrix(viewProj[:])
}

func TestFrustumContainsLookTarget(t *testing.T) {
	f := testFrustum(t)

	assert.True(t, f.IntersectsSphere(0, 0, 0, 0.5))
	assert.True(t, f.IntersectsSphere(0, 0, 0, 0))
}

func TestFrustumRejectsSphereBehindCamera(t *testing.T) {
	f := testFrustum(t)

	assert.False(t, f.IntersectsSphere(0, 0, 10, 1))
}

func TestFrustumRejectsSphereBeyondFarPlane(t *testing.T) {
	f := testFrustum(t)

	assert.False(t, f.IntersectsSphere(0, 0, -200, 1))
}

func TestFrustumRejectsSphereFarToTheSide(t *testing.T) {
	f := testFrustum(t)

	assert.False(t, f.IntersectsSphere(100, 0, 0, 1))
	assert.False(t, f.IntersectsSphere(-100, 0, 0, 1))
	assert.False(t, f.IntersectsSphere(0, 100, 0, 1))
}

func TestFrustumKeepsStraddlingSphere(t *testing.T) {
	f := testFrustum(t)

	// A sphere centered outside the left plane but large enough to reach
	// back inside must survive culling.
	assert.False(t, f.IntersectsSphere(-10, 0, 0, 1))
	assert.True(t, f.IntersectsSphere(-10, 0, 0, 20))
}

func TestFrustumPlaneNormalsAreUnitLength(t *testing.T) {
	f := testFrustum(t)

	for i := range f.Planes {
		n := f.Planes[i].Normal
		lenSq := n[0]*n[0] + n[1]*n[1] + n[2]*n[2]
		assert.InDelta(t, 1.0, float64(lenSq), 1e-4)
	}
}
