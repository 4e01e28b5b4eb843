package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerDefaultPosition(t *testing.T) {
	cc := NewCameraController()

	x, y, z := cc.Position()
	assert.InDelta(t, 0.0, float64(x), 1e-5)
	assert.InDelta(t, 0.0, float64(y), 1e-5)
	assert.InDelta(t, 5.0, float64(z), 1e-5)
}

func TestControllerOrbitKeepsRadius(t *testing.T) {
	cc := NewCameraController()

	cc.Orbit(float32(math.Pi/50), 0)
	cc.Orbit(0, float32(math.Pi/50))

	x, y, z := cc.Position()
	tx, ty, tz := cc.Target()
	dx, dy, dz := x-tx, y-ty, z-tz
	dist := math.Sqrt(float64(dx*dx + dy*dy + dz*dz))
	assert.InDelta(t, float64(cc.Radius()), dist, 1e-4)
}

func TestControllerElevationClamped(t *testing.T) {
	cc := NewCameraController()

	cc.Orbit(0, 10)
	assert.LessOrEqual(t, cc.Elevation(), float32(math.Pi/2))

	cc.SetElevation(-10)
	assert.GreaterOrEqual(t, cc.Elevation(), float32(-math.Pi/2))
}

func TestControllerZoomClamped(t *testing.T) {
	cc := NewCameraController()

	cc.Zoom(1000)
	assert.Equal(t, cc.MinRadius(), cc.Radius())

	cc.Zoom(-10000)
	assert.Equal(t, cc.MaxRadius(), cc.Radius())
}

func TestControllerPanMovesTargetAndPosition(t *testing.T) {
	cc := NewCameraController()

	cc.Pan(2, -1)

	tx, ty, tz := cc.Target()
	assert.InDelta(t, 2.0, float64(tx), 1e-5)
	assert.InDelta(t, -1.0, float64(ty), 1e-5)
	assert.InDelta(t, 0.0, float64(tz), 1e-5)

	x, y, z := cc.Position()
	assert.InDelta(t, 2.0, float64(x), 1e-5)
	assert.InDelta(t, -1.0, float64(y), 1e-5)
	assert.InDelta(t, 5.0, float64(z), 1e-5)
}

func TestCameraUpdateRecomputesMatrices(t *testing.T) {
	cc := NewCameraController()
	cam := NewCamera(
		WithController(cc),
		WithAspect(800.0/600.0),
	)

	viewBefore := cam.ViewMatrix()
	projBefore := cam.ProjectionMatrix()
	cc.Orbit(float32(math.Pi/4), 0)
	cam.Update()

	require.NotEqual(t, viewBefore, cam.ViewMatrix())

	// Projection stays put when only the controller moved.
	assert.Equal(t, projBefore, cam.ProjectionMatrix())
}

func TestCameraWithoutControllerUpdateIsNoop(t *testing.T) {
	cam := NewCamera()
	before := cam.ViewMatrix()
	cam.Update()
	assert.Equal(t, before, cam.ViewMatrix())
}
