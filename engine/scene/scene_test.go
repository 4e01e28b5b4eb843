package scene

import (
	"testing"

	"github.com/DanielDubon/ShadersLab/engine/camera"
	"github.com/DanielDubon/ShadersLab/engine/game_object"
	"github.com/DanielDubon/ShadersLab/engine/light"
	"github.com/DanielDubon/ShadersLab/engine/model"
	"github.com/DanielDubon/ShadersLab/engine/renderer"
	"github.com/DanielDubon/ShadersLab/engine/renderer/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene(t *testing.T, width, height int) Scene {
	t.Helper()
	cam := camera.NewCamera(
		camera.WithController(camera.NewCameraController()),
		camera.WithAspect(float32(width)/float32(height)),
	)
	r := renderer.NewRenderer(
		renderer.WithSize(width, height),
		renderer.WithBackground(0x333355),
		renderer.WithWorkers(2),
	)
	return NewScene("test", cam, r, light.NewLight())
}

func sphereBody(name string, kind material.Kind, x, scale float32) game_object.CelestialBody {
	mesh := model.NewUVSphere(8, 12, model.DefaultSphereColor)
	return game_object.NewCelestialBody(name, mesh, kind,
		game_object.WithPosition(x, 0, 0),
		game_object.WithScale(scale),
		game_object.WithSpinRate(0, 0.01, 0),
	)
}

func TestSceneRegistry(t *testing.T) {
	s := testScene(t, 32, 24)

	s.Add(sphereBody("sun", material.KindSun, 0, 2))
	s.Add(sphereBody("earth", material.KindEarth, 7, 0.7))
	assert.Equal(t, 2, s.Count())
	require.NotNil(t, s.Get("sun"))
	assert.Equal(t, material.KindEarth, s.Get("earth").Material())

	// Re-adding under the same name replaces, not duplicates.
	s.Add(sphereBody("sun", material.KindFlat, 0, 1))
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, material.KindFlat, s.Get("sun").Material())

	s.Remove("earth")
	assert.Equal(t, 1, s.Count())
	assert.Nil(t, s.Get("earth"))

	s.Clear()
	assert.Equal(t, 0, s.Count())
}

func TestSceneRenderDrawsVisibleBody(t *testing.T) {
	s := testScene(t, 64, 48)
	s.Add(sphereBody("ball", material.KindFlat, 0, 1))

	s.Render(0)

	// The unit sphere at the origin fills the screen center.
	fb := s.Renderer().Framebuffer()
	assert.NotEqual(t, uint32(0x333355), fb.ColorAt(32, 24))
	assert.Equal(t, 0, s.CulledLastFrame())
}

func TestSceneRenderCullsOffscreenBody(t *testing.T) {
	s := testScene(t, 64, 48)
	s.Add(sphereBody("behind", material.KindFlat, 0, 1))
	s.Get("behind").SetPosition(0, 0, 100) // behind the camera at (0,0,5)

	s.Render(0)
	assert.Equal(t, 1, s.CulledLastFrame())

	s.SetCullingDisabled(true)
	s.Render(0)
	assert.Equal(t, 0, s.CulledLastFrame())
}

func TestSceneRenderSkipsDisabledBody(t *testing.T) {
	s := testScene(t, 64, 48)
	s.Add(sphereBody("ball", material.KindFlat, 0, 1))
	s.Get("ball").SetEnabled(false)

	s.Render(0)

	fb := s.Renderer().Framebuffer()
	assert.Equal(t, uint32(0x333355), fb.ColorAt(32, 24))
}

func TestSceneActiveAndZIndex(t *testing.T) {
	s := testScene(t, 16, 16)

	assert.True(t, s.Active())
	s.SetActive(false)
	assert.False(t, s.Active())

	assert.Equal(t, 0, s.ZIndex())
	s.SetZIndex(3)
	assert.Equal(t, 3, s.ZIndex())
}

func TestSceneRenderCompositesSolarSystem(t *testing.T) {
	s := testScene(t, 80, 60)
	mesh := model.NewUVSphere(8, 12, model.DefaultSphereColor)
	for _, b := range game_object.SolarSystem(mesh) {
		s.Add(b)
	}
	require.Equal(t, 9, s.Count())

	// Two frames render without panicking and animate deterministically.
	s.Renderer().BeginFrame()
	s.Render(0)
	s.Renderer().BeginFrame()
	s.Render(1)
}
