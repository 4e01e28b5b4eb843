package game_object

import (
	"testing"

	"github.com/DanielDubon/ShadersLab/engine/model"
	"github.com/DanielDubon/ShadersLab/engine/renderer/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMesh() model.Mesh {
	return model.NewMesh("tri", []model.Vertex{
		{Position: [3]float32{0, 0, 0}},
		{Position: [3]float32{1, 0, 0}},
		{Position: [3]float32{0, 1, 0}},
	})
}

func TestNewCelestialBodyDefaults(t *testing.T) {
	b := NewCelestialBody("earth", testMesh(), material.KindEarth)

	assert.Equal(t, "earth", b.Name())
	assert.Equal(t, material.KindEarth, b.Material())
	assert.True(t, b.Enabled())
	assert.Equal(t, float32(1), b.Scale())

	x, y, z := b.Position()
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Zero(t, z)
}

func TestRotationAtAdvancesWithSpin(t *testing.T) {
	b := NewCelestialBody("mars", testMesh(), material.KindMars,
		WithRotation(0.1, 0.2, 0.3),
		WithSpinRate(0, 0.01, 0),
	)

	rx, ry, rz := b.RotationAt(0)
	assert.InDelta(t, 0.1, float64(rx), 1e-6)
	assert.InDelta(t, 0.2, float64(ry), 1e-6)
	assert.InDelta(t, 0.3, float64(rz), 1e-6)

	_, ry, _ = b.RotationAt(100)
	assert.InDelta(t, 1.2, float64(ry), 1e-4)
}

func TestSettersOverrideOptions(t *testing.T) {
	b := NewCelestialBody("venus", testMesh(), material.KindVenus,
		WithPosition(5, 0, 0),
		WithScale(0.6),
	)

	b.SetPosition(1, 2, 3)
	b.SetScale(2)
	b.SetEnabled(false)

	x, y, z := b.Position()
	assert.Equal(t, [3]float32{1, 2, 3}, [3]float32{x, y, z})
	assert.Equal(t, float32(2), b.Scale())
	assert.False(t, b.Enabled())
}

func TestSolarSystemLayout(t *testing.T) {
	mesh := testMesh()
	bodies := SolarSystem(mesh)
	require.Len(t, bodies, 9)

	assert.Equal(t, "sun", bodies[0].Name())
	assert.Equal(t, material.KindSun, bodies[0].Material())
	assert.Equal(t, float32(2.0), bodies[0].Scale())

	assert.Equal(t, "neptune", bodies[8].Name())
	x, _, _ := bodies[8].Position()
	assert.Equal(t, float32(21), x)

	// Every body spins around y and shares the mesh.
	for _, b := range bodies {
		_, ry, _ := b.SpinRate()
		assert.Equal(t, float32(planetSpin), ry, b.Name())
		assert.Equal(t, mesh, b.Mesh(), b.Name())
	}
}
