package game_object

import (
	"github.com/DanielDubon/ShadersLab/engine/model"
	"github.com/DanielDubon/ShadersLab/engine/renderer/material"
)

// planetSpin is the shared per-frame y rotation of every body.
const planetSpin = 0.01

// SolarSystem builds the nine stock bodies, sun through neptune, all sharing
// one sphere mesh. Bodies are laid out along the +x axis at increasing
// distances with sizes that read well at the default camera distance.
//
// Parameters:
//   - mesh: the sphere mesh shared by every body
//
// Returns:
//   - []CelestialBody: the bodies in distance order, sun first
func SolarSystem(mesh model.Mesh) []CelestialBody {
	layout := []struct {
		name  string
		kind  material.Kind
		x     float32
		scale float32
	}{
		{"sun", material.KindSun, 0, 2.0},
		{"mercury", material.KindMercury, 3, 0.4},
		{"venus", material.KindVenus, 5, 0.6},
		{"earth", material.KindEarth, 7, 0.7},
		{"mars", material.KindMars, 9, 0.5},
		{"jupiter", material.KindJupiter, 12, 1.5},
		{"saturn", material.KindSaturn, 15, 1.3},
		{"uranus", material.KindUranus, 18, 0.9},
		{"neptune", material.KindNeptune, 21, 0.9},
	}

	bodies := make([]CelestialBody, 0, len(layout))
	for _, l := range layout {
		bodies = append(bodies, NewCelestialBody(l.name, mesh, l.kind,
			WithPosition(l.x, 0, 0),
			WithScale(l.scale),
			WithSpinRate(0, planetSpin, 0),
		))
	}
	return bodies
}
