package model

import (
	"math"

	"github.com/DanielDubon/ShadersLab/common"
)

// DefaultSphereColor is the vertex color used when callers have no material
// hint to provide. Procedural shaders ignore vertex colors entirely.
var DefaultSphereColor = common.NewColor(255, 255, 255)

// NewUVSphere generates a unit-radius UV sphere centered at the origin,
// triangulated into a flat vertex list. Normals equal the positions (unit
// sphere), texture coordinates are the usual longitude/latitude mapping.
// The poles are built from triangle fans, the body from quad strips split
// into two triangles each.
//
// Parameters:
//   - rings: number of latitude subdivisions (minimum 3)
//   - segments: number of longitude subdivisions (minimum 3)
//   - color: the material hint color assigned to every vertex
//
// Returns:
//   - Mesh: the generated sphere mesh
func NewUVSphere(rings, segments int, color common.Color) Mesh {
	if rings < 3 {
		rings = 3
	}
	if segments < 3 {
		segments = 3
	}

	// Grid of (rings+1) x (segments+1) points; the seam column is duplicated
	// so texture coordinates wrap cleanly.
	grid := make([][3]float32, 0, (rings+1)*(segments+1))
	uvs := make([][2]float32, 0, (rings+1)*(segments+1))
	for r := 0; r <= rings; r++ {
		v := float64(r) / float64(rings)
		theta := v * math.Pi // 0 at the north pole
		sinT, cosT := math.Sin(theta), math.Cos(theta)
		for s := 0; s <= segments; s++ {
			u := float64(s) / float64(segments)
			phi := u * 2 * math.Pi
			sinP, cosP := math.Sin(phi), math.Cos(phi)
			grid = append(grid, [3]float32{
				float32(sinT * cosP),
				float32(cosT),
				float32(sinT * sinP),
			})
			uvs = append(uvs, [2]float32{float32(u), float32(v)})
		}
	}

	at := func(r, s int) int { return r*(segments+1) + s }
	vertex := func(i int) Vertex {
		return Vertex{
			Position:  grid[i],
			Normal:    grid[i], // unit sphere: normal == position
			TexCoords: uvs[i],
			Color:     color,
		}
	}

	vertices := make([]Vertex, 0, rings*segments*6)
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			i00 := at(r, s)
			i01 := at(r, s+1)
			i10 := at(r+1, s)
			i11 := at(r+1, s+1)

			if r > 0 { // degenerate at the north pole
				vertices = append(vertices, vertex(i00), vertex(i01), vertex(i10))
			}
			if r < rings-1 { // degenerate at the south pole
				vertices = append(vertices, vertex(i01), vertex(i11), vertex(i10))
			}
		}
	}

	return NewMesh("uv-sphere", vertices)
}
