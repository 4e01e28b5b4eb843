package renderer

import (
	"github.com/DanielDubon/ShadersLab/common"
)

// TriangleFragments rasterizes one screen-space triangle into fragments.
// Coverage uses barycentric coordinates normalized by the triangle's signed
// area, which makes the test independent of winding order. Triangles with
// zero area produce no fragments, and the bounding box is clamped to the
// target dimensions so out-of-view geometry costs nothing.
//
// Parameters:
//   - v0, v1, v2: the triangle's screen-mapped vertices
//   - width, height: the target dimensions in pixels
//   - lightDir: the normalized directional light vector
//
// Returns:
//   - []common.Fragment: one fragment per covered pixel, nil when the
//     triangle is degenerate or fully outside the target
func TriangleFragments(v0, v1, v2 TransformedVertex, width, height int, lightDir [3]float32) []common.Fragment {
	x0, y0 := v0.Screen[0], v0.Screen[1]
	x1, y1 := v1.Screen[0], v1.Screen[1]
	x2, y2 := v2.Screen[0], v2.Screen[1]

	area := (x1-x0)*(y2-y0) - (y1-y0)*(x2-x0)
	if area == 0 {
		return nil
	}
	invArea := 1 / area

	minX := int(min3(x0, x1, x2))
	maxX := int(max3(x0, x1, x2)) + 1
	minY := int(min3(y0, y1, y2))
	maxY := int(max3(y0, y1, y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > width-1 {
		maxX = width - 1
	}
	if maxY > height-1 {
		maxY = height - 1
	}
	if minX > maxX || minY > maxY {
		return nil
	}

	var fragments []common.Fragment
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			sx := float32(px) + 0.5
			sy := float32(py) + 0.5

			// Normalizing by the signed area keeps all three weights
			// non-negative inside the triangle for either winding.
			l0 := ((x1-sx)*(y2-sy) - (y1-sy)*(x2-sx)) * invArea
			l1 := ((x2-sx)*(y0-sy) - (y2-sy)*(x0-sx)) * invArea
			l2 := 1 - l0 - l1

			if l0 < 0 || l1 < 0 || l2 < 0 {
				continue
			}

			depth := l0*v0.Screen[2] + l1*v1.Screen[2] + l2*v2.Screen[2]

			position := [3]float32{
				l0*v0.Vertex.Position[0] + l1*v1.Vertex.Position[0] + l2*v2.Vertex.Position[0],
				l0*v0.Vertex.Position[1] + l1*v1.Vertex.Position[1] + l2*v2.Vertex.Position[1],
				l0*v0.Vertex.Position[2] + l1*v1.Vertex.Position[2] + l2*v2.Vertex.Position[2],
			}

			normal := common.Normalize3([3]float32{
				l0*v0.Normal[0] + l1*v1.Normal[0] + l2*v2.Normal[0],
				l0*v0.Normal[1] + l1*v1.Normal[1] + l2*v2.Normal[1],
				l0*v0.Normal[2] + l1*v1.Normal[2] + l2*v2.Normal[2],
			})

			intensity := common.Dot3(normal, lightDir)
			if intensity < 0 {
				intensity = 0
			}

			fragments = append(fragments, common.Fragment{
				X:         px,
				Y:         py,
				Depth:     depth,
				Position:  position,
				Normal:    normal,
				Intensity: intensity,
			})
		}
	}

	return fragments
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
