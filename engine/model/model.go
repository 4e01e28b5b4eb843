// Package model holds mesh data for the rendering pipeline: immutable vertex
// records and the flat triangle-list meshes built from them.
package model

import (
	"math"

	"github.com/DanielDubon/ShadersLab/common"
)

// Vertex is an immutable input attribute record in model space. Instances are
// created by a mesh source (loader or procedural generator) and never mutated
// afterwards; the vertex stage produces transformed copies instead.
type Vertex struct {
	// Position is the vertex position in model space.
	Position [3]float32

	// Normal is the surface normal in model space.
	Normal [3]float32

	// TexCoords are the 2D texture coordinates.
	TexCoords [2]float32

	// Color is the material hint color carried through the pipeline.
	Color common.Color
}

type mesh struct {
	name           string
	vertices       []Vertex
	boundingRadius float32
}

// Mesh is a triangulated vertex list: every consecutive group of three
// vertices forms one triangle. Meshes are read-only after construction and
// safe to share between bodies and goroutines.
type Mesh interface {
	// Name returns the mesh identifier (file path or generator name).
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Vertices returns the flat vertex list. Callers must not modify it.
	//
	// Returns:
	//   - []Vertex: the vertex list
	Vertices() []Vertex

	// VertexCount returns the number of vertices.
	//
	// Returns:
	//   - int: vertex count
	VertexCount() int

	// TriangleCount returns the number of complete triangles. A trailing
	// partial group of fewer than three vertices is ignored.
	//
	// Returns:
	//   - int: triangle count
	TriangleCount() int

	// BoundingRadius returns the model-space radius of the smallest
	// origin-centered sphere containing every vertex. Used with a body's
	// scale for frustum culling.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

// Ensure mesh implements Mesh interface.
var _ Mesh = &mesh{}

// NewMesh creates a Mesh from a flat, already-triangulated vertex list and
// precomputes its bounding radius.
//
// Parameters:
//   - name: the mesh identifier
//   - vertices: the vertex list (consecutive triples form triangles)
//
// Returns:
//   - Mesh: the constructed mesh
func NewMesh(name string, vertices []Vertex) Mesh {
	m := &mesh{
		name:     name,
		vertices: vertices,
	}

	maxSq := float32(0)
	for i := range vertices {
		p := vertices[i].Position
		sq := p[0]*p[0] + p[1]*p[1] + p[2]*p[2]
		if sq > maxSq {
			maxSq = sq
		}
	}
	m.boundingRadius = float32(math.Sqrt(float64(maxSq)))

	return m
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Vertices() []Vertex {
	return m.vertices
}

func (m *mesh) VertexCount() int {
	return len(m.vertices)
}

func (m *mesh) TriangleCount() int {
	return len(m.vertices) / 3
}

func (m *mesh) BoundingRadius() float32 {
	return m.boundingRadius
}
