package game_object

import (
	"sync"

	"github.com/DanielDubon/ShadersLab/engine/model"
	"github.com/DanielDubon/ShadersLab/engine/renderer/material"
)

type celestialBody struct {
	mu *sync.Mutex

	name    string
	mesh    model.Mesh
	kind    material.Kind
	enabled bool

	position [3]float32
	rotation [3]float32
	scale    float32
	spinRate [3]float32
}

// CelestialBody defines the interface for a scene entity: a mesh placed in
// the world with a material and a constant spin. The scene derives each
// frame's model matrix from the body's transform and the frame counter.
type CelestialBody interface {
	// Name returns the body's unique identifier within a scene.
	//
	// Returns:
	//   - string: the body name
	Name() string

	// Mesh returns the triangle mesh rendered for this body.
	//
	// Returns:
	//   - model.Mesh: the mesh
	Mesh() model.Mesh

	// Material returns the material kind shading this body.
	//
	// Returns:
	//   - material.Kind: the material kind
	Material() material.Kind

	// Enabled returns whether this body is rendered.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Position returns the body's world-space position.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Rotation returns the body's base rotation in radians.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	Rotation() (rx, ry, rz float32)

	// RotationAt returns the body's rotation at the given frame, the base
	// rotation advanced by the spin rate times the frame counter.
	//
	// Parameters:
	//   - frame: the animation frame counter
	//
	// Returns:
	//   - rx, ry, rz: rotation angles
	RotationAt(frame uint32) (rx, ry, rz float32)

	// Scale returns the body's uniform scale factor.
	//
	// Returns:
	//   - float32: the scale
	Scale() float32

	// SpinRate returns the per-frame rotation increment in radians.
	//
	// Returns:
	//   - rx, ry, rz: spin rate components
	SpinRate() (rx, ry, rz float32)

	// SetEnabled sets whether the body is rendered.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetPosition sets the body's world-space position.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetRotation sets the body's base rotation in radians.
	//
	// Parameters:
	//   - rx, ry, rz: rotation angles
	SetRotation(rx, ry, rz float32)

	// SetScale sets the body's uniform scale factor.
	//
	// Parameters:
	//   - scale: the scale
	SetScale(scale float32)

	// SetSpinRate sets the per-frame rotation increment in radians.
	//
	// Parameters:
	//   - rx, ry, rz: spin rate components
	SetSpinRate(rx, ry, rz float32)
}

// Ensure celestialBody implements CelestialBody interface.
var _ CelestialBody = &celestialBody{}

// NewCelestialBody creates a body with the given name, mesh, and material.
// Unless changed via options, the body sits at the origin with scale 1 and
// does not spin.
//
// Parameters:
//   - name: the unique body name
//   - mesh: the triangle mesh to render
//   - kind: the material kind shading the body
//   - options: functional options for body configuration
//
// Returns:
//   - CelestialBody: the newly created body
func NewCelestialBody(name string, mesh model.Mesh, kind material.Kind, options ...CelestialBodyOption) CelestialBody {
	b := &celestialBody{
		mu:      &sync.Mutex{},
		name:    name,
		mesh:    mesh,
		kind:    kind,
		enabled: true,
		scale:   1,
	}

	for _, opt := range options {
		opt(b)
	}

	return b
}

func (b *celestialBody) Name() string {
	return b.name
}

func (b *celestialBody) Mesh() model.Mesh {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mesh
}

func (b *celestialBody) Material() material.Kind {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.kind
}

func (b *celestialBody) Enabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled
}

func (b *celestialBody) Position() (x, y, z float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.position[0], b.position[1], b.position[2]
}

func (b *celestialBody) Rotation() (rx, ry, rz float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rotation[0], b.rotation[1], b.rotation[2]
}

func (b *celestialBody) RotationAt(frame uint32) (rx, ry, rz float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := float32(frame)
	return b.rotation[0] + b.spinRate[0]*t,
		b.rotation[1] + b.spinRate[1]*t,
		b.rotation[2] + b.spinRate[2]*t
}

func (b *celestialBody) Scale() float32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.scale
}

func (b *celestialBody) SpinRate() (rx, ry, rz float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.spinRate[0], b.spinRate[1], b.spinRate[2]
}

func (b *celestialBody) SetEnabled(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = enabled
}

func (b *celestialBody) SetPosition(x, y, z float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.position = [3]float32{x, y, z}
}

func (b *celestialBody) SetRotation(rx, ry, rz float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rotation = [3]float32{rx, ry, rz}
}

func (b *celestialBody) SetScale(scale float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scale = scale
}

func (b *celestialBody) SetSpinRate(rx, ry, rz float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.spinRate = [3]float32{rx, ry, rz}
}
