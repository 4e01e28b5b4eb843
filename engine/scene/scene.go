package scene

import (
	"sync"

	"github.com/DanielDubon/ShadersLab/common"
	"github.com/DanielDubon/ShadersLab/engine/camera"
	"github.com/DanielDubon/ShadersLab/engine/game_object"
	"github.com/DanielDubon/ShadersLab/engine/light"
	"github.com/DanielDubon/ShadersLab/engine/noise"
	"github.com/DanielDubon/ShadersLab/engine/renderer"
)

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.RWMutex

	name   string
	active bool
	zIndex int

	cam camera.Camera
	r   renderer.Renderer
	lt  light.Light

	bodies map[string]game_object.CelestialBody
	order  []string // insertion order for stable draw ordering

	cullingDisabled bool
	culledLastFrame int

	// Noise evaluators owned by the scene and shared across frames so
	// procedural surfaces stay stable over time.
	cloudNoise   common.NoiseEvaluator
	terrainNoise common.NoiseEvaluator
	lavaNoise    common.NoiseEvaluator
}

// Scene defines the interface for a renderable collection of celestial
// bodies with a camera and a directional light. A scene owns the noise
// evaluators consumed by the procedural shaders, so every body in the scene
// samples the same continuous fields.
type Scene interface {
	// Name retrieves the scene name identifier.
	//
	// Returns:
	//   - string: the scene name
	Name() string

	// Active returns whether this scene is rendered by the engine loop.
	//
	// Returns:
	//   - bool: true if active
	Active() bool

	// SetActive sets whether this scene is rendered by the engine loop.
	//
	// Parameters:
	//   - active: true to render the scene
	SetActive(active bool)

	// ZIndex returns the scene's draw ordering key. Scenes render in
	// ascending z-index.
	//
	// Returns:
	//   - int: the z-index
	ZIndex() int

	// SetZIndex sets the scene's draw ordering key.
	//
	// Parameters:
	//   - zIndex: the new z-index
	SetZIndex(zIndex int)

	// Camera returns the scene's camera.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Renderer returns the renderer drawing this scene.
	//
	// Returns:
	//   - renderer.Renderer: the renderer
	Renderer() renderer.Renderer

	// Light returns the scene's directional light.
	//
	// Returns:
	//   - light.Light: the light
	Light() light.Light

	// Add registers a body for rendering. A body with the same name
	// replaces the earlier one in place, keeping its draw order.
	//
	// Parameters:
	//   - body: the body to add
	Add(body game_object.CelestialBody)

	// Get retrieves a body by name, or nil if not present.
	//
	// Parameters:
	//   - name: the body name
	//
	// Returns:
	//   - game_object.CelestialBody: the body or nil
	Get(name string) game_object.CelestialBody

	// Remove unregisters a body by name. Unknown names are ignored.
	//
	// Parameters:
	//   - name: the body name
	Remove(name string)

	// Clear unregisters every body.
	Clear()

	// Count returns the number of registered bodies.
	//
	// Returns:
	//   - int: the body count
	Count() int

	// CullingDisabled returns whether frustum culling is bypassed.
	//
	// Returns:
	//   - bool: true if culling is disabled
	CullingDisabled() bool

	// SetCullingDisabled toggles frustum culling. Useful when diagnosing
	// disappearing geometry.
	//
	// Parameters:
	//   - disabled: true to bypass culling
	SetCullingDisabled(disabled bool)

	// CulledLastFrame returns how many bodies the last Render call skipped
	// via frustum culling.
	//
	// Returns:
	//   - int: the culled body count
	CulledLastFrame() int

	// Render draws every enabled body for the given frame: it updates the
	// camera, extracts the view frustum, culls bodies by bounding sphere,
	// and issues one renderer draw call per surviving body.
	//
	// Parameters:
	//   - frame: the animation frame counter fed to spins and shaders
	Render(frame uint32)
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a scene bound to a camera, renderer, and light. The noise
// evaluators default to the stock cloud/terrain/lava presets unless
// overridden via options.
//
// Parameters:
//   - name: the scene name
//   - cam: the camera viewing the scene
//   - r: the renderer drawing the scene
//   - lt: the directional light
//   - options: functional options for scene configuration
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, r renderer.Renderer, lt light.Light, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:     &sync.RWMutex{},
		name:   name,
		active: true,
		cam:    cam,
		r:      r,
		lt:     lt,
		bodies: make(map[string]game_object.CelestialBody),

		cloudNoise:   noise.NewCloudNoise(),
		terrainNoise: noise.NewTerrainNoise(),
		lavaNoise:    noise.NewLavaNoise(),
	}

	for _, option := range options {
		option(s)
	}

	if s.lt != nil {
		s.r.SetLightDirection(s.lt.Direction())
	}

	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) ZIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.zIndex
}

func (s *scene) SetZIndex(zIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zIndex = zIndex
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) Renderer() renderer.Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) Light() light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lt
}

func (s *scene) Add(body game_object.CelestialBody) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.bodies[body.Name()]; !exists {
		s.order = append(s.order, body.Name())
	}
	s.bodies[body.Name()] = body
}

func (s *scene) Get(name string) game_object.CelestialBody {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bodies[name]
}

func (s *scene) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.bodies[name]; !exists {
		return
	}
	delete(s.bodies, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies = make(map[string]game_object.CelestialBody)
	s.order = nil
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bodies)
}

func (s *scene) CullingDisabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cullingDisabled
}

func (s *scene) SetCullingDisabled(disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cullingDisabled = disabled
}

func (s *scene) CulledLastFrame() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.culledLastFrame
}

func (s *scene) Render(frame uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cam.Update()

	fb := s.r.Framebuffer()
	width := fb.Width()
	height := fb.Height()
	s.cam.SetAspect(float32(width) / float32(height))

	viewProjection := s.cam.ViewProjectionMatrix()
	frustum := common.ExtractFrustumFromMatrix(viewProjection[:])

	u := common.Uniforms{
		ViewMatrix:       s.cam.ViewMatrix(),
		ProjectionMatrix: s.cam.ProjectionMatrix(),
		Time:             frame,
		CloudNoise:       s.cloudNoise,
		TerrainNoise:     s.terrainNoise,
		LavaNoise:        s.lavaNoise,
	}
	common.Viewport(u.ViewportMatrix[:], float32(width), float32(height))

	culled := 0
	for _, name := range s.order {
		body := s.bodies[name]
		if body == nil || !body.Enabled() {
			continue
		}

		px, py, pz := body.Position()
		scale := body.Scale()

		if !s.cullingDisabled {
			radius := scale * body.Mesh().BoundingRadius()
			if !frustum.IntersectsSphere(px, py, pz, radius) {
				culled++
				continue
			}
		}

		rx, ry, rz := body.RotationAt(frame)
		common.BuildModelMatrix(u.ModelMatrix[:], px, py, pz, rx, ry, rz, scale)

		s.r.DrawMesh(body.Mesh(), &u, body.Material())
	}
	s.culledLastFrame = culled
}
