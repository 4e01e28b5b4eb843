package engine

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/DanielDubon/ShadersLab/engine/profiler"
	"github.com/DanielDubon/ShadersLab/engine/scene"
	"github.com/DanielDubon/ShadersLab/engine/window"
)

// engine implements the Engine interface.
// The window's platform loop drives everything: each iteration fires the
// tick callback, renders the active scenes in z-index order, overlays the
// HUD, and presents the finished frame.
type engine struct {
	mu *sync.Mutex

	win window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool
	hudEnabled       bool

	tickCallback func(deltaTime float32)
	lastTick     time.Time

	frame  uint32
	scenes map[int]scene.Scene
}

// Engine is the main entry point for the engine.
// It orchestrates the frame loop, scene rendering, and window management.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// EnableHUD enables the on-screen stats overlay.
	EnableHUD()

	// DisableHUD disables the on-screen stats overlay.
	DisableHUD()

	// HUDEnabled returns whether the stats overlay is currently drawn.
	//
	// Returns:
	//   - bool: true if the HUD is enabled
	HUDEnabled() bool

	// SetTickCallback registers the function called once per frame before
	// rendering. Use this for input processing and animation updates.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// Frame returns the monotonically increasing frame counter fed to
	// scene rendering and shader animation.
	//
	// Returns:
	//   - uint32: the frame counter
	Frame() uint32

	// AddScene registers a scene at the given z-index key.
	// Scenes are rendered in ascending key order each frame.
	//
	// Parameters:
	//   - key: the z-index determining render order (lower renders first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given z-index key.
	//
	// Parameters:
	//   - key: the z-index of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given z-index key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the z-index of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes keyed by z-index.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Run starts the main loop. Blocks until the window closes or Quit is
	// called.
	//
	// Returns:
	//   - error: error from the platform loop
	Run() error

	// Quit requests a clean shutdown of the main loop.
	// Safe to call multiple times.
	Quit()
}

// Ensure engine implements Engine interface.
var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// A window must be supplied via WithWindow before Run is called.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		mu:       &sync.Mutex{},
		scenes:   make(map[int]scene.Scene),
		profiler: profiler.NewProfiler(),
		lastTick: time.Now(),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.win != nil {
		e.win.SetResizeCallback(func(width, height int) {
			e.mu.Lock()
			defer e.mu.Unlock()
			for _, s := range e.scenes {
				if r := s.Renderer(); r != nil {
					r.Resize(width, height)
				}
				if c := s.Camera(); c != nil {
					c.SetAspect(float32(width) / float32(height))
				}
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.win
}

func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) EnableHUD() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hudEnabled = true
}

func (e *engine) DisableHUD() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hudEnabled = false
}

func (e *engine) HUDEnabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.hudEnabled
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) Frame() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frame
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s.SetZIndex(key)
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[int]scene.Scene, len(e.scenes))
	for k, s := range e.scenes {
		out[k] = s
	}
	return out
}

func (e *engine) Run() error {
	if e.win == nil {
		return fmt.Errorf("engine: no window configured")
	}
	e.win.SetUpdateCallback(e.step)
	return e.win.Run()
}

func (e *engine) Quit() {
	if e.win != nil {
		_ = e.win.Close()
	}
}

// step runs one frame: tick callback, scene rendering in ascending z-index
// order, HUD overlay, and presentation. All active scenes are expected to
// share one renderer so layered scenes composite through the shared depth
// buffer.
func (e *engine) step() error {
	now := time.Now()

	e.mu.Lock()
	dt := float32(now.Sub(e.lastTick).Seconds())
	e.lastTick = now
	callback := e.tickCallback
	frame := e.frame
	e.frame++

	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	activeScenes := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		if s := e.scenes[k]; s.Active() {
			activeScenes = append(activeScenes, s)
		}
	}
	profilingEnabled := e.profilingEnabled
	hudEnabled := e.hudEnabled
	e.mu.Unlock()

	if callback != nil {
		callback(dt)
	}

	if len(activeScenes) > 0 {
		frameRenderer := activeScenes[0].Renderer()
		frameRenderer.BeginFrame()

		bodyCount := 0
		culled := 0
		for _, s := range activeScenes {
			s.Render(frame)
			bodyCount += s.Count()
			culled += s.CulledLastFrame()
		}

		if hudEnabled {
			drawHUD(frameRenderer.Framebuffer(), hudStats{
				fps:       e.profiler.FPS(),
				bodies:    bodyCount,
				culled:    culled,
				frame:     frame,
				deltaTime: dt,
			})
		}

		fb := frameRenderer.Framebuffer()
		e.win.Present(frameRenderer.Frame(), fb.Width(), fb.Height())
	}

	if profilingEnabled || hudEnabled {
		e.profiler.SetLogging(profilingEnabled)
		e.profiler.Tick()
	}

	return nil
}
