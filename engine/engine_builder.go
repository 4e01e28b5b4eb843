package engine

import (
	"github.com/DanielDubon/ShadersLab/engine/scene"
	"github.com/DanielDubon/ShadersLab/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithHUD enables or disables the on-screen stats overlay.
//
// Parameters:
//   - enabled: if true, enables the HUD
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithHUD(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.hudEnabled = enabled
	}
}

// WithWindow sets a pre-configured window for the engine to drive.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.win = w
	}
}

// WithScene registers a scene at the given z-index key during engine construction.
// Scenes are rendered in ascending key order during the frame loop.
//
// Parameters:
//   - key: the z-index determining render order (lower renders first)
//   - s: the Scene to register
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(key int, s scene.Scene) EngineBuilderOption {
	return func(e *engine) {
		s.SetZIndex(key)
		e.scenes[key] = s
	}
}
