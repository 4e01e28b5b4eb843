package scene

import "github.com/DanielDubon/ShadersLab/common"

// SceneBuilderOption is a function that configures a Scene instance during construction.
type SceneBuilderOption func(*scene)

// WithZIndex sets the scene's draw ordering key.
//
// Parameters:
//   - zIndex: the z-index (scenes render in ascending order)
//
// Returns:
//   - SceneBuilderOption: a function that applies the z-index option to a scene
func WithZIndex(zIndex int) SceneBuilderOption {
	return func(s *scene) {
		s.zIndex = zIndex
	}
}

// WithCullingDisabled disables frustum culling from the start.
//
// Returns:
//   - SceneBuilderOption: a function that disables culling on a scene
func WithCullingDisabled() SceneBuilderOption {
	return func(s *scene) {
		s.cullingDisabled = true
	}
}

// WithCloudNoise replaces the cloud noise evaluator shared by the scene's
// atmospheric shaders.
//
// Parameters:
//   - n: the evaluator to use
//
// Returns:
//   - SceneBuilderOption: a function that applies the evaluator to a scene
func WithCloudNoise(n common.NoiseEvaluator) SceneBuilderOption {
	return func(s *scene) {
		s.cloudNoise = n
	}
}

// WithTerrainNoise replaces the terrain noise evaluator shared by the
// scene's rocky-surface shaders.
//
// Parameters:
//   - n: the evaluator to use
//
// Returns:
//   - SceneBuilderOption: a function that applies the evaluator to a scene
func WithTerrainNoise(n common.NoiseEvaluator) SceneBuilderOption {
	return func(s *scene) {
		s.terrainNoise = n
	}
}

// WithLavaNoise replaces the lava noise evaluator used by the sun shader.
//
// Parameters:
//   - n: the evaluator to use
//
// Returns:
//   - SceneBuilderOption: a function that applies the evaluator to a scene
func WithLavaNoise(n common.NoiseEvaluator) SceneBuilderOption {
	return func(s *scene) {
		s.lavaNoise = n
	}
}
