package renderer

// RendererBuilderOption is a function that configures a Renderer instance during construction.
type RendererBuilderOption func(*renderer)

// WithSize sets the initial framebuffer dimensions.
// Non-positive dimensions are ignored.
//
// Parameters:
//   - width: the framebuffer width in pixels
//   - height: the framebuffer height in pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the size option to a renderer
func WithSize(width, height int) RendererBuilderOption {
	return func(r *renderer) {
		if width > 0 && height > 0 {
			r.pendingWidth = width
			r.pendingHeight = height
		}
	}
}

// WithBackground sets the clear color of the framebuffer.
//
// Parameters:
//   - c: the packed 0xRRGGBB background color
//
// Returns:
//   - RendererBuilderOption: a function that applies the background option to a renderer
func WithBackground(c uint32) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingBackground = c
	}
}

// WithWorkers sets the worker pool size for the parallel pipeline stages.
// Values below 1 are ignored.
//
// Parameters:
//   - workers: the number of pool workers
//
// Returns:
//   - RendererBuilderOption: a function that applies the workers option to a renderer
func WithWorkers(workers int) RendererBuilderOption {
	return func(r *renderer) {
		if workers > 0 {
			r.workers = workers
		}
	}
}

// WithLightDirection sets the directional light vector used for fragment
// intensity. The vector is normalized before use.
//
// Parameters:
//   - x, y, z: the light direction components
//
// Returns:
//   - RendererBuilderOption: a function that applies the light option to a renderer
func WithLightDirection(x, y, z float32) RendererBuilderOption {
	return func(r *renderer) {
		r.lightDir = normalizeDir(x, y, z)
	}
}
