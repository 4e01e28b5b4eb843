package window

// WindowBuilderOption is a function that configures a Window instance during construction.
type WindowBuilderOption func(*windowImpl)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: a function that applies the title option to a window
func WithTitle(title string) WindowBuilderOption {
	return func(w *windowImpl) {
		w.title = title
	}
}

// WithSize sets the logical surface dimensions.
// Non-positive dimensions are ignored.
//
// Parameters:
//   - width: the logical width in pixels
//   - height: the logical height in pixels
//
// Returns:
//   - WindowBuilderOption: a function that applies the size option to a window
func WithSize(width, height int) WindowBuilderOption {
	return func(w *windowImpl) {
		if width > 0 && height > 0 {
			w.width = width
			w.height = height
		}
	}
}

// WithScale sets the integer factor between the logical surface and the
// desktop window. Values below 1 are ignored.
//
// Parameters:
//   - scale: the scale factor
//
// Returns:
//   - WindowBuilderOption: a function that applies the scale option to a window
func WithScale(scale int) WindowBuilderOption {
	return func(w *windowImpl) {
		if scale >= 1 {
			w.scale = scale
		}
	}
}

// WithTPS sets the target ticks per second of the platform loop.
// Values below 1 are ignored.
//
// Parameters:
//   - tps: ticks per second
//
// Returns:
//   - WindowBuilderOption: a function that applies the tps option to a window
func WithTPS(tps int) WindowBuilderOption {
	return func(w *windowImpl) {
		if tps >= 1 {
			w.tps = tps
		}
	}
}
