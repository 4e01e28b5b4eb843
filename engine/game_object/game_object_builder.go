package game_object

// CelestialBodyOption is a function that configures a CelestialBody during construction.
type CelestialBodyOption func(*celestialBody)

// WithPosition sets the body's world-space position.
//
// Parameters:
//   - x, y, z: position components
//
// Returns:
//   - CelestialBodyOption: a function that applies the position option to a body
func WithPosition(x, y, z float32) CelestialBodyOption {
	return func(b *celestialBody) {
		b.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the body's base rotation in radians.
//
// Parameters:
//   - rx, ry, rz: rotation angles
//
// Returns:
//   - CelestialBodyOption: a function that applies the rotation option to a body
func WithRotation(rx, ry, rz float32) CelestialBodyOption {
	return func(b *celestialBody) {
		b.rotation = [3]float32{rx, ry, rz}
	}
}

// WithScale sets the body's uniform scale factor.
//
// Parameters:
//   - scale: the scale
//
// Returns:
//   - CelestialBodyOption: a function that applies the scale option to a body
func WithScale(scale float32) CelestialBodyOption {
	return func(b *celestialBody) {
		b.scale = scale
	}
}

// WithSpinRate sets the per-frame rotation increment in radians.
//
// Parameters:
//   - rx, ry, rz: spin rate components
//
// Returns:
//   - CelestialBodyOption: a function that applies the spin rate option to a body
func WithSpinRate(rx, ry, rz float32) CelestialBodyOption {
	return func(b *celestialBody) {
		b.spinRate = [3]float32{rx, ry, rz}
	}
}

// WithEnabled sets whether the body starts out rendered.
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - CelestialBodyOption: a function that applies the enabled option to a body
func WithEnabled(enabled bool) CelestialBodyOption {
	return func(b *celestialBody) {
		b.enabled = enabled
	}
}
