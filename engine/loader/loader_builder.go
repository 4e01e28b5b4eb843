package loader

// LoaderBuilderOption defines a functional option for configuring a loader
// during creation.
type LoaderBuilderOption func(*loader)

// WithBackend pins the loader to one file format backend, bypassing
// extension-based selection in Load.
//
// Parameters:
//   - backendType: the backend type to use for all loads
//
// Returns:
//   - LoaderBuilderOption: the option function
func WithBackend(backendType LoaderBackendType) LoaderBuilderOption {
	return func(l *loader) {
		switch backendType {
		case BackendTypeOBJ:
			l.backend = newOBJBackend()
		}
	}
}
