// Package loader imports triangulated meshes from model files. Loading is
// all-or-nothing: a malformed or missing source fails the whole load, there
// is no partial or streaming contract.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/DanielDubon/ShadersLab/engine/model"
)

// LoaderBackendType identifies the model file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeOBJ selects the Wavefront OBJ loader backend.
	BackendTypeOBJ LoaderBackendType = iota
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	meshCache map[string]model.Mesh

	backend loaderBackend
}

// Loader defines the public-facing interface for loading and caching meshes.
// It abstracts the file format behind a generic backend and manages a cache
// of previously loaded meshes.
type Loader interface {
	// Load imports a mesh file and caches the result.
	// If the mesh is already cached (by file path), the cached version is
	// returned. The backend is selected based on the file extension
	// (.obj selects the Wavefront OBJ backend).
	//
	// Parameters:
	//   - path: the file path to the mesh file
	//
	// Returns:
	//   - model.Mesh: the loaded and cached mesh
	//   - error: error if loading fails
	Load(path string) (model.Mesh, error)

	// LoadReader imports a mesh from a reader stream and caches it by the
	// given name.
	//
	// Parameters:
	//   - name: the cache key for the loaded mesh
	//   - r: the reader providing mesh data
	//
	// Returns:
	//   - model.Mesh: the loaded mesh
	//   - error: error if loading fails
	LoadReader(name string, r io.Reader) (model.Mesh, error)

	// Get retrieves a cached mesh by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - model.Mesh: the cached mesh or nil
	Get(name string) model.Mesh

	// Clear empties the mesh cache.
	Clear()
}

// Ensure loader implements Loader interface.
var _ Loader = &loader{}

// NewLoader creates a new Loader with an empty cache.
//
// Parameters:
//   - options: functional options for loader configuration
//
// Returns:
//   - Loader: the newly created loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		meshCache: make(map[string]model.Mesh),
	}

	for _, opt := range options {
		opt(l)
	}

	return l
}

func (l *loader) Load(path string) (model.Mesh, error) {
	l.mu.RLock()
	if m, ok := l.meshCache[path]; ok {
		l.mu.RUnlock()
		return m, nil
	}
	l.mu.RUnlock()

	backend, err := l.backendFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	m, err := backend.Parse(path, f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	l.mu.Lock()
	l.meshCache[path] = m
	l.mu.Unlock()
	return m, nil
}

func (l *loader) LoadReader(name string, r io.Reader) (model.Mesh, error) {
	backend := l.backend
	if backend == nil {
		backend = newOBJBackend()
	}

	m, err := backend.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse from reader: %w", err)
	}

	l.mu.Lock()
	l.meshCache[name] = m
	l.mu.Unlock()
	return m, nil
}

func (l *loader) Get(name string) model.Mesh {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.meshCache[name]
}

func (l *loader) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.meshCache = make(map[string]model.Mesh)
}

// backendFor selects the parsing backend for a file path. A backend injected
// via WithBackend takes precedence over extension-based selection.
func (l *loader) backendFor(path string) (loaderBackend, error) {
	if l.backend != nil {
		return l.backend, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return newOBJBackend(), nil
	default:
		return nil, fmt.Errorf("unsupported model format %q", filepath.Ext(path))
	}
}
