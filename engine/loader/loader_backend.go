package loader

import (
	"io"

	"github.com/DanielDubon/ShadersLab/engine/model"
)

// loaderBackend is the internal contract for format-specific mesh parsers.
// Backends are stateless; a new instance is created per loader.
type loaderBackend interface {
	// Parse reads a complete mesh from r. The name is used as the mesh
	// identifier and in error messages.
	//
	// Parameters:
	//   - name: the mesh identifier (usually the source path)
	//   - r: the reader providing the raw file contents
	//
	// Returns:
	//   - model.Mesh: the parsed mesh
	//   - error: error if the source is malformed
	Parse(name string, r io.Reader) (model.Mesh, error)
}
