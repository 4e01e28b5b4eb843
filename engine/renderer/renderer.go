package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/DanielDubon/ShadersLab/common"
	"github.com/DanielDubon/ShadersLab/engine/model"
	"github.com/DanielDubon/ShadersLab/engine/renderer/material"
)

// shadedPoint is one depth-tested pixel candidate produced by a triangle
// task. Shading happens in parallel; the framebuffer write happens serially
// so the depth test stays atomic per pixel.
type shadedPoint struct {
	x, y  int
	depth float32
	color uint32
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	fb Framebuffer

	pool        worker.DynamicWorkerPool
	workers     int // stored so we can log/inspect the configured count
	taskCounter int

	lightDir [3]float32

	// Pre-creation config collected from builder options
	pendingWidth      int
	pendingHeight     int
	pendingBackground uint32
}

// Renderer defines the interface for the software rasterization pipeline.
//
// A draw call runs three stages: the vertex stage transforms every mesh
// vertex to screen space, rasterization turns consecutive vertex triples
// into fragments, and the fragment stage shades each fragment with the
// mesh's material. Vertex transform and per-triangle shading run on a shared
// worker pool; depth-tested framebuffer writes are serialized.
type Renderer interface {
	// Framebuffer returns the render target.
	//
	// Returns:
	//   - Framebuffer: the color and depth target
	Framebuffer() Framebuffer

	// Resize reallocates the render target for new window dimensions.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// BeginFrame clears the color and depth planes. Call once per frame
	// before any DrawMesh calls.
	BeginFrame()

	// DrawMesh runs the full pipeline for one mesh: vertex transform,
	// triangle rasterization, fragment shading, and depth-tested writes.
	// Meshes drawn later in the same frame composite correctly against
	// earlier ones through the shared depth buffer.
	//
	// Parameters:
	//   - m: the triangle-list mesh to draw
	//   - u: the per-body uniforms (matrices, time, noise evaluators)
	//   - kind: the material shading the mesh
	DrawMesh(m model.Mesh, u *common.Uniforms, kind material.Kind)

	// Frame flattens the color buffer to RGBA bytes for presentation.
	//
	// Returns:
	//   - []byte: width*height*4 bytes in top-to-bottom row order
	Frame() []byte

	// SetLightDirection sets the normalized directional light vector used
	// to compute fragment intensity.
	//
	// Parameters:
	//   - dir: the light direction (normalized before use)
	SetLightDirection(dir [3]float32)
}

// Ensure renderer implements Renderer interface.
var _ Renderer = &renderer{}

// NewRenderer creates a renderer with an 800x600 target unless overridden
// via options. The worker pool is sized after options are applied so
// WithWorkers can override the default of NumCPU-1.
//
// Parameters:
//   - options: functional options for renderer configuration
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:                &sync.Mutex{},
		workers:           max(runtime.NumCPU()-1, 1),
		lightDir:          [3]float32{0, 0, 1},
		pendingWidth:      800,
		pendingHeight:     600,
		pendingBackground: 0x000000,
	}

	for _, option := range options {
		option(r)
	}

	r.fb = NewFramebuffer(r.pendingWidth, r.pendingHeight, r.pendingBackground)

	// Queue size of 256 accommodates typical per-mesh triangle batch counts
	// with headroom.
	r.pool = worker.NewDynamicWorkerPool(r.workers, 256, 1*time.Second)

	return r
}

func (r *renderer) Framebuffer() Framebuffer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fb
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fb.Resize(width, height)
}

func (r *renderer) BeginFrame() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fb.Clear()
}

func (r *renderer) Frame() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fb.RGBA()
}

func (r *renderer) SetLightDirection(dir [3]float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lightDir = common.Normalize3(dir)
}

func (r *renderer) DrawMesh(m model.Mesh, u *common.Uniforms, kind material.Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()

	verts := m.Vertices()
	if len(verts) < 3 {
		return
	}

	width := r.fb.Width()
	height := r.fb.Height()
	lightDir := r.lightDir

	vt := newVertexTransformer(u)
	transformed := r.transformVertices(vt, verts, u)

	// Phase 2: parallel rasterization and shading. Each triangle task owns
	// one result slot, so tasks never contend on shared state. A WaitGroup
	// provides per-frame barrier sync since pool.Wait() blocks until workers
	// idle-exit which is unsuitable for frame-rate workloads.
	triangles := len(transformed) / 3
	results := make([][]shadedPoint, triangles)

	var wg sync.WaitGroup
	for tri := 0; tri < triangles; tri++ {
		wg.Add(1)
		triCap := tri
		r.taskCounter++
		r.pool.SubmitTask(worker.Task{
			ID: r.taskCounter,
			Do: func() (any, error) {
				defer wg.Done()

				v0 := transformed[triCap*3+0]
				v1 := transformed[triCap*3+1]
				v2 := transformed[triCap*3+2]

				fragments := TriangleFragments(v0, v1, v2, width, height, lightDir)
				if len(fragments) == 0 {
					return nil, nil
				}

				points := make([]shadedPoint, 0, len(fragments))
				for i := range fragments {
					c := material.Shade(&fragments[i], u, kind)
					points = append(points, shadedPoint{
						x:     fragments[i].X,
						y:     fragments[i].Y,
						depth: fragments[i].Depth,
						color: c.Hex(),
					})
				}
				results[triCap] = points
				return nil, nil
			},
		})
	}
	wg.Wait()

	// Phase 3: serial depth-tested writes. Keeping this single-threaded
	// preserves per-pixel atomicity of the depth test.
	for _, points := range results {
		for _, p := range points {
			r.fb.SetCurrentColor(p.color)
			r.fb.Point(p.x, p.y, p.depth)
		}
	}
}

func normalizeDir(x, y, z float32) [3]float32 {
	return common.Normalize3([3]float32{x, y, z})
}

// transformVertices runs the vertex stage across the pool in contiguous
// chunks. Each chunk writes a disjoint range of the output slice.
func (r *renderer) transformVertices(vt *vertexTransformer, verts []model.Vertex, u *common.Uniforms) []TransformedVertex {
	out := make([]TransformedVertex, len(verts))

	chunk := (len(verts) + r.workers - 1) / r.workers
	if chunk < 1 {
		chunk = 1
	}

	var wg sync.WaitGroup
	for start := 0; start < len(verts); start += chunk {
		end := start + chunk
		if end > len(verts) {
			end = len(verts)
		}

		wg.Add(1)
		s, e := start, end
		r.taskCounter++
		r.pool.SubmitTask(worker.Task{
			ID: r.taskCounter,
			Do: func() (any, error) {
				defer wg.Done()
				for i := s; i < e; i++ {
					out[i] = vt.transform(verts[i], u)
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return out
}
