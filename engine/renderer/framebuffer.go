package renderer

import (
	"image/color"
	"math"
	"sync"
)

// framebuffer is the implementation of the Framebuffer interface.
type framebuffer struct {
	mu *sync.Mutex

	width  int
	height int

	buffer  []uint32
	zbuffer []float32

	backgroundColor uint32
	currentColor    uint32
}

// Framebuffer defines the interface for the color and depth target of the
// software rasterizer. Colors are stored as packed 0xRRGGBB words; the depth
// buffer holds one float per pixel where smaller values are closer to the
// camera.
//
// Framebuffer also satisfies the drivers.Displayer contract (Size, SetPixel,
// Display) so text overlays can be drawn straight onto it.
type Framebuffer interface {
	// Width returns the framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// Clear resets every pixel to the background color and every depth cell
	// to the farthest representable value.
	Clear()

	// SetCurrentColor sets the color applied by subsequent Point calls.
	//
	// Parameters:
	//   - c: the packed 0xRRGGBB color
	SetCurrentColor(c uint32)

	// SetBackgroundColor sets the color used by Clear.
	//
	// Parameters:
	//   - c: the packed 0xRRGGBB color
	SetBackgroundColor(c uint32)

	// Point writes the current color at (x, y) if depth passes the less-than
	// depth test. Out-of-bounds coordinates are ignored.
	//
	// Parameters:
	//   - x: the pixel column
	//   - y: the pixel row
	//   - depth: the candidate depth value
	Point(x, y int, depth float32)

	// DepthAt returns the stored depth value at (x, y). Out-of-bounds
	// coordinates return the farthest representable value.
	//
	// Parameters:
	//   - x: the pixel column
	//   - y: the pixel row
	//
	// Returns:
	//   - float32: the stored depth value
	DepthAt(x, y int) float32

	// ColorAt returns the packed color at (x, y). Out-of-bounds coordinates
	// return the background color.
	//
	// Parameters:
	//   - x: the pixel column
	//   - y: the pixel row
	//
	// Returns:
	//   - uint32: the packed 0xRRGGBB color
	ColorAt(x, y int) uint32

	// RGBA flattens the color buffer into a tightly packed RGBA byte slice
	// suitable for blitting to a window surface. Alpha is always 255.
	//
	// Returns:
	//   - []byte: width*height*4 bytes in top-to-bottom row order
	RGBA() []byte

	// Resize reallocates the buffers for the new dimensions and clears them.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// Size reports the framebuffer dimensions for display drivers.
	//
	// Returns:
	//   - x: width in pixels
	//   - y: height in pixels
	Size() (x, y int16)

	// SetPixel writes a color at (x, y) bypassing the depth test.
	// Used by text overlay drivers.
	//
	// Parameters:
	//   - x: the pixel column
	//   - y: the pixel row
	//   - c: the color to write
	SetPixel(x, y int16, c color.RGBA)

	// Display is a no-op for the in-memory target; presentation happens by
	// handing RGBA() to the window.
	//
	// Returns:
	//   - error: always nil
	Display() error
}

// Ensure framebuffer implements Framebuffer interface.
var _ Framebuffer = &framebuffer{}

// NewFramebuffer creates a cleared framebuffer with the given dimensions.
//
// Parameters:
//   - width: width in pixels
//   - height: height in pixels
//   - backgroundColor: packed 0xRRGGBB color used by Clear
//
// Returns:
//   - Framebuffer: the newly created framebuffer
func NewFramebuffer(width, height int, backgroundColor uint32) Framebuffer {
	fb := &framebuffer{
		mu:              &sync.Mutex{},
		width:           width,
		height:          height,
		buffer:          make([]uint32, width*height),
		zbuffer:         make([]float32, width*height),
		backgroundColor: backgroundColor,
		currentColor:    0xFFFFFF,
	}
	fb.clearLocked()
	return fb
}

func (fb *framebuffer) Width() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.width
}

func (fb *framebuffer) Height() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.height
}

func (fb *framebuffer) Clear() {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.clearLocked()
}

// clearLocked resets color and depth planes. Caller must hold the mutex.
func (fb *framebuffer) clearLocked() {
	for i := range fb.buffer {
		fb.buffer[i] = fb.backgroundColor
	}
	for i := range fb.zbuffer {
		fb.zbuffer[i] = math.MaxFloat32
	}
}

func (fb *framebuffer) SetCurrentColor(c uint32) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.currentColor = c
}

func (fb *framebuffer) SetBackgroundColor(c uint32) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.backgroundColor = c
}

func (fb *framebuffer) Point(x, y int, depth float32) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	idx := y*fb.width + x
	if depth < fb.zbuffer[idx] {
		fb.zbuffer[idx] = depth
		fb.buffer[idx] = fb.currentColor
	}
}

func (fb *framebuffer) DepthAt(x, y int) float32 {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return math.MaxFloat32
	}
	return fb.zbuffer[y*fb.width+x]
}

func (fb *framebuffer) ColorAt(x, y int) uint32 {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return fb.backgroundColor
	}
	return fb.buffer[y*fb.width+x]
}

func (fb *framebuffer) RGBA() []byte {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	out := make([]byte, len(fb.buffer)*4)
	for i, c := range fb.buffer {
		out[i*4+0] = byte(c >> 16)
		out[i*4+1] = byte(c >> 8)
		out[i*4+2] = byte(c)
		out[i*4+3] = 0xFF
	}
	return out
}

func (fb *framebuffer) Resize(width, height int) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	fb.width = width
	fb.height = height
	fb.buffer = make([]uint32, width*height)
	fb.zbuffer = make([]float32, width*height)
	fb.clearLocked()
}

func (fb *framebuffer) Size() (x, y int16) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return int16(fb.width), int16(fb.height)
}

func (fb *framebuffer) SetPixel(x, y int16, c color.RGBA) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	xi, yi := int(x), int(y)
	if xi < 0 || xi >= fb.width || yi < 0 || yi >= fb.height {
		return
	}
	fb.buffer[yi*fb.width+xi] = uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (fb *framebuffer) Display() error {
	return nil
}
