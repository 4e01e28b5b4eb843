// Package window wraps the desktop presentation layer. The engine hands it
// finished RGBA frames and polls it for keyboard state; everything else
// about the platform loop stays behind the Window interface.
package window

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// windowImpl is the implementation of the Window interface.
type windowImpl struct {
	mu *sync.Mutex

	title  string
	width  int
	height int
	scale  int
	tps    int

	running bool

	updateCallback func() error
	resizeCallback func(width, height int)

	// latest presented frame
	frame       []byte
	frameWidth  int
	frameHeight int
}

// Window defines the interface for the desktop presentation layer.
// Run blocks on the platform message loop; each loop iteration invokes the
// update callback, then draws the most recently presented frame.
type Window interface {
	// Run starts the window message loop. Blocks until the window closes or
	// the update callback returns an error.
	//
	// Returns:
	//   - error: error from the platform loop or the update callback
	Run() error

	// SetUpdateCallback sets the function called once per loop iteration,
	// before the frame is drawn. Returning an error stops the loop;
	// returning nil continues.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func() error)

	// SetResizeCallback sets the function called when the window's logical
	// size changes.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// Present hands the window a finished RGBA frame for display. The slice
	// is retained until the next Present call, so callers must not mutate
	// it afterward.
	//
	// Parameters:
	//   - frame: width*height*4 RGBA bytes
	//   - width: the frame width in pixels
	//   - height: the frame height in pixels
	Present(frame []byte, width, height int)

	// IsKeyDown reports whether the key with the given virtual code is
	// currently held.
	//
	// Parameters:
	//   - keyCode: the virtual key code (common/key_codes.go)
	//
	// Returns:
	//   - bool: true if held
	IsKeyDown(keyCode uint32) bool

	// IsRunning returns true while the message loop is active.
	//
	// Returns:
	//   - bool: true if running
	IsRunning() bool

	// Close requests a clean shutdown of the message loop.
	//
	// Returns:
	//   - error: always nil
	Close() error

	// Width returns the window's logical width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the window's logical height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// Ensure windowImpl implements Window interface.
var _ Window = &windowImpl{}

// NewWindow creates a window with an 800x600 logical surface unless
// overridden via options. The window does not open until Run is called.
//
// Parameters:
//   - options: functional options for window configuration
//
// Returns:
//   - Window: the newly created window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &windowImpl{
		mu:     &sync.Mutex{},
		title:  "ShadersLab",
		width:  800,
		height: 600,
		scale:  1,
		tps:    60,
	}

	for _, opt := range options {
		opt(w)
	}

	return w
}

func (w *windowImpl) Run() error {
	w.mu.Lock()
	w.running = true
	title := w.title
	width, height, scale := w.width, w.height, w.scale
	tps := w.tps
	w.mu.Unlock()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width*scale, height*scale)
	ebiten.SetTPS(tps)

	err := ebiten.RunGame(&gameAdapter{w: w})

	w.mu.Lock()
	w.running = false
	w.mu.Unlock()

	return err
}

func (w *windowImpl) SetUpdateCallback(callback func() error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updateCallback = callback
}

func (w *windowImpl) SetResizeCallback(callback func(width, height int)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resizeCallback = callback
}

func (w *windowImpl) Present(frame []byte, width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.frame = frame
	w.frameWidth = width
	w.frameHeight = height
}

func (w *windowImpl) IsKeyDown(keyCode uint32) bool {
	key, ok := ebitenKeyFor(keyCode)
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(key)
}

func (w *windowImpl) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *windowImpl) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.running = false
	return nil
}

func (w *windowImpl) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

func (w *windowImpl) Height() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}
