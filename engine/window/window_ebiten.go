package window

import (
	"image"

	"github.com/DanielDubon/ShadersLab/common"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyMap translates the engine's virtual key codes to ebiten keys.
var keyMap = map[uint32]ebiten.Key{
	common.KeyW: ebiten.KeyW,
	common.KeyA: ebiten.KeyA,
	common.KeyS: ebiten.KeyS,
	common.KeyD: ebiten.KeyD,
	common.KeyQ: ebiten.KeyQ,
	common.KeyE: ebiten.KeyE,
	common.KeyH: ebiten.KeyH,
	common.KeyP: ebiten.KeyP,

	common.KeySpace: ebiten.KeySpace,
	common.KeyEsc:   ebiten.KeyEscape,

	common.KeyRight: ebiten.KeyArrowRight,
	common.KeyLeft:  ebiten.KeyArrowLeft,
	common.KeyDown:  ebiten.KeyArrowDown,
	common.KeyUp:    ebiten.KeyArrowUp,
}

func ebitenKeyFor(keyCode uint32) (ebiten.Key, bool) {
	key, ok := keyMap[keyCode]
	return key, ok
}

// gameAdapter bridges the Window contract onto ebiten's Game loop.
type gameAdapter struct {
	w *windowImpl

	img   *image.RGBA
	fbImg *ebiten.Image
}

func (g *gameAdapter) Update() error {
	g.w.mu.Lock()
	running := g.w.running
	callback := g.w.updateCallback
	g.w.mu.Unlock()

	if !running {
		return ebiten.Termination
	}
	if callback != nil {
		if err := callback(); err != nil {
			return err
		}
	}
	return nil
}

func (g *gameAdapter) Draw(screen *ebiten.Image) {
	g.w.mu.Lock()
	frame := g.w.frame
	fw, fh := g.w.frameWidth, g.w.frameHeight
	g.w.mu.Unlock()

	if len(frame) == 0 || fw <= 0 || fh <= 0 || len(frame) < fw*fh*4 {
		return
	}

	if g.img == nil || g.img.Bounds().Dx() != fw || g.img.Bounds().Dy() != fh {
		g.img = image.NewRGBA(image.Rect(0, 0, fw, fh))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fw, fh)
	}

	copy(g.img.Pix, frame[:fw*fh*4])
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w.mu.Lock()
	defer g.w.mu.Unlock()

	if g.w.resizeCallback != nil && g.w.scale > 0 {
		lw := outsideWidth / g.w.scale
		lh := outsideHeight / g.w.scale
		if lw > 0 && lh > 0 && (lw != g.w.width || lh != g.w.height) {
			g.w.width = lw
			g.w.height = lh
			// Unlock around the callback so it can query the window freely.
			cb := g.w.resizeCallback
			g.w.mu.Unlock()
			cb(lw, lh)
			g.w.mu.Lock()
		}
	}

	return g.w.width, g.w.height
}
