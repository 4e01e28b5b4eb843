package engine

import (
	"fmt"
	"image/color"

	"github.com/DanielDubon/ShadersLab/engine/renderer"
	"tinygo.org/x/tinyfont"
)

// hudStats is the per-frame data shown by the overlay.
type hudStats struct {
	fps       float64
	bodies    int
	culled    int
	frame     uint32
	deltaTime float32
}

var hudColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// drawHUD writes the stats overlay into the framebuffer's top-left corner.
// The framebuffer doubles as the display driver, so the glyphs land directly
// in the color plane after scene rendering and before presentation.
func drawHUD(fb renderer.Framebuffer, stats hudStats) {
	lines := []string{
		fmt.Sprintf("FPS %.1f", stats.fps),
		fmt.Sprintf("BODIES %d (CULLED %d)", stats.bodies, stats.culled),
		fmt.Sprintf("FRAME %d  %.1f MS", stats.frame, stats.deltaTime*1000),
	}

	y := int16(10)
	for _, line := range lines {
		tinyfont.WriteLine(fb, &tinyfont.Org01, 4, y, line, hudColor)
		y += 10
	}
}
