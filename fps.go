package nebula

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const fpsRefreshInterval = 0.5 // seconds

// fpsOverlay displays the current FPS and TPS in the top-left corner.
// The text is re-rendered into a small image every fpsRefreshInterval.
type fpsOverlay struct {
	img       *ebiten.Image
	sinceDraw float64
	needsDraw bool
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32), needsDraw: true}
}

func (o *fpsOverlay) update(dt float64) {
	o.sinceDraw += dt
	if o.sinceDraw >= fpsRefreshInterval {
		o.sinceDraw = 0
		o.needsDraw = true
	}
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.needsDraw {
		o.needsDraw = false
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(o.img, nil)
}
