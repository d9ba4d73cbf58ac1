package birthday

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the FPS readout is redrawn, in seconds.
const fpsRefresh = 0.5

// fpsWidget displays the current FPS and TPS in the top-left corner.
// It uses a small internal image and ebitenutil.DebugPrint for rendering.
type fpsWidget struct {
	img        *ebiten.Image
	sinceFlush float64
	dirty      bool
}

func newFPSWidget() *fpsWidget {
	return &fpsWidget{dirty: true}
}

// update marks the readout for redraw every fpsRefresh seconds.
func (w *fpsWidget) update(dt float64) {
	w.sinceFlush += dt
	if w.sinceFlush >= fpsRefresh {
		w.sinceFlush = 0
		w.dirty = true
	}
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	if w.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		w.img = ebiten.NewImage(100, 32)
	}
	if w.dirty {
		w.dirty = false
		w.img.Clear()
		// Semi-transparent background for readability
		w.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(w.img, nil)
}
