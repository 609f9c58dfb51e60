package isoview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay displays the current FPS and TPS plus the cursor voxel.
// The text is redrawn every ~0.5 seconds into its own image.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newFPSOverlay() *fpsOverlay {
	// 160x48 is enough for "FPS: 60.0\nTPS: 60.0\ncursor: (63,63,15)"
	return &fpsOverlay{img: ebiten.NewImage(160, 48), lastUpdate: 1}
}

// update refreshes the text after dt seconds have passed.
func (o *fpsOverlay) update(dt float64, v *Viewport) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})

	fps := ebiten.ActualFPS()
	tps := ebiten.ActualTPS()
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\n%s", fps, tps, v.cursorString()))
}

// draw puts the overlay in the top-left corner of the window.
func (o *fpsOverlay) draw(screen *ebiten.Image, v *Viewport) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(v.X), float64(v.Y))
	screen.DrawImage(o.img, &op)
}
