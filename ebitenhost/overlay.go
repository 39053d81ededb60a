package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/cartoon"
)

var overlayImage *ebiten.Image

// drawOverlay prints FPS, TPS and the playback clock in the top-left corner.
func drawOverlay(screen *ebiten.Image, p *cartoon.Player) {
	if overlayImage == nil {
		// 140x48 fits three debug-font lines
		overlayImage = ebiten.NewImage(140, 48)
	}
	overlayImage.Clear()
	overlayImage.Fill(color.RGBA{0, 0, 0, 128})

	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	if p != nil {
		msg += fmt.Sprintf("\n%s %s / %s", p.Status(), cartoon.FormatClock(p.Time()), cartoon.FormatClock(p.Duration()))
	}
	ebitenutil.DebugPrint(overlayImage, msg)
	screen.DrawImage(overlayImage, nil)
}
