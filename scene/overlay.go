package scene

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Debug font cell size used by ebitenutil.DebugPrint.
const (
	debugGlyphW = 6
	debugGlyphH = 16
	overlayPad  = 4
)

// Overlay is a read-only inspector panel drawn in the top-left corner. It
// lists whatever lines the caller supplies plus the current FPS and TPS.
type Overlay struct {
	Visible bool
	X, Y    int
}

// Toggle flips visibility.
func (o *Overlay) Toggle() {
	o.Visible = !o.Visible
}

// Draw renders lines on a semi-transparent panel. pixel is a 1x1 white image.
func (o *Overlay) Draw(dst *ebiten.Image, pixel *ebiten.Image, lines []string) {
	all := make([]string, 0, len(lines)+1)
	all = append(all, lines...)
	all = append(all, fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))

	w, h := overlaySize(all)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(o.X), float64(o.Y))
	op.ColorScale.Scale(0, 0, 0, 0.6)
	dst.DrawImage(pixel, op)

	ebitenutil.DebugPrintAt(dst, strings.Join(all, "\n"), o.X+overlayPad, o.Y+overlayPad)
}

// overlaySize returns the panel size needed for lines in the debug font.
func overlaySize(lines []string) (int, int) {
	longest := 0
	for _, l := range lines {
		longest = max(longest, len(l))
	}
	return longest*debugGlyphW + 2*overlayPad, len(lines)*debugGlyphH + 2*overlayPad
}
