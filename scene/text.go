package scene

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/phanxgames/barrk"
	"golang.org/x/image/font/gofont/gomono"
)

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face *text.GoTextFace
	size float64
	lh   float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("scene: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	return &TTFFont{
		face: face,
		size: size,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// LoadFont loads the TTF file at path, or the embedded Go Mono font when path
// is empty.
func LoadFont(path string, size float64) (*TTFFont, error) {
	if path == "" {
		return LoadTTFFont(gomono.TTF, size)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read font: %w", err)
	}
	f, err := LoadTTFFont(data, size)
	if err != nil {
		return nil, fmt.Errorf("scene: font %s: %w", path, err)
	}
	return f, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the font size in pixels.
func (f *TTFFont) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// Label is a single run of text drawn centered in a rectangle.
type Label struct {
	Content string
	Font    *TTFFont
	Color   barrk.Color
}

// Draw renders the label centered in r. A label without a font draws nothing.
func (l *Label) Draw(dst *ebiten.Image, r Rect) {
	if l.Font == nil || l.Content == "" {
		return
	}
	cx, cy := r.Center()
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(l.Color)
	op.LineSpacing = l.Font.LineHeight()
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, l.Content, l.Font.Face(), op)
}
