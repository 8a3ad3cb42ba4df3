package render

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomonobold"
)

// fontCache hands out text faces by size, all from the embedded Go Mono
// Bold face so the game ships without font assets.
type fontCache struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func newFontCache() *fontCache {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
	if err != nil {
		log.Fatalf("failed to parse embedded font: %v", err)
	}
	return &fontCache{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
	}
}

func (f *fontCache) face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// drawText draws left-aligned text with a soft drop shadow at (x, y) on the
// frame, y being the top of the line.
func (r *Renderer) drawText(str string, x, y, size float64, col color.RGBA) {
	r.drawAligned(str, x, y, size, col, text.AlignStart)
}

// drawCenteredText centers the text horizontally around x.
func (r *Renderer) drawCenteredText(str string, x, y, size float64, col color.RGBA) {
	r.drawAligned(str, x, y, size, col, text.AlignCenter)
}

// drawTitleText is drawCenteredText with a heavier shadow for headings.
func (r *Renderer) drawTitleText(str string, x, y, size float64, col color.RGBA) {
	face := r.fonts.face(size)

	shadow := &text.DrawOptions{}
	shadow.GeoM.Translate(x+5, y+5)
	shadow.ColorScale.ScaleWithColor(color.RGBA{A: 200})
	shadow.PrimaryAlign = text.AlignCenter
	text.Draw(r.frame, str, face, shadow)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(r.frame, str, face, op)
}

func (r *Renderer) drawAligned(str string, x, y, size float64, col color.RGBA, align text.Align) {
	face := r.fonts.face(size)

	shadow := &text.DrawOptions{}
	shadow.GeoM.Translate(x+2, y+2)
	shadow.ColorScale.ScaleWithColor(color.RGBA{A: 160})
	shadow.PrimaryAlign = align
	text.Draw(r.frame, str, face, shadow)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	op.PrimaryAlign = align
	text.Draw(r.frame, str, face, op)
}
