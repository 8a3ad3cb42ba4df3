package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ayusman/balloonpop/internal/game"
)

var (
	highlightColor = color.RGBA{R: 255, G: 255, B: 255, A: 110}
	stringColor    = color.RGBA{R: 200, G: 200, B: 210, A: 180}
	ringColor      = color.RGBA{R: 255, G: 240, B: 180, A: 255}
	reticleColor   = color.RGBA{R: 255, G: 70, B: 70, A: 255}
)

// drawBalloon renders one balloon on the virtual canvas: string, body and a
// small highlight to sell the round shape.
func drawBalloon(dst *ebiten.Image, b *game.Balloon) {
	x := float32(b.X)
	y := float32(b.Y)
	r := float32(b.Radius)

	vector.StrokeLine(dst, x, y+r, x, y+r+7, 1, stringColor, false)
	vector.DrawFilledCircle(dst, x, y, r, b.Color, false)
	vector.DrawFilledCircle(dst, x-r/3, y-r/3, r/3, highlightColor, false)
}

// drawEffect renders a shot ring, fading as it expands.
func drawEffect(dst *ebiten.Image, e *game.ShootEffect) {
	col := ringColor
	col.A = uint8(255 * (1 - e.Progress()))

	vector.StrokeCircle(dst, float32(e.X), float32(e.Y), float32(e.Radius()), 2, col, false)
}

// drawReticle renders the aim marker: crosshair, breathing ring and a
// center dot with a white rim so it reads on any balloon color.
func drawReticle(dst *ebiten.Image, x, y float64, ticks uint64) {
	fx := float32(x)
	fy := float32(y)

	pulse := float32(pulseRadius(ticks))
	vector.StrokeCircle(dst, fx, fy, pulse, 1, reticleColor, false)

	const arm = 12
	vector.StrokeLine(dst, fx-arm, fy, fx-4, fy, 1, reticleColor, false)
	vector.StrokeLine(dst, fx+4, fy, fx+arm, fy, 1, reticleColor, false)
	vector.StrokeLine(dst, fx, fy-arm, fx, fy-4, 1, reticleColor, false)
	vector.StrokeLine(dst, fx, fy+4, fx, fy+arm, 1, reticleColor, false)

	vector.DrawFilledCircle(dst, fx, fy, 3, color.White, false)
	vector.DrawFilledCircle(dst, fx, fy, 2, reticleColor, false)
}

// drawBorder frames a rectangle on the full-resolution canvas.
func drawBorder(dst *ebiten.Image, x, y float64, w, h int) {
	vector.StrokeRect(dst, float32(x)-2, float32(y)-2, float32(w)+4, float32(h)+4, 2, dimColor, false)
}
