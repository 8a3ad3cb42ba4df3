// Package render draws the game. Entities live on a small virtual canvas
// that is scaled up whole to the output frame, keeping the chunky look
// consistent at any balloon count; text and the camera preview are drawn at
// full resolution on top.
package render

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ayusman/balloonpop/internal/game"
)

// Output geometry. The virtual canvas is the session's playfield; Scale
// maps it onto the frame.
const (
	VirtualWidth  = int(game.FieldWidth)
	VirtualHeight = int(game.FieldHeight)
	Scale         = 4
	ScreenWidth   = VirtualWidth * Scale
	ScreenHeight  = VirtualHeight * Scale
)

// Camera preview size in frame pixels.
const (
	PreviewWidth  = 512
	PreviewHeight = 288
	previewMargin = 16
)

var (
	skyColor    = color.RGBA{R: 18, G: 26, B: 52, A: 255}
	hudColor    = color.RGBA{R: 240, G: 240, B: 245, A: 255}
	dimColor    = color.RGBA{R: 150, G: 155, B: 170, A: 255}
	accentColor = color.RGBA{R: 255, G: 213, B: 80, A: 255}
	goodColor   = color.RGBA{R: 110, G: 230, B: 130, A: 255}
	badColor    = color.RGBA{R: 245, G: 90, B: 90, A: 255}
)

// Renderer composes frames for the game window. It owns the virtual canvas
// and the full-resolution frame; the frame doubles as the screenshot source.
type Renderer struct {
	virtual *ebiten.Image
	frame   *ebiten.Image
	preview *ebiten.Image
	fonts   *fontCache
	ticks   uint64
}

// NewRenderer allocates the canvases and font faces.
func NewRenderer() *Renderer {
	return &Renderer{
		virtual: ebiten.NewImage(VirtualWidth, VirtualHeight),
		frame:   ebiten.NewImage(ScreenWidth, ScreenHeight),
		preview: ebiten.NewImage(PreviewWidth, PreviewHeight),
		fonts:   newFontCache(),
	}
}

// Draw composes the scene into the internal frame and blits it to the
// screen. The screen is assumed to be laid out at ScreenWidth by
// ScreenHeight.
func (r *Renderer) Draw(screen *ebiten.Image, scene *Scene) {
	r.ticks++
	r.frame.Fill(skyColor)

	switch scene.State {
	case game.StateReady:
		r.drawPlayfield(scene)
		r.drawReadyScreen(scene)
	case game.StateRun:
		r.drawPlayfield(scene)
		r.drawHUD(scene)
	case game.StateResult:
		r.drawResultScreen(scene)
	}

	r.drawPreview(scene)
	r.drawFPS(scene)

	screen.DrawImage(r.frame, nil)
}

// drawPlayfield renders balloons, effects and the reticle on the virtual
// canvas and scales it onto the frame.
func (r *Renderer) drawPlayfield(scene *Scene) {
	r.virtual.Clear()

	for _, b := range scene.Balloons {
		drawBalloon(r.virtual, b)
	}
	for _, e := range scene.Effects {
		drawEffect(r.virtual, e)
	}
	if scene.Aim != nil {
		x := float64(scene.Aim.X) / game.InputScale * game.FieldWidth
		y := float64(scene.Aim.Y) / game.InputScale * game.FieldHeight
		drawReticle(r.virtual, x, y, r.ticks)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(
		float64(ScreenWidth)/float64(VirtualWidth),
		float64(ScreenHeight)/float64(VirtualHeight),
	)
	r.frame.DrawImage(r.virtual, op)
}

func (r *Renderer) drawReadyScreen(scene *Scene) {
	cx := float64(ScreenWidth) / 2

	r.drawTitleText("BALLOON POP", cx, 300, 128, accentColor)
	r.drawCenteredText("Make a finger gun and flick it upright to shoot", cx, 480, 40, hudColor)
	r.drawCenteredText("SPACE start    M test shot    Q quit", cx, 560, 32, dimColor)

	if scene.Best != 0 {
		r.drawCenteredText(fmt.Sprintf("Best score %d", scene.Best), cx, 680, 40, accentColor)
	}

	// Slow blink for the start prompt.
	if r.ticks/45%2 == 0 {
		r.drawCenteredText("READY", cx, 840, 72, hudColor)
	}
}

func (r *Renderer) drawHUD(scene *Scene) {
	r.drawText(fmt.Sprintf("SCORE %d", scene.Score), 40, 80, 56, hudColor)
	r.drawText(fmt.Sprintf("POPPED %d", scene.Popped), 40, 150, 40, dimColor)

	clock := fmt.Sprintf("%04.1f", scene.Remaining)
	col := hudColor
	if scene.Remaining <= 5 {
		col = badColor
	}
	r.drawCenteredText(clock, float64(ScreenWidth)/2, 90, 72, col)
}

func (r *Renderer) drawResultScreen(scene *Scene) {
	cx := float64(ScreenWidth) / 2

	r.drawTitleText("TIME UP!", cx, 280, 112, accentColor)
	r.drawCenteredText(fmt.Sprintf("Score %d", scene.Score), cx, 460, 72, hudColor)
	r.drawCenteredText(fmt.Sprintf("Balloons popped %d", scene.Popped), cx, 560, 48, dimColor)

	ticketText := fmt.Sprintf("Time tickets %+d seconds", scene.Tickets)
	r.drawCenteredText(ticketText, cx, 680, 56, ticketColor(scene.Tickets))

	if scene.Best != 0 && scene.Score >= scene.Best {
		r.drawCenteredText("NEW BEST!", cx, 780, 48, goodColor)
	}
	if scene.Screenshot != "" {
		r.drawCenteredText("Saved "+filepath.Base(scene.Screenshot), cx, 850, 32, goodColor)
	}

	r.drawCenteredText("R restart    S screenshot    Q quit", cx, 920, 36, dimColor)
}

// drawPreview places the debug camera view in the top-right corner with a
// thin border.
func (r *Renderer) drawPreview(scene *Scene) {
	if scene.Preview == nil {
		return
	}
	r.preview.WritePixels(scene.Preview)

	x := float64(ScreenWidth - PreviewWidth - previewMargin)
	y := float64(previewMargin)

	drawBorder(r.frame, x, y, PreviewWidth, PreviewHeight)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	r.frame.DrawImage(r.preview, op)
}

func (r *Renderer) drawFPS(scene *Scene) {
	if scene.FPS <= 0 {
		return
	}
	label := fmt.Sprintf("%.0f FPS", scene.FPS)
	r.drawText(label, float64(ScreenWidth)-170, float64(ScreenHeight)-30, 28, dimColor)
}

// ticketColor picks the result accent: green for a reward, red for a loss.
func ticketColor(tickets int) color.RGBA {
	if tickets >= 0 {
		return goodColor
	}
	return badColor
}

// pulseRadius is the reticle's breathing ring radius for a given tick.
func pulseRadius(ticks uint64) float64 {
	return 18 + 4*math.Sin(float64(ticks)*0.1)
}
