package detector

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

var (
	boneColor  = color.RGBA{R: 230, G: 230, B: 230, A: 0}
	jointColor = color.RGBA{R: 0, G: 90, B: 255, A: 0}
)

// DrawLandmarks renders the hand skeletons onto frame for the debug preview.
// Landmark coordinates are normalized, so they are scaled by the frame size.
func DrawLandmarks(frame *gocv.Mat, hands []HandLandmarks) {
	if frame == nil || frame.Empty() {
		return
	}

	w := frame.Cols()
	h := frame.Rows()

	for i := range hands {
		hand := &hands[i]

		pts := make([]image.Point, NumLandmarks)
		for j := 0; j < NumLandmarks; j++ {
			pts[j] = image.Point{
				X: int(hand.Points[j].X * float64(w)),
				Y: int(hand.Points[j].Y * float64(h)),
			}
		}

		for _, conn := range handConnections {
			gocv.Line(frame, pts[conn[0]], pts[conn[1]], boneColor, 2)
		}

		for _, pt := range pts {
			gocv.Circle(frame, pt, 3, jointColor, -1)
		}
	}
}
