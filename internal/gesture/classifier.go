// Package gesture classifies hand landmarks into the game's input verdicts.
package gesture

import (
	"image"
	"image/color"
	"math"

	"gocv.io/x/gocv"

	"github.com/ayusman/balloonpop/internal/detector"
)

// PositionScale is the size of the normalized coordinate space positions are
// reported in. Landmark coordinates in [0, 1] map to [0, PositionScale].
const PositionScale = 1000

// fingerMargin is the vertical slack applied when testing whether a finger
// tip sits above its PIP joint. Smaller y means higher in image space.
const fingerMargin = 0.015

// The shoot pose requires the wrist-to-index direction to point upward:
// between 225 and 315 degrees in image space, both ends inclusive.
const (
	shootAngleMin = 225.0
	shootAngleMax = 315.0
)

// Status overlay colors for the debug preview.
var (
	statusRed    = color.RGBA{R: 255, G: 60, B: 60, A: 0}
	statusYellow = color.RGBA{R: 255, G: 255, B: 0, A: 0}
	statusGray   = color.RGBA{R: 160, G: 160, B: 160, A: 0}
)

// Point is a position in the normalized 0-1000 input space.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Verdict is the result of classifying one frame. Shoot and Aiming are
// mutually exclusive; either position may be nil.
type Verdict struct {
	Shoot    bool
	ShootPos *Point
	Aiming   bool
	AimPos   *Point
}

// Classifier recognizes the gun gesture from hand landmarks.
//
// The pose model: index finger extended with middle, ring and pinky curled is
// a "gun". Held level it aims; pivoted upward it shoots. Any other visible
// hand still aims at the index tip, so the reticle never disappears while a
// hand is in view.
type Classifier struct{}

// NewClassifier creates a Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify inspects the first detected hand and returns the verdict plus an
// annotated copy of frame for the preview. The debug frame is always
// returned, even with no hand; the caller must close it.
func (c *Classifier) Classify(frame *gocv.Mat, hands []detector.HandLandmarks) (Verdict, *gocv.Mat) {
	debug := frame.Clone()

	if len(hands) == 0 {
		drawStatus(&debug, "NO HAND", statusGray)
		return Verdict{}, &debug
	}

	// Max one tracked hand; extras from the detector are ignored.
	hand := &hands[0]
	detector.DrawLandmarks(&debug, hands[:1])

	var v Verdict
	tip := hand.Points[detector.IndexTip]

	if strictGun(hand) {
		if a := pointingAngle(hand); a >= shootAngleMin && a <= shootAngleMax {
			v.Shoot = true
			v.ShootPos = scalePoint(tip)
		}
	}

	if !v.Shoot {
		v.Aiming = true
		v.AimPos = scalePoint(tip)
	}

	if v.Shoot {
		drawStatus(&debug, "SHOOTING!", statusRed)
	} else {
		drawStatus(&debug, "AIMING", statusYellow)
	}

	return v, &debug
}

// fingerExtended reports whether the finger tip sits above its PIP joint by
// more than the margin.
func fingerExtended(hand *detector.HandLandmarks, tip, pip int) bool {
	return hand.Points[tip].Y < hand.Points[pip].Y-fingerMargin
}

// strictGun requires the index extended and middle, ring, pinky curled.
// The thumb is deliberately not checked; players tuck it or not.
func strictGun(hand *detector.HandLandmarks) bool {
	return fingerExtended(hand, detector.IndexTip, detector.IndexPIP) &&
		!fingerExtended(hand, detector.MiddleTip, detector.MiddlePIP) &&
		!fingerExtended(hand, detector.RingTip, detector.RingPIP) &&
		!fingerExtended(hand, detector.PinkyTip, detector.PinkyPIP)
}

// pointingAngle returns the wrist-to-index-tip direction in degrees,
// normalized to [0, 360). Image space, so y grows downward and "up" lands
// around 270.
func pointingAngle(hand *detector.HandLandmarks) float64 {
	wrist := hand.Points[detector.Wrist]
	tip := hand.Points[detector.IndexTip]

	angle := math.Atan2(tip.Y-wrist.Y, tip.X-wrist.X) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	return angle
}

func scalePoint(p detector.Point3D) *Point {
	return &Point{
		X: int(p.X * PositionScale),
		Y: int(p.Y * PositionScale),
	}
}

func drawStatus(frame *gocv.Mat, text string, col color.RGBA) {
	gocv.PutText(frame, text, image.Pt(10, 30), gocv.FontHersheySimplex, 1.0, col, 2)
}
