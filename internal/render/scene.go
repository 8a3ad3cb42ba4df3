package render

import (
	"github.com/ayusman/balloonpop/internal/game"
	"github.com/ayusman/balloonpop/internal/gesture"
)

// Scene is everything the renderer needs for one frame. The app assembles
// it from the session and input trackers each Draw.
type Scene struct {
	State     game.State
	Score     int
	Popped    int
	Tickets   int
	Remaining float64
	Best      int

	// Screenshot is the file saved from this result screen, empty until
	// the player takes one.
	Screenshot string

	Balloons []*game.Balloon
	Effects  []*game.ShootEffect

	// Aim is the reticle position in the 0-1000 input space, nil when no
	// hand has aimed yet.
	Aim *gesture.Point

	// Preview is the debug camera view as RGBA pixels, exactly
	// PreviewWidth by PreviewHeight, nil when no frame is available.
	Preview []byte

	FPS float64
}
