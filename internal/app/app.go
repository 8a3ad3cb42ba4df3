// Package app wires the camera, gesture pipeline, game session and renderer
// into the ebiten run loop.
package app

import (
	"image"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"gocv.io/x/gocv"

	"github.com/ayusman/balloonpop/internal/audio"
	"github.com/ayusman/balloonpop/internal/capture"
	"github.com/ayusman/balloonpop/internal/detector"
	"github.com/ayusman/balloonpop/internal/game"
	"github.com/ayusman/balloonpop/internal/gesture"
	"github.com/ayusman/balloonpop/internal/render"
	"github.com/ayusman/balloonpop/internal/server"
	"github.com/ayusman/balloonpop/internal/store"
)

// maxFrameDelta caps the simulated step after a stall. A long hitch slows
// the game down instead of teleporting every balloon off the field.
const maxFrameDelta = 0.1

// Keyboard test shots land dead center of the input space.
const (
	manualShotX = 500
	manualShotY = 500
)

// Config holds the application wiring.
type Config struct {
	Camera        capture.Camera
	Detector      detector.Detector
	Store         *store.Store
	Audio         *audio.Manager
	Tap           *server.Tap
	ScreenshotDir string
}

// App is the game application. It implements ebiten.Game: each tick reads
// one camera frame, classifies it, advances the session and publishes
// diagnostics; each draw renders the current session state.
type App struct {
	config Config

	classifier *gesture.Classifier
	edge       *gesture.EdgeTracker
	session    *game.Session
	renderer   *render.Renderer

	lastTick   time.Time
	prevState  game.State
	aiming     bool
	preview    []byte
	best       int
	lastCamErr string

	wantScreenshot bool
	savedShot      string
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	a := &App{
		config:     config,
		classifier: gesture.NewClassifier(),
		edge:       gesture.NewEdgeTracker(),
		session:    game.NewSession(nil),
		renderer:   render.NewRenderer(),
		prevState:  game.StateReady,
	}

	if config.Store != nil {
		best, err := config.Store.Results().Best()
		if err != nil {
			log.Printf("Failed to load best score: %v", err)
		} else {
			a.best = best
		}
	}

	return a
}

// Start opens the camera. Call it before handing the app to ebiten.
func (a *App) Start() error {
	if err := a.config.Camera.Open(); err != nil {
		return err
	}
	log.Println("Camera opened")
	return nil
}

// Stop releases the camera and the detector.
func (a *App) Stop() {
	if err := a.config.Camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	if a.config.Detector != nil {
		if err := a.config.Detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}
	log.Println("Pipeline stopped")
}

// Update advances the application by one tick.
func (a *App) Update() error {
	if err := a.handleKeys(); err != nil {
		return err
	}

	dt := a.frameDelta()
	a.processFrame()
	a.session.Update(dt)
	a.handleTransition()
	a.publishState()

	return nil
}

// Draw renders the session and, when requested, writes the screenshot.
// Screenshots must happen here: frame pixels are only readable while the
// game loop is running.
func (a *App) Draw(screen *ebiten.Image) {
	scene := &render.Scene{
		State:      a.session.State(),
		Score:      a.session.Score(),
		Popped:     a.session.Popped(),
		Tickets:    a.session.TimeTickets(),
		Remaining:  a.session.Remaining(),
		Best:       a.best,
		Screenshot: a.savedShot,
		Balloons:   a.session.Balloons(),
		Effects:    a.session.Effects(),
		Aim:        a.edge.LastAim(),
		Preview:    a.preview,
		FPS:        ebiten.ActualFPS(),
	}
	a.renderer.Draw(screen, scene)

	if a.wantScreenshot {
		a.wantScreenshot = false
		path, err := a.renderer.SaveScreenshot(a.config.ScreenshotDir)
		if err != nil {
			log.Printf("Failed to save screenshot: %v", err)
		} else {
			a.savedShot = path
			log.Printf("Screenshot saved to %s", path)
		}
	}
}

// Layout reports the fixed screen size regardless of the window size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.ScreenWidth, render.ScreenHeight
}

// Session returns the game session.
func (a *App) Session() *game.Session {
	return a.session
}

// handleKeys maps key edges onto game commands.
func (a *App) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.session.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.session.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		a.fire(manualShotX, manualShotY)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && a.session.State() == game.StateResult {
		a.wantScreenshot = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return nil
}

// frameDelta returns the wall-clock seconds since the previous tick,
// clamped to maxFrameDelta. The first tick reports zero.
func (a *App) frameDelta() float64 {
	now := time.Now()
	if a.lastTick.IsZero() {
		a.lastTick = now
		return 0
	}

	dt := now.Sub(a.lastTick).Seconds()
	a.lastTick = now

	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	return dt
}

// processFrame runs one camera frame through detection and classification.
// Camera trouble degrades to keyboard-only play, so errors are logged, not
// returned; a read error that repeats every tick logs only when it changes.
func (a *App) processFrame() {
	frame, err := a.config.Camera.ReadFrame()
	if err != nil {
		if msg := err.Error(); msg != a.lastCamErr {
			a.lastCamErr = msg
			log.Printf("Error reading frame: %v", err)
		}
		return
	}
	a.lastCamErr = ""

	hands, err := a.config.Detector.Detect(frame)
	if err != nil {
		log.Printf("Error detecting hands: %v", err)
		hands = nil
	}

	verdict, debug := a.classifier.Classify(frame, hands)
	frame.Close()

	a.aiming = verdict.Aiming

	triggered, firePos := a.edge.Observe(verdict)
	if triggered && firePos != nil {
		a.fire(float64(firePos.X), float64(firePos.Y))
	}

	a.updatePreview(debug)
	debug.Close()
}

// fire routes a shot into the session and plays the matching sounds.
func (a *App) fire(x, y float64) {
	shot := a.session.Shoot(x, y)
	if !shot.Accepted {
		return
	}

	a.config.Audio.Play(audio.SoundShoot)
	if shot.Hit {
		a.config.Audio.Play(audio.SoundPop)
	}
}

// handleTransition runs the once-per-game actions when the session reaches
// the result screen: the jingle and the stored result row. Leaving the
// result screen forgets the screenshot note.
func (a *App) handleTransition() {
	state := a.session.State()
	if state == a.prevState {
		return
	}
	a.prevState = state

	if state != game.StateResult {
		a.savedShot = ""
		return
	}

	tickets := a.session.TimeTickets()
	if tickets >= 0 {
		a.config.Audio.Play(audio.SoundWin)
	} else {
		a.config.Audio.Play(audio.SoundLose)
	}

	if a.session.Score() > a.best {
		a.best = a.session.Score()
	}

	if a.config.Store == nil {
		return
	}
	res := &store.GameResult{
		ID:       uuid.New().String(),
		Score:    a.session.Score(),
		Popped:   a.session.Popped(),
		Tickets:  tickets,
		Duration: game.GameDuration,
	}
	if err := a.config.Store.Results().Create(res); err != nil {
		log.Printf("Failed to save result: %v", err)
	}
}

// publishState pushes the current snapshot to the diagnostics tap.
func (a *App) publishState() {
	if a.config.Tap == nil {
		return
	}

	a.config.Tap.PublishState(server.StateSnapshot{
		State:     a.session.State().String(),
		Score:     a.session.Score(),
		Popped:    a.session.Popped(),
		Tickets:   a.session.TimeTickets(),
		Remaining: a.session.Remaining(),
		Balloons:  len(a.session.Balloons()),
		Best:      a.best,
		FPS:       ebiten.ActualFPS(),
		Aiming:    a.aiming,
	})
}

// updatePreview downscales the annotated frame for the corner preview and,
// when a stream client is watching, publishes it to the tap.
func (a *App) updatePreview(debug *gocv.Mat) {
	if debug == nil || debug.Empty() {
		return
	}

	small := gocv.NewMat()
	defer small.Close()
	gocv.Resize(*debug, &small, image.Pt(render.PreviewWidth, render.PreviewHeight), 0, 0, gocv.InterpolationArea)

	if a.config.Tap != nil && a.config.Tap.Watching() {
		if buf, err := gocv.IMEncode(".jpg", small); err == nil {
			a.config.Tap.PublishFrame(buf.GetBytes())
			buf.Close()
		}
	}

	rgba := gocv.NewMat()
	defer rgba.Close()
	gocv.CvtColor(small, &rgba, gocv.ColorBGRToRGBA)

	a.preview = rgba.ToBytes()
}
