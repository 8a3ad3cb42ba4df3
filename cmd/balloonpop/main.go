package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/ayusman/balloonpop/internal/app"
	"github.com/ayusman/balloonpop/internal/audio"
	"github.com/ayusman/balloonpop/internal/capture"
	"github.com/ayusman/balloonpop/internal/config"
	"github.com/ayusman/balloonpop/internal/detector"
	"github.com/ayusman/balloonpop/internal/render"
	"github.com/ayusman/balloonpop/internal/server"
	"github.com/ayusman/balloonpop/internal/store"
)

func main() {
	fmt.Println("Balloon Pop - finger gun arcade")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	st, err := store.New(cfg.DBPath())
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	device, settings := chooseCamera(cfg, st)
	camera := capture.NewCamera(device, settings)

	audioCtx := ebitenaudio.NewContext(int(audio.SampleRate))
	sounds := audio.NewManager(audioCtx, cfg.AudioVolume, cfg.AudioEnabled)

	tap := server.NewTap()

	game := app.New(app.Config{
		Camera:        camera,
		Detector:      newDetector(cfg),
		Store:         st,
		Audio:         sounds,
		Tap:           tap,
		ScreenshotDir: cfg.ScreenshotDir,
	})

	if err := game.Start(); err != nil {
		log.Fatalf("Failed to open camera %s: %v", device, err)
	}
	defer game.Stop()

	var diag *server.Server
	if cfg.DiagAddr != "" {
		diag = server.New(server.Config{Addr: cfg.DiagAddr, Store: st, Tap: tap})
		go func() {
			log.Printf("Diagnostics server listening on %s", cfg.DiagAddr)
			if err := diag.ListenAndServe(); err != nil {
				log.Printf("Diagnostics server failed: %v", err)
			}
		}()
	}

	ebiten.SetWindowTitle("Balloon Pop")
	ebiten.SetWindowSize(render.ScreenWidth, render.ScreenHeight)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatalf("Game loop failed: %v", err)
	}

	if diag != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := diag.Shutdown(ctx); err != nil {
			log.Printf("Diagnostics server shutdown: %v", err)
		}
	}
}

// chooseCamera resolves the capture device and its settings: an explicitly
// configured device wins, otherwise probing plus previously seen cameras
// decide. The chosen device is recorded with the configured capture mode so
// the same camera reopens the same way next time, even if it moved to a
// different /dev/video node.
func chooseCamera(cfg *config.Config, st *store.Store) (string, capture.Settings) {
	settings := capture.Settings{
		Width:  cfg.CameraWidth,
		Height: cfg.CameraHeight,
		FPS:    cfg.CameraFPS,
		Mirror: cfg.CameraMirror,
	}

	probed := capture.Probe()

	rows, err := st.Cameras().List()
	if err != nil {
		log.Printf("Failed to load camera registry: %v", err)
	}
	known := make([]capture.KnownCamera, 0, len(rows))
	for _, c := range rows {
		known = append(known, capture.KnownCamera{
			Identity: c.Identity,
			Name:     c.Name,
			Path:     c.Path,
			LastSeen: c.LastSeen,
		})
	}

	device := capture.ChooseDevice(cfg.CameraDevice, probed, known)

	for _, d := range probed {
		if d.Path != device || d.Identity() == "" {
			continue
		}
		row := &store.Camera{
			Identity: d.Identity(),
			Name:     d.Name,
			Path:     d.Path,
			Driver:   d.Driver,
			Width:    settings.Width,
			Height:   settings.Height,
			FPS:      settings.FPS,
			Format:   capture.DefaultFormat,
		}
		if err := st.Cameras().Upsert(row); err != nil {
			log.Printf("Failed to record camera %s: %v", d.Path, err)
		}
		// A mode stored at registration wins over the configured one.
		for _, c := range rows {
			if c.Identity == d.Identity() && c.Width > 0 {
				settings.Width = c.Width
				settings.Height = c.Height
				settings.FPS = c.FPS
				settings.Format = c.Format
				break
			}
		}
		break
	}

	log.Printf("Using camera device %s", device)
	return device, settings
}

// newDetector builds the MediaPipe bridge, falling back to the mock
// detector so the game stays playable with keyboard shots.
func newDetector(cfg *config.Config) detector.Detector {
	dcfg := detector.DefaultConfig()
	dcfg.ScriptPath = cfg.ScriptPath
	dcfg.MinConfidence = cfg.MinConfidence
	dcfg.MinTrackingConf = cfg.MinTracking

	if mp, err := detector.NewMediaPipeDetector(dcfg); err == nil {
		log.Println("Using MediaPipe hand detection")
		return mp
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		return detector.NewMockDetector()
	}
}
