// Package config defines the game configuration and its loading order.
package config

import (
	"os"
	"path/filepath"
)

// Config contains process configuration.
type Config struct {
	// CameraDevice pins capture to a device path such as /dev/video2.
	// Empty means discover: prefer the camera used last time, fall back
	// to the first one present.
	CameraDevice string `koanf:"camera_device"`
	CameraWidth  int    `koanf:"camera_width"`
	CameraHeight int    `koanf:"camera_height"`
	CameraFPS    int    `koanf:"camera_fps"`
	// CameraMirror flips frames horizontally so aiming feels like a mirror.
	CameraMirror bool `koanf:"camera_mirror"`

	// ScriptPath overrides the hand tracker script location.
	ScriptPath string `koanf:"script_path"`
	// MinConfidence and MinTracking tune the hand tracker.
	MinConfidence float64 `koanf:"min_confidence"`
	MinTracking   float64 `koanf:"min_tracking"`

	Fullscreen bool `koanf:"fullscreen"`

	AudioEnabled bool    `koanf:"audio_enabled"`
	AudioVolume  float64 `koanf:"audio_volume"`

	// DataDir holds the database and screenshots. Empty resolves to
	// ~/.balloonpop at load time.
	DataDir       string `koanf:"data_dir"`
	ScreenshotDir string `koanf:"screenshot_dir"`

	// DiagAddr is the diagnostics HTTP listen address. Empty disables
	// the server entirely.
	DiagAddr string `koanf:"diag_addr"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		CameraWidth:   1280,
		CameraHeight:  720,
		CameraFPS:     30,
		CameraMirror:  true,
		MinConfidence: 0.5,
		MinTracking:   0.5,
		Fullscreen:    true,
		AudioEnabled:  true,
		AudioVolume:   0.8,
		DiagAddr:      "127.0.0.1:8089",
	}
}

// DBPath returns the SQLite database location under the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "balloonpop.db")
}

// resolveDirs fills in the directory defaults that depend on the
// environment rather than on constants.
func (c *Config) resolveDirs() error {
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.DataDir = filepath.Join(home, ".balloonpop")
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = filepath.Join(c.DataDir, "screenshots")
	}
	return nil
}
