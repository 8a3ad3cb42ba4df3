package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// defaultConfigFile is read from the working directory when
// BALLOONPOP_CONFIG does not name a file.
const defaultConfigFile = "balloonpop.yaml"

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML): BALLOONPOP_CONFIG if set, else balloonpop.yaml if present
//  3. env (prefix BALLOONPOP_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	// An explicit file must exist; the conventional one is optional.
	path := os.Getenv("BALLOONPOP_CONFIG")
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: BALLOONPOP_CAMERA_FPS -> camera_fps, flat
	// keys matching the koanf tags on the struct.
	envProvider := env.Provider("BALLOONPOP_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "balloonpop_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := cfg.resolveDirs(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.CameraWidth <= 0 || c.CameraHeight <= 0 {
		return fmt.Errorf("camera resolution must be positive, got %dx%d", c.CameraWidth, c.CameraHeight)
	}
	if c.CameraFPS <= 0 {
		return fmt.Errorf("camera_fps must be positive, got %d", c.CameraFPS)
	}
	if c.MinConfidence <= 0 || c.MinConfidence > 1 {
		return fmt.Errorf("min_confidence must be in (0, 1], got %v", c.MinConfidence)
	}
	if c.MinTracking <= 0 || c.MinTracking > 1 {
		return fmt.Errorf("min_tracking must be in (0, 1], got %v", c.MinTracking)
	}
	if c.AudioVolume < 0 || c.AudioVolume > 1 {
		return fmt.Errorf("audio_volume must be in [0, 1], got %v", c.AudioVolume)
	}
	return nil
}
