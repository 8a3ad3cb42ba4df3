package detector

import (
	"errors"

	"gocv.io/x/gocv"
)

// ErrDetectorClosed is returned by Detect after the detector has been closed.
var ErrDetectorClosed = errors.New("detector is closed")

// Detector defines the interface for hand detection implementations.
type Detector interface {
	// Detect analyzes a video frame and returns detected hand landmarks.
	// Returns an empty slice if no hands are detected.
	Detect(frame *gocv.Mat) ([]HandLandmarks, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for hand detection.
type Config struct {
	// ScriptPath overrides the location of the MediaPipe helper script.
	// Empty means search the usual locations.
	ScriptPath string

	// MaxHands is the maximum number of hands to detect. The game tracks a
	// single hand, so the default is 1.
	MaxHands int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MaxHands:        1,
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
	}
}
