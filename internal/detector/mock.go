package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// GunShootLandmarks returns a preset HandLandmarks for the shoot pose: index
// finger extended straight up, middle/ring/pinky curled. The wrist-to-index
// direction is 270 degrees, inside the upward shoot window.
func GunShootLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.50, Y: 0.85, Z: 0.0}

	// Thumb off to the side (not checked by the classifier)
	landmarks.Points[ThumbCMC] = Point3D{X: 0.56, Y: 0.80, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.60, Y: 0.76, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: 0.62, Y: 0.72, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: 0.63, Y: 0.68, Z: 0.0}

	// Index finger extended upward
	landmarks.Points[IndexMCP] = Point3D{X: 0.50, Y: 0.62, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.50, Y: 0.43, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.50, Y: 0.34, Z: 0.0}

	// Middle finger curled back toward the palm
	landmarks.Points[MiddleMCP] = Point3D{X: 0.46, Y: 0.63, Z: -0.02}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.46, Y: 0.58, Z: -0.05}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.46, Y: 0.63, Z: -0.04}
	landmarks.Points[MiddleTip] = Point3D{X: 0.46, Y: 0.68, Z: -0.02}

	// Ring finger curled
	landmarks.Points[RingMCP] = Point3D{X: 0.42, Y: 0.65, Z: -0.02}
	landmarks.Points[RingPIP] = Point3D{X: 0.42, Y: 0.60, Z: -0.05}
	landmarks.Points[RingDIP] = Point3D{X: 0.42, Y: 0.65, Z: -0.04}
	landmarks.Points[RingTip] = Point3D{X: 0.42, Y: 0.70, Z: -0.02}

	// Pinky finger curled
	landmarks.Points[PinkyMCP] = Point3D{X: 0.38, Y: 0.68, Z: -0.02}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.38, Y: 0.64, Z: -0.05}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.38, Y: 0.68, Z: -0.04}
	landmarks.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.72, Z: -0.02}

	return landmarks
}

// GunAimLandmarks returns a preset HandLandmarks for the aiming pose: the same
// gun shape as GunShootLandmarks but pointing horizontally, so the wrist-to-
// index direction falls outside the shoot window.
func GunAimLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.30, Y: 0.60, Z: 0.0}

	// Thumb resting on top
	landmarks.Points[ThumbCMC] = Point3D{X: 0.34, Y: 0.55, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.38, Y: 0.52, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: 0.41, Y: 0.50, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: 0.44, Y: 0.49, Z: 0.0}

	// Index finger extended to the right, slightly above the PIP joint so the
	// vertical extension check still passes
	landmarks.Points[IndexMCP] = Point3D{X: 0.42, Y: 0.58, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.50, Y: 0.57, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.56, Y: 0.55, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.62, Y: 0.54, Z: 0.0}

	// Middle finger curled
	landmarks.Points[MiddleMCP] = Point3D{X: 0.42, Y: 0.62, Z: -0.02}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.47, Y: 0.61, Z: -0.05}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.46, Y: 0.64, Z: -0.04}
	landmarks.Points[MiddleTip] = Point3D{X: 0.43, Y: 0.66, Z: -0.02}

	// Ring finger curled
	landmarks.Points[RingMCP] = Point3D{X: 0.41, Y: 0.66, Z: -0.02}
	landmarks.Points[RingPIP] = Point3D{X: 0.45, Y: 0.65, Z: -0.05}
	landmarks.Points[RingDIP] = Point3D{X: 0.44, Y: 0.68, Z: -0.04}
	landmarks.Points[RingTip] = Point3D{X: 0.41, Y: 0.70, Z: -0.02}

	// Pinky finger curled
	landmarks.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: -0.02}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.43, Y: 0.69, Z: -0.05}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.42, Y: 0.71, Z: -0.04}
	landmarks.Points[PinkyTip] = Point3D{X: 0.40, Y: 0.73, Z: -0.02}

	return landmarks
}

// OpenPalmLandmarks returns a preset HandLandmarks representing an open palm.
// All fingers are extended; the pose points upward but is not a gun shape.
func OpenPalmLandmarks() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb extended to the side
	landmarks.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.70, Z: 0.03}
	landmarks.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.65, Z: 0.03}
	landmarks.Points[ThumbTip] = Point3D{X: 0.73, Y: 0.60, Z: 0.03}

	// Index finger extended upward
	landmarks.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	// Middle finger extended upward (slightly longer)
	landmarks.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	landmarks.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28, Z: 0.0}

	// Ring finger extended upward
	landmarks.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: 0.0}
	landmarks.Points[RingPIP] = Point3D{X: 0.43, Y: 0.55, Z: 0.0}
	landmarks.Points[RingDIP] = Point3D{X: 0.42, Y: 0.45, Z: 0.0}
	landmarks.Points[RingTip] = Point3D{X: 0.42, Y: 0.35, Z: 0.0}

	// Pinky finger extended upward
	landmarks.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.37, Y: 0.60, Z: 0.0}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.35, Y: 0.50, Z: 0.0}
	landmarks.Points[PinkyTip] = Point3D{X: 0.34, Y: 0.42, Z: 0.0}

	return landmarks
}
