// Package capture provides webcam capture and device discovery using GoCV
// (OpenCV) and v4l2.
package capture

import (
	"errors"
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// Default camera settings. 720p MJPG at 30fps keeps hand tracking
// responsive without starving the USB bus.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultFPS    = 30
	DefaultFormat = "MJPG"
)

// DefaultDevice is the capture device used when discovery finds nothing.
const DefaultDevice = "/dev/video0"

// ErrCameraNotOpen is returned when trying to read from a camera that is not open.
var ErrCameraNotOpen = errors.New("camera is not open")

// Settings configures how a camera is opened. Zero values fall back to the
// package defaults.
type Settings struct {
	Width  int
	Height int
	FPS    int
	// Format is the fourcc requested from the driver.
	Format string
	// Mirror flips frames horizontally so the on-screen view matches the
	// player's movements.
	Mirror bool
}

func (s Settings) withDefaults() Settings {
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	if s.FPS <= 0 {
		s.FPS = DefaultFPS
	}
	if s.Format == "" {
		s.Format = DefaultFormat
	}
	return s
}

// Camera defines the interface for camera capture implementations.
type Camera interface {
	Open() error
	Close() error
	ReadFrame() (*gocv.Mat, error)
	IsOpen() bool
}

// cameraImpl manages video capture from a v4l2 device using GoCV.
type cameraImpl struct {
	device   string
	settings Settings
	capture  *gocv.VideoCapture
	mu       sync.Mutex
	running  bool
}

// NewCamera creates a Camera for the given device path, such as /dev/video0.
func NewCamera(device string, settings Settings) Camera {
	return &cameraImpl{
		device:   device,
		settings: settings.withDefaults(),
	}
}

// Open opens the camera and applies the configured mode. MJPG is the
// default format; without it most UVC cameras fall back to raw YUYV, which
// cannot sustain 720p at full rate.
func (c *cameraImpl) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil
	}

	capture, err := gocv.OpenVideoCapture(c.device)
	if err != nil {
		return fmt.Errorf("open %s: %w", c.device, err)
	}

	capture.Set(gocv.VideoCaptureFOURCC, capture.ToCodec(c.settings.Format))
	capture.Set(gocv.VideoCaptureFrameWidth, float64(c.settings.Width))
	capture.Set(gocv.VideoCaptureFrameHeight, float64(c.settings.Height))
	capture.Set(gocv.VideoCaptureFPS, float64(c.settings.FPS))

	c.capture = capture
	c.running = true

	return nil
}

// Close closes the camera and releases resources.
func (c *cameraImpl) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.capture == nil {
		c.running = false
		return nil
	}

	err := c.capture.Close()
	c.capture = nil
	c.running = false

	return err
}

// ReadFrame reads a single BGR frame from the camera, mirrored when the
// settings ask for it. The caller is responsible for closing the returned Mat.
func (c *cameraImpl) ReadFrame() (*gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running || c.capture == nil {
		return nil, ErrCameraNotOpen
	}

	mat := gocv.NewMat()
	if ok := c.capture.Read(&mat); !ok {
		mat.Close()
		return nil, fmt.Errorf("read frame from %s failed", c.device)
	}

	if mat.Empty() {
		mat.Close()
		return nil, errors.New("captured frame is empty")
	}

	if c.settings.Mirror {
		gocv.Flip(mat, &mat, 1)
	}

	return &mat, nil
}

// IsOpen returns true if the camera is currently open and running.
func (c *cameraImpl) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.running
}
