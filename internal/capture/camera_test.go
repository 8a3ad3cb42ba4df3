package capture

import (
	"errors"
	"testing"
)

func TestNewCamera(t *testing.T) {
	cam := NewCamera("/dev/video0", Settings{})

	if cam == nil {
		t.Fatal("NewCamera returned nil")
	}
	if cam.IsOpen() {
		t.Error("camera should not be running initially")
	}
}

func TestSettingsDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Settings
		want Settings
	}{
		{
			name: "zero value gets defaults",
			in:   Settings{},
			want: Settings{Width: 1280, Height: 720, FPS: 30, Format: "MJPG"},
		},
		{
			name: "explicit values kept",
			in:   Settings{Width: 640, Height: 480, FPS: 15, Format: "YUYV", Mirror: true},
			want: Settings{Width: 640, Height: 480, FPS: 15, Format: "YUYV", Mirror: true},
		},
		{
			name: "negative values replaced",
			in:   Settings{Width: -1, Height: -1, FPS: -5},
			want: Settings{Width: 1280, Height: 720, FPS: 30, Format: "MJPG"},
		},
		{
			name: "partial settings filled in",
			in:   Settings{Width: 1920},
			want: Settings{Width: 1920, Height: 720, FPS: 30, Format: "MJPG"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.withDefaults(); got != tt.want {
				t.Errorf("withDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCamera_ReadFrame_NotOpened(t *testing.T) {
	cam := NewCamera("/dev/video0", Settings{})

	_, err := cam.ReadFrame()
	if !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame() before Open: expected ErrCameraNotOpen, got %v", err)
	}
}

func TestCamera_Close_NotOpened(t *testing.T) {
	cam := NewCamera("/dev/video0", Settings{})

	// Close on not opened camera should not panic and return nil
	err := cam.Close()
	if err != nil {
		t.Errorf("Close() on not opened camera should return nil, got: %v", err)
	}
}

func TestCamera_OpenClose_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	cam := NewCamera(DefaultDevice, Settings{Mirror: true})

	err := cam.Open()
	if err != nil {
		t.Skipf("skipping test - camera not available: %v", err)
	}

	if !cam.IsOpen() {
		t.Error("IsOpen() should return true after Open()")
	}

	mat, err := cam.ReadFrame()
	if err != nil {
		t.Errorf("ReadFrame() failed: %v", err)
	} else {
		if mat == nil {
			t.Error("ReadFrame() returned nil mat")
		} else if mat.Empty() {
			t.Error("ReadFrame() returned empty mat")
		} else {
			mat.Close()
		}
	}

	if err := cam.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	if cam.IsOpen() {
		t.Error("IsOpen() should return false after Close()")
	}
}
