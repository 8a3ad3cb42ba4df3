package store

import (
	"errors"
	"testing"
	"time"
)

func TestCameraRepository_UpsertAndGet(t *testing.T) {
	s := newTestStore(t)
	repo := s.Cameras()

	cam := &Camera{
		Identity: "SN123456",
		Name:     "HD Pro Webcam C920",
		Path:     "/dev/video0",
		Driver:   "uvcvideo",
		Width:    1280,
		Height:   720,
		FPS:      30,
		Format:   "MJPG",
	}
	if err := repo.Upsert(cam); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if cam.FirstSeen.IsZero() || cam.LastSeen.IsZero() {
		t.Error("expected upsert to stamp seen times")
	}

	got, err := repo.GetByIdentity("SN123456")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != cam.Name {
		t.Errorf("expected name %q, got %q", cam.Name, got.Name)
	}
	if got.Path != cam.Path {
		t.Errorf("expected path %q, got %q", cam.Path, got.Path)
	}
	if got.Driver != cam.Driver {
		t.Errorf("expected driver %q, got %q", cam.Driver, got.Driver)
	}
	if got.Width != 1280 || got.Height != 720 || got.FPS != 30 || got.Format != "MJPG" {
		t.Errorf("expected stored mode 1280x720@30 MJPG, got %dx%d@%d %s",
			got.Width, got.Height, got.FPS, got.Format)
	}
}

func TestCameraRepository_UpsertRefreshes(t *testing.T) {
	s := newTestStore(t)
	repo := s.Cameras()

	cam := &Camera{Identity: "SN123456", Name: "Webcam", Path: "/dev/video0", Width: 1920, Height: 1080, FPS: 60}
	if err := repo.Upsert(cam); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	firstSeen := cam.FirstSeen

	time.Sleep(20 * time.Millisecond)

	// Same camera shows up on a different node after a reboot.
	moved := &Camera{Identity: "SN123456", Name: "Webcam", Path: "/dev/video2", Width: 640, Height: 480, FPS: 15}
	if err := repo.Upsert(moved); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	got, err := repo.GetByIdentity("SN123456")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Path != "/dev/video2" {
		t.Errorf("expected refreshed path /dev/video2, got %q", got.Path)
	}
	if got.Width != 1920 || got.Height != 1080 || got.FPS != 60 {
		t.Errorf("expected registration mode 1920x1080@60 preserved, got %dx%d@%d",
			got.Width, got.Height, got.FPS)
	}
	if !got.LastSeen.After(got.FirstSeen) {
		t.Errorf("expected last seen to advance past first seen, got first=%v last=%v",
			got.FirstSeen, got.LastSeen)
	}
	if got.FirstSeen.Sub(firstSeen).Abs() > time.Second {
		t.Errorf("expected first seen preserved near %v, got %v", firstSeen, got.FirstSeen)
	}

	cams, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(cams) != 1 {
		t.Errorf("expected upsert to keep a single row, got %d", len(cams))
	}
}

func TestCameraRepository_GetNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Cameras().GetByIdentity("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCameraRepository_ListNewestFirst(t *testing.T) {
	s := newTestStore(t)
	repo := s.Cameras()

	for _, id := range []string{"SN-A", "SN-B", "SN-C"} {
		if err := repo.Upsert(&Camera{Identity: id, Path: "/dev/video0"}); err != nil {
			t.Fatalf("upsert %s failed: %v", id, err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	cams, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(cams) != 3 {
		t.Fatalf("expected 3 cameras, got %d", len(cams))
	}
	if cams[0].Identity != "SN-C" {
		t.Errorf("expected most recently seen camera first, got %q", cams[0].Identity)
	}
}

func TestCameraRepository_Delete(t *testing.T) {
	s := newTestStore(t)
	repo := s.Cameras()

	if err := repo.Upsert(&Camera{Identity: "SN-A", Path: "/dev/video0"}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if err := repo.Delete("SN-A"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.GetByIdentity("SN-A"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected camera gone after delete, got %v", err)
	}

	if err := repo.Delete("SN-A"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}
