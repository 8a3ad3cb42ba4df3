// Package server provides the diagnostics HTTP server for the balloon pop game.
package server

import (
	"fmt"
	"net/http"
	"time"
)

// StreamHandler serves the latest camera frames as MJPEG.
type StreamHandler struct {
	tap *Tap
}

// NewStreamHandler creates a new StreamHandler reading from the given tap.
func NewStreamHandler(tap *Tap) *StreamHandler {
	return &StreamHandler{tap: tap}
}

// ServeHTTP streams MJPEG frames to connected clients. Frames come from
// the tap, so the stream only advances while the game loop is running
// and publishing.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.tap.addWatcher()
	defer h.tap.removeWatcher()

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ticker := time.NewTicker(66 * time.Millisecond) // ~15 FPS
	defer ticker.Stop()

	var seq uint64
	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}

		frame, next := h.tap.Frame(seq)
		if frame == nil {
			continue
		}
		seq = next

		// Write MJPEG frame
		fmt.Fprintf(w, "--frame\r\n")
		fmt.Fprintf(w, "Content-Type: image/jpeg\r\n")
		fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(frame))
		w.Write(frame)
		fmt.Fprintf(w, "\r\n")

		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
	}
}
