package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestAPI_HealthCheck(t *testing.T) {
	srv := New(Config{})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET /api/health error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var health struct {
		Status string `json:"status"`
		Uptime string `json:"uptime"`
	}
	json.NewDecoder(resp.Body).Decode(&health)

	if health.Status != "ok" {
		t.Errorf("status = %s, want ok", health.Status)
	}
}

func TestAPI_StreamDeliversFrames(t *testing.T) {
	tap := NewTap()
	tap.PublishFrame([]byte("not-really-a-jpeg"))

	srv := New(Config{Tap: tap})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/stream", nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("GET /api/stream error = %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "multipart/x-mixed-replace") {
		t.Errorf("Content-Type = %s, want multipart/x-mixed-replace", ct)
	}

	// Read until the first complete frame arrives.
	var body []byte
	chunk := make([]byte, 256)
	deadline := time.Now().Add(2 * time.Second)
	for !bytes.Contains(body, []byte("not-really-a-jpeg")) {
		if time.Now().After(deadline) {
			t.Fatalf("no frame within deadline, read %d bytes", len(body))
		}
		n, err := resp.Body.Read(chunk)
		body = append(body, chunk[:n]...)
		if err != nil {
			t.Fatalf("stream ended early: %v", err)
		}
	}

	if !bytes.Contains(body, []byte("--frame")) {
		t.Error("expected --frame boundary in stream")
	}
	if !bytes.Contains(body, []byte("Content-Type: image/jpeg")) {
		t.Error("expected image/jpeg part header in stream")
	}

	if !tap.Watching() {
		t.Error("expected a registered watcher while streaming")
	}

	// Dropping the connection must release the watcher so the game loop
	// can stop encoding frames.
	cancel()
	resp.Body.Close()

	deadline = time.Now().Add(2 * time.Second)
	for tap.Watching() {
		if time.Now().After(deadline) {
			t.Fatal("watcher still registered after disconnect")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestAPI_LiveStateBroadcast(t *testing.T) {
	tap := NewTap()
	tap.PublishState(StateSnapshot{State: "RUN", Score: 40, Popped: 3, Remaining: 21.4})

	srv := New(Config{Tap: tap})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/api/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial error = %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("websocket read error = %v", err)
	}

	var payload struct {
		State     StateSnapshot `json:"state"`
		Timestamp int64         `json:"timestamp"`
	}
	if err := json.Unmarshal(msg, &payload); err != nil {
		t.Fatalf("failed to decode broadcast: %v", err)
	}

	if payload.State.State != "RUN" {
		t.Errorf("state = %s, want RUN", payload.State.State)
	}
	if payload.State.Score != 40 {
		t.Errorf("score = %d, want 40", payload.State.Score)
	}
	if payload.Timestamp == 0 {
		t.Error("expected non-zero timestamp")
	}
}
