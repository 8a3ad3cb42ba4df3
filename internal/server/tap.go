// Package server provides the diagnostics HTTP server for the balloon pop game.
package server

import "sync"

// StateSnapshot is the game state as published to diagnostics clients.
type StateSnapshot struct {
	State     string  `json:"state"`
	Score     int     `json:"score"`
	Popped    int     `json:"popped"`
	Tickets   int     `json:"tickets"`
	Remaining float64 `json:"remaining"`
	Balloons  int     `json:"balloons"`
	Best      int     `json:"best"`
	FPS       float64 `json:"fps"`
	Aiming    bool    `json:"aiming"`
}

// Tap is the bridge between the game loop and the diagnostics server.
// The loop publishes its latest camera frame and state snapshot here;
// handlers only ever read the tap. The camera itself belongs to the
// loop alone and is never touched from a request goroutine.
type Tap struct {
	mu        sync.RWMutex
	frame     []byte
	frameSeq  uint64
	state     StateSnapshot
	haveState bool
	watchers  int
}

// NewTap creates an empty Tap.
func NewTap() *Tap {
	return &Tap{}
}

// PublishFrame stores a JPEG-encoded camera frame. The tap keeps its own
// copy, so the caller may reuse or free the buffer immediately.
func (t *Tap) PublishFrame(jpeg []byte) {
	buf := make([]byte, len(jpeg))
	copy(buf, jpeg)

	t.mu.Lock()
	t.frame = buf
	t.frameSeq++
	t.mu.Unlock()
}

// Frame returns the latest frame and its sequence number, or nil when no
// frame newer than after has been published. The returned slice must not
// be modified.
func (t *Tap) Frame(after uint64) ([]byte, uint64) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.frame == nil || t.frameSeq == after {
		return nil, after
	}
	return t.frame, t.frameSeq
}

// PublishState stores the latest game state snapshot.
func (t *Tap) PublishState(s StateSnapshot) {
	t.mu.Lock()
	t.state = s
	t.haveState = true
	t.mu.Unlock()
}

// State returns the latest snapshot. The bool is false until the first
// publish.
func (t *Tap) State() (StateSnapshot, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state, t.haveState
}

// Watching reports whether any stream client is connected. The game loop
// skips JPEG encoding entirely while nobody is watching.
func (t *Tap) Watching() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.watchers > 0
}

func (t *Tap) addWatcher() {
	t.mu.Lock()
	t.watchers++
	t.mu.Unlock()
}

func (t *Tap) removeWatcher() {
	t.mu.Lock()
	t.watchers--
	t.mu.Unlock()
}
