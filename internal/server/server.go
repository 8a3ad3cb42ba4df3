// Package server provides the diagnostics HTTP server for the balloon pop game.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ayusman/balloonpop/internal/store"
)

// Config holds the server configuration.
type Config struct {
	Addr  string
	Store *store.Store
	Tap   *Tap
}

// Server exposes the game's diagnostics endpoints: health, live state,
// past results and the camera preview stream.
type Server struct {
	config  Config
	mux     *http.ServeMux
	httpSrv *http.Server
	start   time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	s.httpSrv = &http.Server{Addr: config.Addr, Handler: s}
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	// Register results endpoints if Store is configured
	if s.config.Store != nil {
		resultsHandler := NewResultsHandler(s.config.Store)
		s.mux.Handle("/api/results", resultsHandler)
		s.mux.Handle("/api/results/", resultsHandler)
	}

	// Register live state, preview stream and WebSocket endpoints if a
	// Tap is configured
	if s.config.Tap != nil {
		s.mux.HandleFunc("/api/state", s.handleState)
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Tap))
		s.mux.Handle("/api/live", NewLiveHandler(s.config.Tap))
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// handleState handles GET requests to /api/state.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap, ok := s.config.Tap.State()
	if !ok {
		http.Error(w, "State not published yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the configured address and
// blocks until Shutdown is called or the listener fails.
func (s *Server) ListenAndServe() error {
	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server, waiting for in-flight requests up to the
// context deadline. Streaming clients count as in-flight, so callers
// should pass a deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
