// Package server provides the diagnostics HTTP server for the balloon pop game.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ayusman/balloonpop/internal/store"
)

// defaultResultLimit caps /api/results responses when no limit is given.
const defaultResultLimit = 20

// ResultsHandler handles HTTP requests for finished game results.
type ResultsHandler struct {
	store *store.Store
}

// NewResultsHandler creates a new ResultsHandler with the given store.
func NewResultsHandler(s *store.Store) *ResultsHandler {
	return &ResultsHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *ResultsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Expected paths: /api/results or /api/results/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/results")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		h.list(w, r)
		return
	}
	h.get(w, r, path)
}

// Response types

type resultResponse struct {
	ID       string  `json:"id"`
	Score    int     `json:"score"`
	Popped   int     `json:"popped"`
	Tickets  int     `json:"tickets"`
	Duration float64 `json:"duration"`
	PlayedAt string  `json:"played_at"`
}

type listResultsResponse struct {
	Best    int              `json:"best"`
	Results []resultResponse `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toResponse converts a store.GameResult to a resultResponse.
func toResponse(res *store.GameResult) resultResponse {
	return resultResponse{
		ID:       res.ID,
		Score:    res.Score,
		Popped:   res.Popped,
		Tickets:  res.Tickets,
		Duration: res.Duration,
		PlayedAt: res.PlayedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/results and returns recent games, newest first.
func (h *ResultsHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := defaultResultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	results, err := h.store.Results().List(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list results")
		return
	}

	best, err := h.store.Results().Best()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get best score")
		return
	}

	response := listResultsResponse{
		Best:    best,
		Results: make([]resultResponse, 0, len(results)),
	}

	for _, res := range results {
		response.Results = append(response.Results, toResponse(res))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/results/{id} and returns a single game.
func (h *ResultsHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	result, err := h.store.Results().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Result not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get result")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(result))
}
