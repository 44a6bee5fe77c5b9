package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"nstravel/internal/store"
)

// ReadyChecker reports whether the pollers completed their first fetch.
type ReadyChecker interface {
	IsReady() bool
}

type HealthHandler struct {
	pollers ReadyChecker
	store   *store.Store
}

func NewHealthHandler(pollers ReadyChecker, s *store.Store) *HealthHandler {
	return &HealthHandler{
		pollers: pollers,
		store:   s,
	}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type ReadyResponse struct {
	Ready        bool      `json:"ready"`
	BoardCount   int       `json:"boardCount"`
	FailedBoards int       `json:"failedBoards"`
	ServerTime   time.Time `json:"serverTime"`
}

// Readyz answers 503 until every poller finished its first fetch. Boards
// whose last fetch failed are reported but do not make the server unready.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ready := h.pollers.IsReady()
	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ReadyResponse{
		Ready:        ready,
		BoardCount:   h.store.Count(),
		FailedBoards: h.store.CountFailed(),
		ServerTime:   time.Now(),
	})
}
