package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"nstravel/internal/domain"
	"nstravel/internal/store"
)

type HTTPHandler struct {
	store *store.Store
}

func NewHTTPHandler(store *store.Store) *HTTPHandler {
	return &HTTPHandler{store: store}
}

type BoardsResponse struct {
	Boards     []*domain.Board `json:"boards"`
	Count      int             `json:"count"`
	ServerTime time.Time       `json:"serverTime"`
}

func (h *HTTPHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	var boards []*domain.Board
	if stations := splitList(r.URL.Query().Get("stations")); len(stations) > 0 {
		boards = h.store.SnapshotFor(stations)
	} else {
		boards = h.store.Snapshot()
	}
	if boards == nil {
		boards = []*domain.Board{}
	}

	respondJSON(w, http.StatusOK, BoardsResponse{
		Boards:     boards,
		Count:      len(boards),
		ServerTime: time.Now(),
	})
}

func (h *HTTPHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	station := r.PathValue("station")
	if station == "" {
		respondError(w, http.StatusBadRequest, "missing station")
		return
	}

	board, ok := h.store.Get(station)
	if !ok {
		respondError(w, http.StatusNotFound, "board not found")
		return
	}

	respondJSON(w, http.StatusOK, board)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
