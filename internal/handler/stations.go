package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"nstravel/internal/cache"
	"nstravel/pkg/legacy"
	"nstravel/pkg/nsapi"
	"nstravel/pkg/travelinfo"
)

// StationSearcher is the part of the API client the station handler uses.
type StationSearcher interface {
	Stations(ctx context.Context, q nsapi.StationsQuery) (travelinfo.StationResponse, error)
}

type StationHandler struct {
	index  *legacy.StationIndex
	api    StationSearcher
	cache  *cache.RedisCache
	logger *slog.Logger
}

// NewStationHandler serves station lookups. index, api and redisCache may
// each be nil; the matching endpoints then answer 503.
func NewStationHandler(index *legacy.StationIndex, api StationSearcher, redisCache *cache.RedisCache, logger *slog.Logger) *StationHandler {
	return &StationHandler{
		index:  index,
		api:    api,
		cache:  redisCache,
		logger: logger.With("handler", "stations"),
	}
}

// FindStation resolves a code, name or synonym through the station index.
func (h *StationHandler) FindStation(w http.ResponseWriter, r *http.Request) {
	if h.index == nil || h.index.Len() == 0 {
		w.Header().Set("Retry-After", "30")
		respondError(w, http.StatusServiceUnavailable, "station list is not loaded")
		return
	}

	q := r.PathValue("query")
	station, ok := h.index.Find(q)
	if !ok {
		h.logger.Debug("station not found", "query", q)
		respondError(w, http.StatusNotFound, "station not found")
		return
	}

	respondJSON(w, http.StatusOK, station)
}

type SearchResponse struct {
	Stations   []travelinfo.Station `json:"stations"`
	Count      int                  `json:"count"`
	Cached     bool                 `json:"cached"`
	ServerTime time.Time            `json:"serverTime"`
}

// Search asks the API for stations matching ?q=, caching results in Redis.
func (h *StationHandler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.api == nil {
		respondError(w, http.StatusServiceUnavailable, "travel information API is not configured")
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		respondError(w, http.StatusBadRequest, "missing q parameter")
		return
	}
	limit := 10
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		limit = n
	}

	ctx := r.Context()
	if stations, ok := h.cachedSearch(ctx, q, limit); ok {
		respondJSON(w, http.StatusOK, SearchResponse{Stations: stations, Count: len(stations), Cached: true, ServerTime: time.Now()})
		return
	}

	resp, err := h.api.Stations(ctx, nsapi.StationsQuery{Q: q, Limit: limit})
	if err != nil {
		h.logger.Error("station search failed", "query", q, "error", err)
		var apiErr *nsapi.APIError
		if errors.As(err, &apiErr) {
			respondError(w, http.StatusBadGateway, apiErr.Error())
			return
		}
		respondError(w, http.StatusBadGateway, "station search failed")
		return
	}
	stations := resp.Payload
	if stations == nil {
		stations = []travelinfo.Station{}
	}

	if h.cache != nil {
		if err := h.cache.SaveSearch(ctx, q, limit, stations); err != nil {
			h.logger.Debug("failed to cache search", "query", q, "error", err)
		}
	}

	h.logger.Debug("station search",
		"query", q,
		"count", len(stations),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	respondJSON(w, http.StatusOK, SearchResponse{Stations: stations, Count: len(stations), ServerTime: time.Now()})
}

func (h *StationHandler) cachedSearch(ctx context.Context, q string, limit int) ([]travelinfo.Station, bool) {
	if h.cache == nil {
		return nil, false
	}
	stations, found, err := h.cache.LoadSearch(ctx, q, limit)
	if err != nil || !found {
		ServerStats.IncCacheMisses()
		return nil, false
	}
	ServerStats.IncCacheHits()
	return stations, true
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
