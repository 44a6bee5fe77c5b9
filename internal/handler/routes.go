package handler

import (
	"net/http"
)

// Handlers groups everything the server mounts. Stations may be nil.
type Handlers struct {
	Boards   *HTTPHandler
	WS       *WSHandler
	Health   *HealthHandler
	Stats    *StatsHandler
	Stations *StationHandler
}

// Mux registers the routes. JSON endpoints are gzip-compressed; the
// websocket endpoint is not wrapped since it needs the raw connection.
func (hs Handlers) Mux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /v1/boards", GzipMiddleware(http.HandlerFunc(hs.Boards.ListBoards)))
	mux.Handle("GET /v1/boards/{station}", GzipMiddleware(http.HandlerFunc(hs.Boards.GetBoard)))
	mux.HandleFunc("/v1/ws", hs.WS.ServeWS)

	if hs.Stations != nil {
		mux.Handle("GET /v1/stations/search", GzipMiddleware(http.HandlerFunc(hs.Stations.Search)))
		mux.HandleFunc("GET /v1/stations/{query}", hs.Stations.FindStation)
	}

	mux.HandleFunc("GET /v1/stats", hs.Stats.GetStats)
	mux.HandleFunc("GET /healthz", hs.Health.Healthz)
	mux.HandleFunc("GET /readyz", hs.Health.Readyz)

	return mux
}
