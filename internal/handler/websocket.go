package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"nstravel/internal/domain"
	"nstravel/internal/hub"
	"nstravel/internal/store"
)

const (
	wsSendBuffer   = 256
	wsPingInterval = 30 * time.Second
	wsWriteTimeout = 5 * time.Second
)

// WSHandler streams board changes to displays. A display names the stations
// it shows either in the stations query parameter or with subscribe
// messages, and gets a snapshot of those boards before any delta.
type WSHandler struct {
	hub    *hub.Hub
	store  *store.Store
	logger *slog.Logger
}

func NewWSHandler(h *hub.Hub, s *store.Store, logger *slog.Logger) *WSHandler {
	return &WSHandler{hub: h, store: s, logger: logger.With("handler", "ws")}
}

// ClientMessage is what a display sends:
//
//	{"type":"subscribe","stations":["GDM","HT"]}
//	{"type":"unsubscribe","stations":["HT"]}
//	{"type":"ping"}
type ClientMessage struct {
	Type     string   `json:"type"`
	Stations []string `json:"stations,omitempty"`
}

type SnapshotMessage struct {
	Type       string          `json:"type"`
	ServerTime time.Time       `json:"server_time"`
	Boards     []*domain.Board `json:"boards"`
}

type PongMessage struct {
	Type string `json:"type"`
}

type wsSession struct {
	h      *WSHandler
	conn   *websocket.Conn
	client *hub.Client
	logger *slog.Logger
}

func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.logger.Error("websocket accept failed", "error", err)
		return
	}

	id := uuid.NewString()
	s := &wsSession{
		h:      h,
		conn:   conn,
		client: hub.NewClient(id, wsSendBuffer),
		logger: h.logger.With("client_id", id),
	}

	h.hub.Register(s.client)
	ServerStats.IncWSConnections()
	defer ServerStats.DecWSConnections()

	if stations := splitList(r.URL.Query().Get("stations")); len(stations) > 0 {
		s.subscribe(stations)
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go s.writeLoop(ctx)
	s.readLoop(ctx)
}

func (s *wsSession) subscribe(stations []string) {
	s.h.hub.Subscribe(s.client, stations)
	boards := s.h.store.SnapshotFor(stations)
	if boards == nil {
		boards = []*domain.Board{}
	}
	s.send(SnapshotMessage{Type: "snapshot", ServerTime: time.Now().UTC(), Boards: boards})
}

// send queues v without blocking. A display that does not keep up misses
// messages rather than stalling the session, and nothing is sent once the
// hub closed the client.
func (s *wsSession) send(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("failed to encode message", "error", err)
		return
	}
	if !s.client.Enqueue(data) {
		s.logger.Debug("message dropped", "type", fmt.Sprintf("%T", v))
	}
}

func (s *wsSession) readLoop(ctx context.Context) {
	defer func() {
		s.h.hub.Unregister(s.client)
		s.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		typ, data, err := s.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				s.logger.Debug("websocket read error", "error", err)
			}
			return
		}
		if typ != websocket.MessageText {
			continue
		}
		ServerStats.IncWSMessagesIn()

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.logger.Debug("invalid message", "error", err)
			continue
		}

		switch msg.Type {
		case "subscribe":
			if len(msg.Stations) > 0 {
				s.subscribe(msg.Stations)
			}
		case "unsubscribe":
			if len(msg.Stations) > 0 {
				s.h.hub.Unsubscribe(s.client, msg.Stations)
			}
		case "ping":
			s.send(PongMessage{Type: "pong"})
		default:
			s.logger.Debug("unknown message type", "type", msg.Type)
		}
	}
}

func (s *wsSession) writeLoop(ctx context.Context) {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-s.client.Send:
			if !ok {
				// closed by the hub, ending the connection also stops readLoop
				s.conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			if err := s.write(ctx, msg); err != nil {
				return
			}
			ServerStats.IncWSMessagesOut()
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
			err := s.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}
		}
	}
}

func (s *wsSession) write(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	return s.conn.Write(ctx, websocket.MessageText, msg)
}
