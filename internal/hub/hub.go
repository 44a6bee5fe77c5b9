package hub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"nstravel/internal/domain"
)

// Client is one connected display. It receives the boards of the stations
// it subscribed to.
type Client struct {
	ID       string
	Send     chan []byte
	stations map[string]struct{}
	mu       sync.RWMutex

	sendMu sync.Mutex
	closed bool
}

func NewClient(id string, bufferSize int) *Client {
	return &Client{
		ID:       id,
		Send:     make(chan []byte, bufferSize),
		stations: make(map[string]struct{}),
	}
}

// Enqueue queues msg without blocking. It reports false when the buffer is
// full or the hub already closed the client.
func (c *Client) Enqueue(msg []byte) bool {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.Send)
	}
}

func (c *Client) HasStation(station string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.stations[station]
	return ok
}

func (c *Client) addStations(stations []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range stations {
		c.stations[s] = struct{}{}
	}
}

func (c *Client) removeStations(stations []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range stations {
		delete(c.stations, s)
	}
}

func (c *Client) Stations() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stations := make([]string, 0, len(c.stations))
	for s := range c.stations {
		stations = append(stations, s)
	}
	return stations
}

type Hub struct {
	mu             sync.RWMutex
	clients        map[*Client]struct{}
	stationClients map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	broadcast  chan []domain.BoardDelta
	done       chan struct{}

	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:        make(map[*Client]struct{}),
		stationClients: make(map[string]map[*Client]struct{}),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		broadcast:      make(chan []domain.BoardDelta, 256),
		done:           make(chan struct{}),
		logger:         logger.With("component", "hub"),
	}
}

// Run serves registrations and broadcasts until ctx is done, then closes
// every client. Register and Unregister do not block once Run returned.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAllClients()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Debug("client registered", "client_id", client.ID, "total", len(h.clients))

		case client := <-h.unregister:
			h.removeClient(client)

		case deltas := <-h.broadcast:
			h.fanoutDeltas(deltas)
		}
	}
}

// Subscribe adds stations to the client's subscriptions. Station codes are
// matched case-insensitively.
func (h *Hub) Subscribe(client *Client, stations []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	stations = Normalize(stations)
	client.addStations(stations)

	for _, station := range stations {
		if h.stationClients[station] == nil {
			h.stationClients[station] = make(map[*Client]struct{})
		}
		h.stationClients[station][client] = struct{}{}
	}
}

func (h *Hub) Unsubscribe(client *Client, stations []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	stations = Normalize(stations)
	client.removeStations(stations)
	h.dropStations(client, stations)
}

func (h *Hub) dropStations(client *Client, stations []string) {
	for _, station := range stations {
		if h.stationClients[station] != nil {
			delete(h.stationClients[station], client)
			if len(h.stationClients[station]) == 0 {
				delete(h.stationClients, station)
			}
		}
	}
}

// Normalize upper-cases station codes and drops blanks.
func Normalize(stations []string) []string {
	out := make([]string, 0, len(stations))
	for _, s := range stations {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (h *Hub) Broadcast(deltas []domain.BoardDelta) {
	if len(deltas) == 0 {
		return
	}
	select {
	case h.broadcast <- deltas:
	default:
		h.logger.Warn("broadcast channel full, dropping deltas", "count", len(deltas))
	}
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		client.close()
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// DeltaMessage tells a display which of its boards changed and which are
// gone.
type DeltaMessage struct {
	Type    string          `json:"type"`
	Updates []*domain.Board `json:"updates,omitempty"`
	Removes []string        `json:"removes,omitempty"`
}

func (h *Hub) fanoutDeltas(deltas []domain.BoardDelta) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clientDeltas := make(map[*Client][]domain.BoardDelta)

	for _, d := range deltas {
		if clients, ok := h.stationClients[strings.ToUpper(d.Station)]; ok {
			for client := range clients {
				clientDeltas[client] = append(clientDeltas[client], d)
			}
		}
	}

	for client, ds := range clientDeltas {
		msg := buildDeltaMessage(ds)
		data, err := json.Marshal(msg)
		if err != nil {
			continue
		}

		if !client.Enqueue(data) {
			h.logger.Debug("client send buffer full", "client_id", client.ID)
		}
	}
}

func buildDeltaMessage(deltas []domain.BoardDelta) DeltaMessage {
	var updates []*domain.Board
	var removes []string

	for _, d := range deltas {
		switch d.Type {
		case domain.DeltaUpdate:
			updates = append(updates, d.Board)
		case domain.DeltaRemove:
			removes = append(removes, d.Station)
		}
	}

	return DeltaMessage{
		Type:    "delta",
		Updates: updates,
		Removes: removes,
	}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}

	h.dropStations(client, client.Stations())

	delete(h.clients, client)
	client.close()
	h.logger.Debug("client unregistered", "client_id", client.ID, "total", len(h.clients))
}

func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.close()
	}
	h.clients = make(map[*Client]struct{})
	h.stationClients = make(map[string]map[*Client]struct{})
}
