package poller

import (
	"context"
	"log/slog"
	"time"

	"github.com/sourcegraph/conc"

	"nstravel/internal/domain"
)

// Broadcaster fans board deltas out to connected displays.
type Broadcaster interface {
	Broadcast(deltas []domain.BoardDelta)
}

// Updater records a board and reports the resulting deltas.
type Updater interface {
	Update(b *domain.Board) []domain.BoardDelta
}

// StoreSink writes every published board to a store and forwards the
// deltas it produced.
type StoreSink struct {
	Store       Updater
	Broadcaster Broadcaster
}

func (s StoreSink) Publish(b *domain.Board) {
	deltas := s.Store.Update(b)
	if s.Broadcaster != nil && len(deltas) > 0 {
		s.Broadcaster.Broadcast(deltas)
	}
}

func (s StoreSink) Touch(station string, failed bool) {
	if t, ok := s.Store.(Toucher); ok {
		t.Touch(station, failed)
	}
}

// Sinks publishes to each sink in order.
type Sinks []Sink

func (s Sinks) Publish(b *domain.Board) {
	for _, sink := range s {
		sink.Publish(b)
	}
}

func (s Sinks) Touch(station string, failed bool) {
	for _, sink := range s {
		if t, ok := sink.(Toucher); ok {
			t.Touch(station, failed)
		}
	}
}

// Pruner is a store that can drop boards nobody refreshed.
type Pruner interface {
	PruneStale() []domain.BoardDelta
}

// PruneLoop drops stale boards every interval and broadcasts their removal
// until ctx is cancelled.
func PruneLoop(ctx context.Context, p Pruner, b Broadcaster, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deltas := p.PruneStale()
			if len(deltas) == 0 {
				continue
			}
			logger.Info("pruned stale boards", "count", len(deltas))
			if b != nil {
				b.Broadcast(deltas)
			}
		}
	}
}

// Group runs one poller per station.
type Group struct {
	pollers []*Poller
	logger  *slog.Logger
}

func NewGroup(logger *slog.Logger, pollers ...*Poller) *Group {
	return &Group{pollers: pollers, logger: logger.With("component", "poller_group")}
}

func (g *Group) Add(p *Poller) {
	g.pollers = append(g.pollers, p)
}

func (g *Group) Len() int { return len(g.pollers) }

// Run blocks until ctx is cancelled and every poller has returned.
func (g *Group) Run(ctx context.Context) {
	var wg conc.WaitGroup
	for _, p := range g.pollers {
		wg.Go(func() { p.Run(ctx) })
	}
	g.logger.Info("pollers started", "count", len(g.pollers))
	wg.Wait()
	g.logger.Info("pollers stopped")
}

// IsReady reports whether every poller completed a successful fetch.
func (g *Group) IsReady() bool {
	for _, p := range g.pollers {
		if !p.IsReady() {
			return false
		}
	}
	return len(g.pollers) > 0
}

func (g *Group) Failures() int64 {
	var n int64
	for _, p := range g.pollers {
		n += p.Failures()
	}
	return n
}
