// Package poller keeps a departure board current by fetching it on a fixed
// interval and publishing only the boards that changed.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"nstravel/internal/config"
	"nstravel/internal/domain"
)

// Source fetches the current departures of a station.
type Source interface {
	Rows(ctx context.Context, station string) ([]*domain.Row, error)
	Kind() domain.Source
}

// Sink receives a board each time it changes. Publish is only ever called
// from the poll goroutine.
type Sink interface {
	Publish(b *domain.Board)
}

// Toucher is implemented by sinks that track the age of a board and need
// to hear about polls that left it unchanged.
type Toucher interface {
	Touch(station string, failed bool)
}

type SinkFunc func(b *domain.Board)

func (f SinkFunc) Publish(b *domain.Board) { f(b) }

type Poller struct {
	source  Source
	sink    Sink
	display config.Display
	filter  *vm.Program
	logger  *slog.Logger

	// last is owned by the poll goroutine.
	last *domain.Board

	ready    atomic.Bool
	failures atomic.Int64
}

func New(source Source, sink Sink, display config.Display, logger *slog.Logger) (*Poller, error) {
	display = display.WithDefaults()

	p := &Poller{
		source:  source,
		sink:    sink,
		display: display,
		logger:  logger.With("component", "poller", "station", display.Station),
	}

	if display.Filter != "" {
		program, err := expr.Compile(display.Filter, expr.Env(domain.Row{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compiling filter for %s: %w", display.Station, err)
		}
		p.filter = program
	}

	return p, nil
}

func (p *Poller) Station() string { return p.display.Station }

// Run polls until ctx is cancelled. The first poll happens immediately.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.display.Interval)
	defer ticker.Stop()

	p.Poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Poll(ctx)
		}
	}
}

// Poll runs one iteration and reports whether the sink was handed a new
// board. A fetch error is logged and shown as an all-empty board. A result
// that arrives after ctx is cancelled is discarded.
func (p *Poller) Poll(ctx context.Context) bool {
	start := time.Now()
	rows, err := p.source.Rows(ctx, p.display.Station)
	if ctx.Err() != nil {
		return false
	}

	board := p.build(rows, err)

	if !p.IsReady() && err == nil {
		p.ready.Store(true)
		p.logger.Info("poller ready", "rows", len(rows))
	}

	if p.last != nil && p.last.SameRows(board) {
		if t, ok := p.sink.(Toucher); ok {
			t.Touch(board.Station, board.Failed)
		}
		p.logger.Debug("board unchanged", "duration_ms", time.Since(start).Milliseconds())
		return false
	}

	p.last = board
	if p.sink != nil {
		p.sink.Publish(board)
	}

	p.logger.Debug("board changed", "rows", len(rows), "duration_ms", time.Since(start).Milliseconds())
	return true
}

func (p *Poller) build(rows []*domain.Row, err error) *domain.Board {
	n := p.display.Rows
	board := domain.Empty(p.display.Station, n)
	board.Source = p.source.Kind()
	board.UpdatedAt = time.Now()

	if err != nil {
		p.failures.Add(1)
		p.logger.Error("failed to fetch departures", "error", err)
		board.Failed = true
		return board
	}

	i := 0
	for _, r := range rows {
		if i == n {
			break
		}
		if r == nil || !p.keep(r) {
			continue
		}
		board.Rows[i] = r
		i++
	}
	return board
}

func (p *Poller) keep(r *domain.Row) bool {
	if p.filter == nil {
		return true
	}
	out, err := expr.Run(p.filter, *r)
	if err != nil {
		p.logger.Warn("filter failed", "error", err)
		return true
	}
	keep, _ := out.(bool)
	return keep
}

func (p *Poller) IsReady() bool {
	return p.ready.Load()
}

// Failures counts the fetches that failed since start.
func (p *Poller) Failures() int64 {
	return p.failures.Load()
}
