package display

import (
	"context"
	"io"
	"log/slog"

	"nstravel/internal/config"
	"nstravel/internal/domain"
)

// Terminal prints boards to a writer, normally stdout.
type Terminal struct {
	out     io.Writer
	display config.Display
	box     mailbox
	logger  *slog.Logger
}

func NewTerminal(out io.Writer, d config.Display, logger *slog.Logger) *Terminal {
	return &Terminal{
		out:     out,
		display: d,
		box:     newMailbox(),
		logger:  logger.With("component", "terminal", "station", d.Station),
	}
}

// Publish hands b to the render goroutine without blocking.
func (t *Terminal) Publish(b *domain.Board) {
	t.box.put(b)
}

// Run renders boards until ctx is cancelled.
func (t *Terminal) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case b := <-t.box.ch:
			if err := Render(t.out, b, t.display); err != nil {
				t.logger.Error("render failed", "error", err)
			}
		}
	}
}
