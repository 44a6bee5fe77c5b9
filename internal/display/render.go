// Package display renders departure boards. Each display owns a single
// goroutine that consumes board updates; pollers never render directly.
package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"nstravel/internal/config"
	"nstravel/internal/domain"
)

const clearScreen = "\033[H\033[2J"

// Render writes b as a table. Empty rows are printed as blank lines so the
// board keeps its height.
func Render(w io.Writer, b *domain.Board, d config.Display) error {
	if d.Fullscreen {
		if _, err := io.WriteString(w, clearScreen); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "%s  %s\n", b.Station, b.UpdatedAt.Format("15:04:05"))
	if b.Failed {
		fmt.Fprintln(w, "(no data)")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Time\tDelay\tTrack\tDestination\tTrain\tVia")

	var messages []string
	seen := make(map[string]struct{})
	for _, r := range b.Rows {
		if r == nil {
			fmt.Fprintln(tw, "\t\t\t\t\t")
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Time.Format("15:04"),
			delayCell(r, d.DelayThreshold),
			trackCell(r),
			r.Destination,
			r.Category,
			r.Route,
		)
		for _, m := range r.Messages {
			if _, dup := seen[m]; !dup {
				seen[m] = struct{}{}
				messages = append(messages, m)
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, m := range messages {
		fmt.Fprintf(w, "  * %s\n", m)
	}
	return nil
}

// String renders b without clearing the screen.
func String(b *domain.Board, d config.Display) string {
	var sb strings.Builder
	d.Fullscreen = false
	_ = Render(&sb, b, d)
	return sb.String()
}

func delayCell(r *domain.Row, threshold int) string {
	if r.Cancelled {
		return "cancelled"
	}
	if threshold > 0 && r.DelayMinutes >= threshold {
		return "!" + r.Delay
	}
	return r.Delay
}

func trackCell(r *domain.Row) string {
	if r.TrackChanged {
		return r.Track + "*"
	}
	return r.Track
}

// mailbox holds at most one pending board; a newer board replaces one that
// was not rendered yet.
type mailbox struct {
	ch chan *domain.Board
}

func newMailbox() mailbox {
	return mailbox{ch: make(chan *domain.Board, 1)}
}

func (m mailbox) put(b *domain.Board) {
	for {
		select {
		case m.ch <- b:
			return
		default:
		}
		select {
		case <-m.ch:
		default:
		}
	}
}
