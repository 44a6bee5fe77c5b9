package domain

import (
	"slices"
	"time"
)

// Source distinguishes the two API generations a board can be fed from
type Source int

const (
	SourceAPI    Source = 1
	SourceLegacy Source = 2
)

func (s Source) String() string {
	switch s {
	case SourceAPI:
		return "api"
	case SourceLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Row is one line of a departure board. A nil *Row is an empty line.
type Row struct {
	Time         time.Time `json:"time"`
	DelayMinutes int       `json:"delayMinutes"`
	Delay        string    `json:"delay,omitempty"`
	Destination  string    `json:"destination"`
	Route        string    `json:"route,omitempty"`
	Track        string    `json:"track,omitempty"`
	TrackChanged bool      `json:"trackChanged,omitempty"`
	Carrier      string    `json:"carrier,omitempty"`
	Category     string    `json:"category,omitempty"`
	Cancelled    bool      `json:"cancelled,omitempty"`
	Messages     []string  `json:"messages,omitempty"`
}

// Equal reports structural equality; two nil rows are equal.
func (r *Row) Equal(o *Row) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Time.Equal(o.Time) &&
		r.DelayMinutes == o.DelayMinutes &&
		r.Delay == o.Delay &&
		r.Destination == o.Destination &&
		r.Route == o.Route &&
		r.Track == o.Track &&
		r.TrackChanged == o.TrackChanged &&
		r.Carrier == o.Carrier &&
		r.Category == o.Category &&
		r.Cancelled == o.Cancelled &&
		slices.Equal(r.Messages, o.Messages)
}

// Board is the state of one station's display
type Board struct {
	Station   string    `json:"station"`
	Rows      []*Row    `json:"rows"`
	Source    Source    `json:"source"`
	Failed    bool      `json:"failed,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SameRows compares the rows only; timestamps and the failure flag are
// bookkeeping.
func (b *Board) SameRows(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	return slices.EqualFunc(b.Rows, o.Rows, (*Row).Equal)
}

// Empty builds a board of n empty rows
func Empty(station string, n int) *Board {
	return &Board{Station: station, Rows: make([]*Row, n)}
}

// DeltaType indicates whether a board was updated or removed
type DeltaType string

const (
	DeltaUpdate DeltaType = "update"
	DeltaRemove DeltaType = "remove"
)

// BoardDelta represents a change in board state
type BoardDelta struct {
	Type    DeltaType `json:"type"`
	Board   *Board    `json:"board,omitempty"`
	Station string    `json:"station"`
}
