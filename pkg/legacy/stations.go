package legacy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrNoStations is returned by a StationStore that holds no station list.
var ErrNoStations = errors.New("no stored stations")

// StationStore persists the station list between runs.
type StationStore interface {
	LoadStations(ctx context.Context) ([]Station, error)
	SaveStations(ctx context.Context, stations []Station) error
}

// StationIndex looks stations up by code, any of their names or a synonym,
// ignoring case.
type StationIndex struct {
	mu       sync.RWMutex
	stations []Station
	byID     map[string]int
}

func NewStationIndex(stations []Station) *StationIndex {
	x := &StationIndex{}
	x.Replace(stations)
	return x
}

// Replace swaps in a new station list. Earlier stations win when two share
// an identifier.
func (x *StationIndex) Replace(stations []Station) {
	byID := make(map[string]int, len(stations)*4)
	for i, s := range stations {
		for _, id := range s.Identifiers() {
			key := strings.ToLower(strings.TrimSpace(id))
			if key == "" {
				continue
			}
			if _, taken := byID[key]; !taken {
				byID[key] = i
			}
		}
	}

	list := make([]Station, len(stations))
	copy(list, stations)

	x.mu.Lock()
	x.stations = list
	x.byID = byID
	x.mu.Unlock()
}

func (x *StationIndex) Find(query string) (Station, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	i, ok := x.byID[strings.ToLower(strings.TrimSpace(query))]
	if !ok {
		return Station{}, false
	}
	return x.stations[i], true
}

func (x *StationIndex) Stations() []Station {
	x.mu.RLock()
	defer x.mu.RUnlock()

	out := make([]Station, len(x.stations))
	copy(out, x.stations)
	return out
}

func (x *StationIndex) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.stations)
}

// Load replaces the index with the list held by store.
func (x *StationIndex) Load(ctx context.Context, store StationStore) error {
	stations, err := store.LoadStations(ctx)
	if err != nil {
		return err
	}
	x.Replace(stations)
	return nil
}

// Dump writes the current list to store.
func (x *StationIndex) Dump(ctx context.Context, store StationStore) error {
	return store.SaveStations(ctx, x.Stations())
}

// LoadOrFetch loads the station list from store and falls back to the
// webservice when nothing usable is stored, writing the fresh list back.
func LoadOrFetch(ctx context.Context, c *Client, store StationStore) (*StationIndex, error) {
	x := NewStationIndex(nil)
	if store != nil {
		if err := x.Load(ctx, store); err == nil && x.Len() > 0 {
			return x, nil
		} else if err != nil && !errors.Is(err, ErrNoStations) {
			c.logger.Warn("stored station list unusable", "error", err)
		}
	}

	stations, err := c.FetchStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching stations: %w", err)
	}
	x.Replace(stations)

	if store != nil {
		if err := x.Dump(ctx, store); err != nil {
			c.logger.Warn("failed to store station list", "error", err)
		}
	}
	return x, nil
}
