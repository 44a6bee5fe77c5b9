package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"nstravel/pkg/legacy"
)

// StationFetcher downloads the full station list.
type StationFetcher interface {
	FetchStations(ctx context.Context) ([]legacy.Station, error)
}

// StationWarmer fills a station index from the first store that has a list,
// falling back to the webservice, and keeps every store up to date.
type StationWarmer struct {
	fetcher  StationFetcher
	index    *legacy.StationIndex
	stores   []legacy.StationStore
	interval time.Duration
	logger   *slog.Logger
}

func NewStationWarmer(fetcher StationFetcher, index *legacy.StationIndex, interval time.Duration, logger *slog.Logger, stores ...legacy.StationStore) *StationWarmer {
	return &StationWarmer{
		fetcher:  fetcher,
		index:    index,
		stores:   stores,
		interval: interval,
		logger:   logger.With("component", "station_warmer"),
	}
}

// Warm loads the index. Stores earlier in the list that missed are filled
// from the one that hit.
func (w *StationWarmer) Warm(ctx context.Context) error {
	start := time.Now()

	for i, store := range w.stores {
		err := w.index.Load(ctx, store)
		if err == nil && w.index.Len() > 0 {
			w.logger.Info("loaded stations from cache",
				"store", i,
				"stations", w.index.Len(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
			w.save(ctx, w.stores[:i])
			return nil
		}
		if err != nil && !errors.Is(err, legacy.ErrNoStations) {
			w.logger.Warn("station cache unusable", "store", i, "error", err)
		}
	}

	return w.Refresh(ctx)
}

// Refresh downloads the station list and writes it to every store.
func (w *StationWarmer) Refresh(ctx context.Context) error {
	start := time.Now()

	stations, err := w.fetcher.FetchStations(ctx)
	if err != nil {
		return fmt.Errorf("fetching stations: %w", err)
	}
	w.index.Replace(stations)
	w.save(ctx, w.stores)

	w.logger.Info("refreshed stations",
		"stations", len(stations),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (w *StationWarmer) save(ctx context.Context, stores []legacy.StationStore) {
	for i, store := range stores {
		if err := w.index.Dump(ctx, store); err != nil {
			w.logger.Error("failed to store stations", "store", i, "error", err)
		}
	}
}

// ScheduleRefresh refreshes the list every interval until ctx is cancelled.
func (w *StationWarmer) ScheduleRefresh(ctx context.Context) {
	if w.interval <= 0 {
		return
	}
	for {
		w.logger.Info("scheduled next station refresh", "in", w.interval)

		select {
		case <-ctx.Done():
			return
		case <-time.After(w.interval):
			if err := w.Refresh(ctx); err != nil {
				w.logger.Error("station refresh failed", "error", err)
			}
		}
	}
}
