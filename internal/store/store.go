package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"nstravel/internal/domain"
)

// Store holds the latest board of every polled station, keyed by the
// upper-cased station code.
type Store struct {
	mu     sync.RWMutex
	boards map[string]*domain.Board

	staleAfter time.Duration
}

func New(staleAfter time.Duration) *Store {
	return &Store{
		boards:     make(map[string]*domain.Board),
		staleAfter: staleAfter,
	}
}

// Update stores a copy of b and returns a delta when its rows differ from
// the stored board. An unchanged board only refreshes its timestamp.
func (s *Store) Update(b *domain.Board) []domain.BoardDelta {
	b = copyBoard(b)
	b.UpdatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToUpper(b.Station)
	existing, exists := s.boards[key]
	if exists && existing.SameRows(b) {
		existing.UpdatedAt = b.UpdatedAt
		existing.Failed = b.Failed
		return nil
	}

	s.boards[key] = b
	return []domain.BoardDelta{{
		Type:    domain.DeltaUpdate,
		Board:   copyBoard(b),
		Station: b.Station,
	}}
}

// Touch marks the board of station as refreshed without changing its rows.
func (s *Store) Touch(station string, failed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.boards[strings.ToUpper(station)]; ok {
		b.UpdatedAt = time.Now()
		b.Failed = failed
	}
}

// PruneStale drops boards that have not been refreshed for staleAfter.
func (s *Store) PruneStale() []domain.BoardDelta {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.staleAfter <= 0 {
		return nil
	}

	cutoff := time.Now().Add(-s.staleAfter)
	var deltas []domain.BoardDelta

	for station, b := range s.boards {
		if b.UpdatedAt.Before(cutoff) {
			deltas = append(deltas, domain.BoardDelta{
				Type:    domain.DeltaRemove,
				Station: station,
			})
			delete(s.boards, station)
		}
	}

	return deltas
}

func (s *Store) Get(station string) (*domain.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boards[strings.ToUpper(station)]
	if !ok {
		return nil, false
	}
	return copyBoard(b), true
}

// Snapshot returns copies of all boards ordered by station.
func (s *Store) Snapshot() []*domain.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Board, 0, len(s.boards))
	for _, b := range s.boards {
		result = append(result, copyBoard(b))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Station < result[j].Station })
	return result
}

func (s *Store) SnapshotFor(stations []string) []*domain.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var result []*domain.Board
	for _, station := range stations {
		station = strings.ToUpper(station)
		if _, dup := seen[station]; dup {
			continue
		}
		seen[station] = struct{}{}
		if b, ok := s.boards[station]; ok {
			result = append(result, copyBoard(b))
		}
	}
	return result
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.boards)
}

// CountFailed returns how many boards currently show the fallback after a
// failed fetch.
func (s *Store) CountFailed() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, b := range s.boards {
		if b.Failed {
			n++
		}
	}
	return n
}

func copyBoard(b *domain.Board) *domain.Board {
	c := *b
	c.Rows = make([]*domain.Row, len(b.Rows))
	for i, r := range b.Rows {
		if r == nil {
			continue
		}
		row := *r
		row.Messages = append([]string(nil), r.Messages...)
		c.Rows[i] = &row
	}
	return &c
}
