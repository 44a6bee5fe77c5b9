package poller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nstravel/internal/config"
	"nstravel/internal/domain"
	"nstravel/internal/store"
	"nstravel/pkg/enums"
	"nstravel/pkg/legacy"
	"nstravel/pkg/nsdata"
	"nstravel/pkg/travelinfo"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type result struct {
	rows []*domain.Row
	err  error
}

// scriptedSource replays results in order and repeats the last one.
type scriptedSource struct {
	mu      sync.Mutex
	results []result
	calls   int
}

func (s *scriptedSource) Kind() domain.Source { return domain.SourceAPI }

func (s *scriptedSource) Rows(context.Context, string) ([]*domain.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.results[min(s.calls, len(s.results)-1)]
	s.calls++
	return r.rows, r.err
}

type recorder struct {
	mu     sync.Mutex
	boards []*domain.Board
}

func (r *recorder) Publish(b *domain.Board) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.boards = append(r.boards, b)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.boards)
}

var departure = time.Date(2018, 5, 25, 22, 13, 0, 0, time.FixedZone("CEST", 2*3600))

func rows(delay int) []*domain.Row {
	return []*domain.Row{
		{Time: departure, DelayMinutes: delay, Destination: "Tiel", Category: "SPR", Track: "4b"},
		{Time: departure.Add(7 * time.Minute), Destination: "Den Bosch", Category: "IC", Track: "1"},
	}
}

func newPoller(t *testing.T, src Source, sink Sink, d config.Display) *Poller {
	t.Helper()
	if d.Station == "" {
		d.Station = "GDM"
	}
	p, err := New(src, sink, d, discard)
	require.NoError(t, err)
	return p
}

func TestPollPublishesOnlyOnChange(t *testing.T) {
	src := &scriptedSource{results: []result{
		{rows: rows(0)},
		{rows: rows(0)},
		{rows: rows(3)},
		{rows: rows(3)},
	}}
	rec := &recorder{}
	p := newPoller(t, src, rec, config.Display{Rows: 4})
	ctx := context.Background()

	assert.True(t, p.Poll(ctx))
	assert.False(t, p.Poll(ctx), "identical fetch must not publish")
	assert.True(t, p.Poll(ctx), "changed delay must publish")
	assert.False(t, p.Poll(ctx))

	require.Equal(t, 2, rec.count())
	assert.Equal(t, 3, rec.boards[1].Rows[0].DelayMinutes)
}

func TestPollPadsAndTruncates(t *testing.T) {
	rec := &recorder{}

	p := newPoller(t, &scriptedSource{results: []result{{rows: rows(0)}}}, rec, config.Display{Rows: 4})
	p.Poll(context.Background())
	b := rec.boards[0]
	require.Len(t, b.Rows, 4)
	assert.NotNil(t, b.Rows[1])
	assert.Nil(t, b.Rows[2])
	assert.Nil(t, b.Rows[3])

	p = newPoller(t, &scriptedSource{results: []result{{rows: rows(0)}}}, rec, config.Display{Rows: 1})
	p.Poll(context.Background())
	require.Len(t, rec.boards[1].Rows, 1)
	assert.Equal(t, "Tiel", rec.boards[1].Rows[0].Destination)
}

func TestPollErrorShowsEmptyBoard(t *testing.T) {
	src := &scriptedSource{results: []result{
		{rows: rows(0)},
		{err: errors.New("connection refused")},
		{err: errors.New("connection refused")},
	}}
	rec := &recorder{}
	p := newPoller(t, src, rec, config.Display{Rows: 3})

	p.Poll(context.Background())
	assert.True(t, p.IsReady())

	assert.True(t, p.Poll(context.Background()))
	assert.False(t, p.Poll(context.Background()))

	require.Equal(t, 2, rec.count())
	failed := rec.boards[1]
	assert.True(t, failed.Failed)
	assert.Equal(t, []*domain.Row{nil, nil, nil}, failed.Rows)
	assert.EqualValues(t, 2, p.Failures())
}

func TestPollDiscardsResultAfterCancel(t *testing.T) {
	rec := &recorder{}
	p := newPoller(t, &scriptedSource{results: []result{{rows: rows(0)}}}, rec, config.Display{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, p.Poll(ctx))
	assert.Zero(t, rec.count())
}

func TestFilter(t *testing.T) {
	rec := &recorder{}
	p := newPoller(t, &scriptedSource{results: []result{{rows: rows(0)}}}, rec, config.Display{
		Rows:   2,
		Filter: `Category == "IC"`,
	})
	p.Poll(context.Background())

	b := rec.boards[0]
	require.NotNil(t, b.Rows[0])
	assert.Equal(t, "Den Bosch", b.Rows[0].Destination)
	assert.Nil(t, b.Rows[1])
}

func TestInvalidFilter(t *testing.T) {
	_, err := New(&scriptedSource{}, nil, config.Display{Station: "GDM", Filter: "Category =="}, discard)
	assert.Error(t, err)

	_, err = New(&scriptedSource{}, nil, config.Display{Station: "GDM", Filter: "Destination"}, discard)
	assert.Error(t, err, "filter must evaluate to a bool")
}

func TestRunStopsOnCancel(t *testing.T) {
	src := &scriptedSource{results: []result{{rows: rows(0)}, {rows: rows(1)}, {rows: rows(2)}}}
	rec := &recorder{}
	p := newPoller(t, src, rec, config.Display{Interval: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return rec.count() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop")
	}
	assert.Equal(t, 3, rec.count())
}

type deltaRecorder struct {
	mu     sync.Mutex
	deltas []domain.BoardDelta
}

func (d *deltaRecorder) Broadcast(deltas []domain.BoardDelta) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deltas = append(d.deltas, deltas...)
}

func TestGroupWithStoreSink(t *testing.T) {
	s := store.New(time.Minute)
	bc := &deltaRecorder{}
	sink := StoreSink{Store: s, Broadcaster: bc}

	g := NewGroup(discard)
	for _, station := range []string{"GDM", "HT"} {
		src := &scriptedSource{results: []result{{rows: rows(0)}}}
		g.Add(newPoller(t, src, sink, config.Display{Station: station, Interval: time.Hour}))
	}
	assert.False(t, g.IsReady())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		g.Run(ctx)
		close(done)
	}()

	require.Eventually(t, g.IsReady, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return s.Count() == 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Len(t, bc.deltas, 2)
	b, ok := s.Get("HT")
	require.True(t, ok)
	assert.Equal(t, "Tiel", b.Rows[0].Destination)
}

type touchRecorder struct {
	recorder
	touched []string
}

func (r *touchRecorder) Touch(station string, failed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touched = append(r.touched, station)
}

func TestUnchangedPollTouchesSink(t *testing.T) {
	src := &scriptedSource{results: []result{{rows: rows(0)}}}
	rec := &touchRecorder{}
	p := newPoller(t, src, Sinks{rec}, config.Display{Rows: 3})

	assert.True(t, p.Poll(context.Background()))
	assert.False(t, p.Poll(context.Background()))
	assert.False(t, p.Poll(context.Background()))

	assert.Equal(t, 1, rec.count())
	assert.Equal(t, []string{"GDM", "GDM"}, rec.touched)
}

func TestPruneLoopBroadcastsRemovals(t *testing.T) {
	s := store.New(time.Millisecond)
	s.Update(&domain.Board{Station: "GDM", Rows: rows(0)})
	bc := &deltaRecorder{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		PruneLoop(ctx, s, bc, 5*time.Millisecond, discard)
		close(done)
	}()

	require.Eventually(t, func() bool { return s.Count() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	require.Len(t, bc.deltas, 1)
	assert.Equal(t, domain.DeltaRemove, bc.deltas[0].Type)
}

func TestRowFromDeparture(t *testing.T) {
	planned := departure
	actual := departure.Add(4 * time.Minute)
	ic, ns := "IC", "NS"
	pt, at := "3", "4"
	utrecht := "Utrecht C."
	text := "Let op: extra reistijd"
	dir := "Amsterdam Centraal"

	r := RowFromDeparture(travelinfo.Departure{
		Direction:       &dir,
		Name:            "NS 3579",
		PlannedDateTime: &planned,
		ActualDateTime:  &actual,
		PlannedTrack:    &pt,
		ActualTrack:     &at,
		Product:         travelinfo.Product{ShortCategoryName: &ic, OperatorName: &ns},
		TrainCategory:   "Intercity",
		RouteStations:   []travelinfo.RouteStation{{MediumName: &utrecht}},
		Messages:        []travelinfo.Message{{Text: &text}},
	})

	assert.Equal(t, &domain.Row{
		Time:         planned,
		DelayMinutes: 4,
		Delay:        "+4 min",
		Destination:  dir,
		Route:        utrecht,
		Track:        "4",
		TrackChanged: true,
		Carrier:      "NS",
		Category:     "IC",
		Messages:     []string{text},
	}, r)
}

func TestRowFromLegacy(t *testing.T) {
	delay, err := nsdata.ParseDelay("PT19M", "")
	require.NoError(t, err)

	r := RowFromLegacy(legacy.Departure{
		Time:        departure,
		Delay:       delay,
		Destination: "Tiel",
		Train:       enums.TrainSprinter,
		Carrier:     enums.CarrierNS,
		Track:       legacy.Track{Text: "4b", Changed: true},
		Tip:         "Stopt niet in Beesd",
		Remarks:     []string{"Rijdt vandaag niet verder dan Tiel"},
	})

	assert.Equal(t, 19, r.DelayMinutes)
	assert.Equal(t, "+19 min", r.Delay)
	assert.Equal(t, "Sprinter", r.Category)
	assert.Equal(t, "NS", r.Carrier)
	assert.True(t, r.TrackChanged)
	assert.Equal(t, []string{"Stopt niet in Beesd", "Rijdt vandaag niet verder dan Tiel"}, r.Messages)
}
