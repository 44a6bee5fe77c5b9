package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nstravel/internal/domain"
	"nstravel/pkg/enums"
	"nstravel/pkg/legacy"
	"nstravel/pkg/travelinfo"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

var stations = []legacy.Station{
	{
		Code:    "GDM",
		Type:    enums.StationTypeNodeStoptrain,
		Names:   legacy.StationNames{Short: "Geldermlsn", Medium: "Geldermalsen", Long: "Geldermalsen"},
		Country: enums.CountryNetherlands,
		UICCode: 8400244,
		Lat:     51.88301,
		Lon:     5.27127,
	},
	{
		Code:     "HT",
		Names:    legacy.StationNames{Short: "Den Bosch", Medium: "'s-Hertogenbosch", Long: "'s-Hertogenbosch"},
		Synonyms: []string{"Den Bosch"},
	},
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewFileCache(filepath.Join(t.TempDir(), "nested", "stations.gob.gz"))

	_, err := c.LoadStations(ctx)
	assert.ErrorIs(t, err, legacy.ErrNoStations)

	require.NoError(t, c.SaveStations(ctx, stations))
	_, err = os.Stat(c.Path() + ".tmp")
	assert.True(t, errors.Is(err, os.ErrNotExist), "temporary file must be renamed away")

	got, err := c.LoadStations(ctx)
	require.NoError(t, err)
	assert.Equal(t, stations, got)
}

func TestFileCacheCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stations.gob.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip"), 0o644))

	_, err := NewFileCache(path).LoadStations(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, legacy.ErrNoStations))
}

func newRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewRedisCache(mr.Addr(), "", 0, time.Hour, discard)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestRedisStations(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedis(t)

	_, err := c.LoadStations(ctx)
	assert.ErrorIs(t, err, legacy.ErrNoStations)

	require.NoError(t, c.SaveStations(ctx, stations))
	assert.True(t, mr.Exists("nstravel:stations"))
	assert.Equal(t, time.Hour, mr.TTL("nstravel:stations"))

	got, err := c.LoadStations(ctx)
	require.NoError(t, err)
	assert.Equal(t, stations, got)
}

func TestRedisBoards(t *testing.T) {
	ctx := context.Background()
	c, _ := newRedis(t)

	_, found, err := c.LoadBoard(ctx, "gdm")
	require.NoError(t, err)
	assert.False(t, found)

	b := domain.Empty("GDM", 2)
	b.Rows[0] = &domain.Row{Destination: "Tiel", DelayMinutes: 19, Delay: "+19 min"}
	c.Publish(b)

	got, found, err := c.LoadBoard(ctx, "gdm")
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, b.SameRows(got))
}

func TestRedisSearch(t *testing.T) {
	ctx := context.Background()
	c, mr := newRedis(t)

	_, found, err := c.LoadSearch(ctx, "utrecht", 10)
	require.NoError(t, err)
	assert.False(t, found)

	code := "UT"
	require.NoError(t, c.SaveSearch(ctx, " Utrecht ", 10, []travelinfo.Station{{UICCode: "8400621", Code: &code}}))
	assert.True(t, mr.Exists("nstravel:search:utrecht:10"))

	got, found, err := c.LoadSearch(ctx, "UTRECHT", 10)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "8400621", got[0].UICCode)

	_, found, err = c.LoadSearch(ctx, "utrecht", 5)
	require.NoError(t, err)
	assert.False(t, found, "limit is part of the key")
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	_, err := NewRedisCache("127.0.0.1:1", "", 0, time.Hour, discard)
	assert.Error(t, err)
}

type countingFetcher struct {
	calls int
	err   error
}

func (f *countingFetcher) FetchStations(context.Context) ([]legacy.Station, error) {
	f.calls++
	return stations, f.err
}

func TestWarmerFetchesWhenStoresEmpty(t *testing.T) {
	ctx := context.Background()
	file := NewFileCache(filepath.Join(t.TempDir(), "stations.gob.gz"))
	r, _ := newRedis(t)
	fetcher := &countingFetcher{}
	idx := legacy.NewStationIndex(nil)

	w := NewStationWarmer(fetcher, idx, 0, discard, file, r)
	require.NoError(t, w.Warm(ctx))
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, 2, idx.Len())

	for _, store := range []legacy.StationStore{file, r} {
		got, err := store.LoadStations(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	}
}

func TestWarmerBackfillsEarlierStores(t *testing.T) {
	ctx := context.Background()
	file := NewFileCache(filepath.Join(t.TempDir(), "stations.gob.gz"))
	r, _ := newRedis(t)
	require.NoError(t, r.SaveStations(ctx, stations))

	fetcher := &countingFetcher{err: errors.New("offline")}
	idx := legacy.NewStationIndex(nil)

	w := NewStationWarmer(fetcher, idx, 0, discard, file, r)
	require.NoError(t, w.Warm(ctx))
	assert.Zero(t, fetcher.calls)

	s, ok := idx.Find("den bosch")
	require.True(t, ok)
	assert.Equal(t, "HT", s.Code)

	got, err := file.LoadStations(ctx)
	require.NoError(t, err)
	assert.Equal(t, stations, got)
}

func TestWarmerRefreshError(t *testing.T) {
	w := NewStationWarmer(&countingFetcher{err: errors.New("offline")}, legacy.NewStationIndex(nil), 0, discard)
	assert.ErrorContains(t, w.Warm(context.Background()), "offline")
}
