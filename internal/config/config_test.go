package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresCredentials(t *testing.T) {
	t.Setenv("NS_API_KEY", "")
	t.Setenv("NS_LEGACY_USER", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("NS_API_KEY", "secret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("POLL_INTERVAL", "7s")
	t.Setenv("BOARD_STATIONS", "GDM, HT,,UT")
	t.Setenv("BOARD_ROWS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 7*time.Second, cfg.PollInterval)
	assert.Equal(t, []string{"GDM", "HT", "UT"}, cfg.BoardStations)
	assert.Equal(t, DefaultRows, cfg.BoardRows)

	displays, err := cfg.Displays()
	require.NoError(t, err)
	require.Len(t, displays, 3)
	assert.Equal(t, "api", displays[0].Source)
	assert.Equal(t, "server", displays[0].Sink)
	assert.Equal(t, 7*time.Second, displays[0].Interval)
}

func TestParseDisplaysYAML(t *testing.T) {
	data := []byte(`
displays:
  - station: GDM
    rows: 4
    interval: 30s
    fullscreen: true
    delayThreshold: 5
    filter: 'Category == "IC"'
  - station: HT
    source: legacy
`)
	displays, err := ParseDisplays(data, "yaml")
	require.NoError(t, err)
	require.Len(t, displays, 2)

	assert.Equal(t, Display{
		Station:        "GDM",
		Rows:           4,
		Interval:       30 * time.Second,
		Fullscreen:     true,
		DelayThreshold: 5,
		Filter:         `Category == "IC"`,
		Source:         "api",
		Sink:           "terminal",
	}, displays[0])
	assert.Equal(t, DefaultRows, displays[1].Rows)
	assert.Equal(t, DefaultPollInterval, displays[1].Interval)
	assert.Equal(t, "legacy", displays[1].Source)
}

func TestParseDisplaysTOML(t *testing.T) {
	data := []byte(`
[[displays]]
station = "UT"
rows = 6
interval = "10s"
delay_threshold = 3
sink = "slack"
`)
	displays, err := ParseDisplays(data, "toml")
	require.NoError(t, err)
	require.Len(t, displays, 1)
	assert.Equal(t, "UT", displays[0].Station)
	assert.Equal(t, 6, displays[0].Rows)
	assert.Equal(t, 10*time.Second, displays[0].Interval)
	assert.Equal(t, 3, displays[0].DelayThreshold)
	assert.Equal(t, "slack", displays[0].Sink)
}

func TestParseDisplaysInvalid(t *testing.T) {
	_, err := ParseDisplays([]byte("displays:\n  - rows: 3\n"), "yaml")
	assert.ErrorContains(t, err, "station is required")

	_, err = ParseDisplays([]byte("displays:\n  - station: GDM\n    source: fax\n"), "yaml")
	assert.ErrorContains(t, err, "unknown source")

	_, err = ParseDisplays(nil, "ini")
	assert.Error(t, err)
}

func TestLoadDisplaysByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boards.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[displays]]\nstation = \"GDM\"\n"), 0o644))

	displays, err := LoadDisplays(path)
	require.NoError(t, err)
	require.Len(t, displays, 1)
	assert.Equal(t, "GDM", displays[0].Station)
}
