package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPollInterval = 5 * time.Second
	DefaultRows         = 10
)

// Display configures a single departure board. It is handed to each
// display explicitly; nothing about a display's look is global.
type Display struct {
	Station    string        `yaml:"station" toml:"station"`
	Rows       int           `yaml:"rows" toml:"rows"`
	Interval   time.Duration `yaml:"interval" toml:"interval"`
	Fullscreen bool          `yaml:"fullscreen" toml:"fullscreen"`
	// Delays of at least this many minutes are highlighted. Zero disables it.
	DelayThreshold int    `yaml:"delayThreshold" toml:"delay_threshold"`
	Filter         string `yaml:"filter" toml:"filter"`
	// Source is "api" (default) or "legacy".
	Source string `yaml:"source" toml:"source"`
	Sink   string `yaml:"sink" toml:"sink"`
}

// WithDefaults fills unset fields.
func (d Display) WithDefaults() Display {
	if d.Rows <= 0 {
		d.Rows = DefaultRows
	}
	if d.Interval <= 0 {
		d.Interval = DefaultPollInterval
	}
	if d.Source == "" {
		d.Source = "api"
	}
	if d.Sink == "" {
		d.Sink = "terminal"
	}
	return d
}

func (d Display) Validate() error {
	if strings.TrimSpace(d.Station) == "" {
		return fmt.Errorf("display: station is required")
	}
	switch d.Source {
	case "api", "legacy":
	default:
		return fmt.Errorf("display %s: unknown source %q", d.Station, d.Source)
	}
	switch d.Sink {
	case "terminal", "slack", "server":
	default:
		return fmt.Errorf("display %s: unknown sink %q", d.Station, d.Sink)
	}
	return nil
}

type displayFile struct {
	Displays []Display `yaml:"displays" toml:"displays"`
}

// ParseDisplays decodes a display file. format is "toml" or "yaml".
func ParseDisplays(data []byte, format string) ([]Display, error) {
	var f displayFile
	switch format {
	case "toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("decoding toml: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown display file format %q", format)
	}

	displays := make([]Display, 0, len(f.Displays))
	for _, d := range f.Displays {
		d = d.WithDefaults()
		if err := d.Validate(); err != nil {
			return nil, err
		}
		displays = append(displays, d)
	}
	return displays, nil
}

// LoadDisplays reads a display file, picking the format from its extension.
func LoadDisplays(path string) ([]Display, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return ParseDisplays(data, format)
}

// Displays returns the configured boards: those of DisplayFile when set,
// otherwise one server board per BOARD_STATIONS entry.
func (c *Config) Displays() ([]Display, error) {
	if c.DisplayFile != "" {
		return LoadDisplays(c.DisplayFile)
	}
	source := "api"
	if c.APIKey == "" {
		source = "legacy"
	}
	displays := make([]Display, 0, len(c.BoardStations))
	for _, station := range c.BoardStations {
		displays = append(displays, Display{
			Station:  station,
			Rows:     c.BoardRows,
			Interval: c.PollInterval,
			Source:   source,
			Sink:     "server",
		}.WithDefaults())
	}
	return displays, nil
}
