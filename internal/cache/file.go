package cache

import (
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"nstravel/pkg/legacy"
)

// FileCache keeps the station list in a gzip-compressed gob file.
type FileCache struct {
	path string
}

func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

func (c *FileCache) Path() string { return c.path }

func (c *FileCache) LoadStations(_ context.Context) ([]legacy.Station, error) {
	f, err := os.Open(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, legacy.ErrNoStations
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.path, err)
	}
	defer zr.Close()

	var stations []legacy.Station
	if err := gob.NewDecoder(zr).Decode(&stations); err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.path, err)
	}
	if len(stations) == 0 {
		return nil, legacy.ErrNoStations
	}
	return stations, nil
}

// SaveStations writes to a temporary file and renames it over the cache, so
// readers never see a partial file.
func (c *FileCache) SaveStations(_ context.Context, stations []legacy.Station) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}

	tmpPath := c.path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	zw, err := gzip.NewWriterLevel(f, gzip.BestSpeed)
	if err != nil {
		f.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	encErr := gob.NewEncoder(zw).Encode(stations)
	closeErr := zw.Close()
	fileCloseErr := f.Close()
	for _, err := range []error{encErr, closeErr, fileCloseErr} {
		if err != nil {
			_ = os.Remove(tmpPath)
			return err
		}
	}

	if err := os.Rename(tmpPath, c.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
