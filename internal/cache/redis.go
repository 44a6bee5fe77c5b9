package cache

import (
	"bytes"
	"context"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/redis/go-redis/v9"

	"nstravel/internal/domain"
	"nstravel/pkg/legacy"
	"nstravel/pkg/travelinfo"
)

const keyPrefix = "nstravel:"

// RedisCache shares the station list, mirrored boards and station search
// results between server instances. Every value is stored gzip-compressed.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCache(addr, password string, db int, ttl time.Duration, logger *slog.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "redis_cache"),
	}, nil
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// SaveStations stores the station list as gob.
func (c *RedisCache) SaveStations(ctx context.Context, stations []legacy.Station) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(stations); err != nil {
		return fmt.Errorf("gob encode: %w", err)
	}
	return c.put(ctx, KeyStations, buf.Bytes(), c.ttl)
}

func (c *RedisCache) LoadStations(ctx context.Context) ([]legacy.Station, error) {
	data, err := c.fetch(ctx, KeyStations)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, legacy.ErrNoStations
	}
	var stations []legacy.Station
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&stations); err != nil {
		return nil, fmt.Errorf("gob decode: %w", err)
	}
	if len(stations) == 0 {
		return nil, legacy.ErrNoStations
	}
	return stations, nil
}

// Publish mirrors a changed board so other instances can serve it.
func (c *RedisCache) Publish(b *domain.Board) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.putJSON(ctx, KeyBoard(b.Station), b); err != nil {
		c.logger.Warn("failed to mirror board", "station", b.Station, "error", err)
	}
}

func (c *RedisCache) LoadBoard(ctx context.Context, station string) (*domain.Board, bool, error) {
	var b domain.Board
	found, err := c.fetchJSON(ctx, KeyBoard(station), &b)
	if err != nil || !found {
		return nil, false, err
	}
	return &b, true, nil
}

// SaveSearch caches the API answer to a station search.
func (c *RedisCache) SaveSearch(ctx context.Context, query string, limit int, stations []travelinfo.Station) error {
	return c.putJSON(ctx, KeyStationSearch(query, limit), stations)
}

func (c *RedisCache) LoadSearch(ctx context.Context, query string, limit int) ([]travelinfo.Station, bool, error) {
	var stations []travelinfo.Station
	found, err := c.fetchJSON(ctx, KeyStationSearch(query, limit), &stations)
	return stations, found, err
}

func (c *RedisCache) putJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	return c.put(ctx, key, data, c.ttl)
}

func (c *RedisCache) fetchJSON(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.fetch(ctx, key)
	if err != nil || data == nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("json unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	compressed, err := gzipCompress(value)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, compressed, ttl).Err(); err != nil {
		c.logger.Error("cache set failed", "key", key, "error", err)
		return err
	}
	c.logger.Debug("cache set", "key", key, "size_bytes", len(value), "compressed_bytes", len(compressed), "ttl", ttl)
	return nil
}

// fetch returns nil without an error when the key does not exist.
func (c *RedisCache) fetch(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.logger.Debug("cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		c.logger.Error("cache get failed", "key", key, "error", err)
		return nil, err
	}
	return gzipDecompress(val)
}

func gzipCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(data); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gzipDecompress(data []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gz.Close()
	return io.ReadAll(gz)
}
