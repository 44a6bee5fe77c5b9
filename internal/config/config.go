package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"nstravel/pkg/legacy"
	"nstravel/pkg/nsapi"
)

type Config struct {
	LogLevel        slog.Level
	HTTPAddr        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	APIBaseURL     string
	APIKey         string
	LegacyBaseURL  string
	LegacyUser     string
	LegacyPassword string
	StrictDecoding bool

	PollInterval    time.Duration
	BoardStations   []string
	BoardRows       int
	BoardStaleAfter time.Duration
	DisplayFile     string

	StationCacheFile string
	StationRefresh   time.Duration

	RedisEnabled  bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	SlackToken   string
	SlackChannel string

	RateLimitPerWindow int
	RateLimitWindow    time.Duration
	RateLimitWhitelist []string
}

// Load reads the configuration from the environment. Either NS_API_KEY or
// NS_LEGACY_USER must be set.
func Load() (*Config, error) {
	apiKey := os.Getenv("NS_API_KEY")
	legacyUser := os.Getenv("NS_LEGACY_USER")
	if apiKey == "" && legacyUser == "" {
		return nil, fmt.Errorf("NS_API_KEY or NS_LEGACY_USER environment variable is required")
	}

	return &Config{
		LogLevel:        getLogLevelEnv("LOG_LEVEL", slog.LevelInfo),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:     getDurationEnv("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    getDurationEnv("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),

		APIBaseURL:     getEnv("NS_API_URL", nsapi.DefaultBaseURL),
		APIKey:         apiKey,
		LegacyBaseURL:  getEnv("NS_LEGACY_URL", legacy.DefaultBaseURL),
		LegacyUser:     legacyUser,
		LegacyPassword: getEnv("NS_LEGACY_PASSWORD", ""),
		StrictDecoding: getBoolEnv("STRICT_DECODING", false),

		PollInterval:    getDurationEnv("POLL_INTERVAL", DefaultPollInterval),
		BoardStations:   getCSVEnv("BOARD_STATIONS"),
		BoardRows:       getIntEnv("BOARD_ROWS", DefaultRows),
		BoardStaleAfter: getDurationEnv("BOARD_STALE_AFTER", 10*time.Minute),
		DisplayFile:     getEnv("DISPLAY_FILE", ""),

		StationCacheFile: getEnv("STATION_CACHE_FILE", DefaultStationCacheFile()),
		StationRefresh:   getDurationEnv("STATION_REFRESH", 24*time.Hour),

		RedisEnabled:  getBoolEnv("REDIS_ENABLED", false),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getIntEnv("REDIS_DB", 0),
		CacheTTL:      getDurationEnv("CACHE_TTL", 24*time.Hour),

		SlackToken:   getEnv("SLACK_TOKEN", ""),
		SlackChannel: getEnv("SLACK_CHANNEL", ""),

		RateLimitPerWindow: getIntEnv("RATE_LIMIT_PER_WINDOW", 120),
		RateLimitWindow:    getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitWhitelist: getCSVEnv("RATE_LIMIT_WHITELIST"),
	}, nil
}

// DefaultStationCacheFile places the station list below the user cache directory.
func DefaultStationCacheFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "nstravel", "stations.gob.gz")
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getBoolEnv(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getLogLevelEnv(key string, defaultVal slog.Level) slog.Level {
	return ParseLevel(os.Getenv(key), defaultVal)
}

// ParseLevel maps a level name to a slog level, falling back to defaultVal.
func ParseLevel(v string, defaultVal slog.Level) slog.Level {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return defaultVal
	}
}

func getCSVEnv(key string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			result = append(result, t)
		}
	}
	return result
}
