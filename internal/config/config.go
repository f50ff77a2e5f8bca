package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mobil-koeln/fahrinfo/internal/api"
	"github.com/mobil-koeln/fahrinfo/internal/cache"
	"github.com/mobil-koeln/fahrinfo/internal/event"
)

// Config holds all runtime settings. There is no config file; every value
// comes from a FAHRINFO_* environment variable or its default.
type Config struct {
	// MVG API
	APIURL      string
	StationsURL string
	HTTPTimeout time.Duration

	// Station catalog cache
	CacheDir   string
	CatalogTTL time.Duration
	NoCache    bool

	// Event source
	TickRate        time.Duration
	RefreshInterval time.Duration

	// Output
	Color    string
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables with sensible defaults.
// Unparseable values fall back to the default.
func Load() *Config {
	return &Config{
		APIURL:      getEnv("FAHRINFO_API_URL", api.BaseURL),
		StationsURL: getEnv("FAHRINFO_STATIONS_URL", ""),
		HTTPTimeout: getEnvDuration("FAHRINFO_HTTP_TIMEOUT", 10*time.Second),

		CacheDir:   getEnv("FAHRINFO_CACHE_DIR", cache.DefaultCacheDir()),
		CatalogTTL: getEnvDuration("FAHRINFO_CATALOG_TTL", 0),
		NoCache:    getEnvBool("FAHRINFO_NO_CACHE", false),

		TickRate:        getEnvDuration("FAHRINFO_TICK_RATE", event.DefaultTickRate),
		RefreshInterval: getEnvDuration("FAHRINFO_REFRESH_INTERVAL", event.DefaultRefreshInterval),

		Color:    getEnv("FAHRINFO_COLOR", "auto"),
		LogFile:  getEnv("FAHRINFO_LOG_FILE", ""),
		LogLevel: getEnvLevel("FAHRINFO_LOG_LEVEL", slog.LevelInfo),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration accepts Go durations ("90s", "1h") or plain seconds ("90")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d >= 0 {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvLevel(key string, defaultValue slog.Level) slog.Level {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return defaultValue
	}
	return level
}
