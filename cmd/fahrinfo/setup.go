package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mobil-koeln/fahrinfo/internal/api"
	"github.com/mobil-koeln/fahrinfo/internal/cache"
	"github.com/mobil-koeln/fahrinfo/internal/catalog"
	"github.com/mobil-koeln/fahrinfo/internal/config"
)

// newLogger returns a JSON logger writing to cfg.LogFile, or a discarding
// one. The terminal belongs to the dashboard, so nothing is logged there.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel})
	logger := slog.New(handler).With("version", version)
	return logger, func() { _ = f.Close() }, nil
}

// newClient creates an API client with the configured endpoints
func newClient(cfg *config.Config, logger *slog.Logger) *api.Client {
	opts := []api.ClientOption{
		api.WithBaseURL(cfg.APIURL),
		api.WithTimeout(cfg.HTTPTimeout),
		api.WithLogger(logger),
	}
	if cfg.StationsURL != "" {
		opts = append(opts, api.WithStationsURL(cfg.StationsURL))
	}
	return api.NewClient(opts...)
}

// newLoader wires the catalog loader to the file cache unless caching is
// disabled or the cache directory is unusable.
func newLoader(cfg *config.Config, client *api.Client, logger *slog.Logger) *catalog.Loader {
	var store catalog.Store
	if !cfg.NoCache {
		fc, err := cache.NewFileCache(cfg.CacheDir, cfg.CatalogTTL)
		if err != nil {
			logger.Warn("station cache disabled", "dir", cfg.CacheDir, "error", err)
		} else {
			store = fc
		}
	}
	return catalog.NewLoader(client, store, logger)
}
