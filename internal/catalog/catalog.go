// Package catalog loads the station catalog once at startup, preferring a
// local cache file over the network.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mobil-koeln/fahrinfo/internal/models"
)

const cacheKey = "stations"

// Lister fetches the full catalog from the network
type Lister interface {
	ListStations(ctx context.Context) ([]models.Station, error)
}

// Store is the cache backing the catalog. *cache.FileCache satisfies it.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Origin tells where a loaded catalog came from
type Origin int

const (
	FromNetwork Origin = iota
	FromCache
)

func (o Origin) String() string {
	if o == FromCache {
		return "cache"
	}
	return "network"
}

// Result is a loaded catalog
type Result struct {
	Stations []models.Station
	Origin   Origin
}

// Loader reads the catalog from the store if possible, else fetches it and
// writes it back. Write failures are logged and ignored.
type Loader struct {
	lister Lister
	store  Store // nil disables caching
	logger *slog.Logger
}

// NewLoader creates a Loader. store may be nil.
func NewLoader(lister Lister, store Store, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{lister: lister, store: store, logger: logger}
}

// Load returns the catalog in the order the provider delivered it
func (l *Loader) Load(ctx context.Context) (Result, error) {
	if stations, ok := l.readCache(); ok {
		l.logger.Info("station catalog loaded", "origin", FromCache, "count", len(stations))
		return Result{Stations: stations, Origin: FromCache}, nil
	}

	stations, err := l.lister.ListStations(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load station catalog: %w", err)
	}
	l.logger.Info("station catalog loaded", "origin", FromNetwork, "count", len(stations))

	l.writeCache(stations)
	return Result{Stations: stations, Origin: FromNetwork}, nil
}

func (l *Loader) readCache() ([]models.Station, bool) {
	if l.store == nil {
		return nil, false
	}

	data, ok := l.store.Get(cacheKey)
	if !ok {
		return nil, false
	}

	var stations []models.Station
	if err := json.Unmarshal(data, &stations); err != nil {
		l.logger.Warn("discarding unreadable station cache", "error", err)
		if err := l.store.Delete(cacheKey); err != nil {
			l.logger.Warn("station cache delete failed", "error", err)
		}
		return nil, false
	}
	if len(stations) == 0 {
		return nil, false
	}
	return stations, true
}

func (l *Loader) writeCache(stations []models.Station) {
	if l.store == nil || len(stations) == 0 {
		return
	}

	data, err := json.Marshal(stations)
	if err != nil {
		l.logger.Warn("station cache encode failed", "error", err)
		return
	}
	if err := l.store.Set(cacheKey, data); err != nil {
		l.logger.Warn("station cache write failed", "error", err)
	}
}

// Status is the status-bar text for the outcome of Load
func Status(res Result, err error) string {
	if err != nil {
		return "Failed to load stations: " + err.Error()
	}
	if res.Origin == FromCache {
		return fmt.Sprintf("Loaded %d stations (cached)", len(res.Stations))
	}
	return fmt.Sprintf("Loaded %d stations", len(res.Stations))
}
