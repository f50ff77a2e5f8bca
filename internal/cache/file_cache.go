package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mobil-koeln/fahrinfo/internal/clock"
)

const appName = "fahrinfo"

// FileCache is a directory of JSON files, one per key, with an optional TTL
type FileCache struct {
	dir   string
	ttl   time.Duration // 0 means entries never expire
	clock clock.Clock
}

// cacheEntry represents a cached item with expiration
type cacheEntry struct {
	Data      json.RawMessage `json:"data"`
	StoredAt  time.Time       `json:"stored_at"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
}

// Option configures a FileCache
type Option func(*FileCache)

// WithClock sets the time source used for expiry
func WithClock(c clock.Clock) Option {
	return func(fc *FileCache) {
		fc.clock = c
	}
}

// NewFileCache creates the cache directory if needed
func NewFileCache(dir string, ttl time.Duration, opts ...Option) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	fc := &FileCache{
		dir:   dir,
		ttl:   ttl,
		clock: clock.Real(),
	}
	for _, opt := range opts {
		opt(fc)
	}
	return fc, nil
}

// DefaultCacheDir returns $XDG_CACHE_HOME/fahrinfo, falling back to ~/.cache/fahrinfo
func DefaultCacheDir() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, appName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName+"-cache")
	}

	return filepath.Join(home, ".cache", appName)
}

// Dir returns the cache directory
func (c *FileCache) Dir() string { return c.dir }

// Path returns the file backing key
func (c *FileCache) Path(key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".json")
}

// Get returns the stored JSON value for key. Missing, unreadable, corrupt
// and expired entries all report false; corrupt and expired files are removed.
func (c *FileCache) Get(key string) ([]byte, bool) {
	filename := c.Path(key)

	// #nosec G304 -- filename is derived from hash of cache key, not user input
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil || len(entry.Data) == 0 {
		_ = os.Remove(filename)
		return nil, false
	}

	if entry.ExpiresAt != nil && c.clock.Now().After(*entry.ExpiresAt) {
		_ = os.Remove(filename)
		return nil, false
	}

	return entry.Data, true
}

// Set stores a JSON value under key. The file is written to a temporary
// name and renamed, so readers never see a partial entry.
func (c *FileCache) Set(key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("cache %q: value is not valid JSON", key)
	}

	now := c.clock.Now()
	entry := cacheEntry{Data: value, StoredAt: now}
	if c.ttl > 0 {
		exp := now.Add(c.ttl)
		entry.ExpiresAt = &exp
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("cache %q: %w", key, err)
	}

	tmp, err := os.CreateTemp(c.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("cache %q: %w", key, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("cache %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cache %q: %w", key, err)
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		return fmt.Errorf("cache %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), c.Path(key)); err != nil {
		return fmt.Errorf("cache %q: %w", key, err)
	}
	return nil
}

// Delete removes the entry for key, if any
func (c *FileCache) Delete(key string) error {
	err := os.Remove(c.Path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cache %q: %w", key, err)
	}
	return nil
}
