package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mobil-koeln/fahrinfo/internal/clock"
)

var epoch = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func newTestCache(t *testing.T, ttl time.Duration) (*FileCache, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake(epoch)
	c, err := NewFileCache(t.TempDir(), ttl, WithClock(fake))
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	return c, fake
}

func TestFileCache_SetAndGet(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)

	value := []byte(`[{"name":"Marienplatz"}]`)
	if err := cache.Set("stations", value); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := cache.Get("stations")
	if !ok {
		t.Fatal("Get() returned false, want true")
	}
	if string(got) != string(value) {
		t.Errorf("Get() = %q, want %q", got, value)
	}
}

func TestFileCache_GetMissing(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)

	if _, ok := cache.Get("non-existent-key"); ok {
		t.Error("Get() returned true for non-existent key")
	}
}

func TestFileCache_Expiration(t *testing.T) {
	cache, fake := newTestCache(t, time.Minute)

	if err := cache.Set("stations", []byte(`[]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	fake.Advance(59 * time.Second)
	if _, ok := cache.Get("stations"); !ok {
		t.Error("Get() returned false before expiry")
	}

	fake.Advance(2 * time.Second)
	if _, ok := cache.Get("stations"); ok {
		t.Error("Get() returned true for expired key")
	}
	if _, err := os.Stat(cache.Path("stations")); !os.IsNotExist(err) {
		t.Error("expired entry was not removed from disk")
	}
}

func TestFileCache_ZeroTTLNeverExpires(t *testing.T) {
	cache, fake := newTestCache(t, 0)

	if err := cache.Set("stations", []byte(`[]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	fake.Advance(365 * 24 * time.Hour)
	if _, ok := cache.Get("stations"); !ok {
		t.Error("entry with zero TTL expired")
	}
}

func TestFileCache_CorruptEntry(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)

	if err := os.WriteFile(cache.Path("stations"), []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, ok := cache.Get("stations"); ok {
		t.Error("Get() returned true for corrupt entry")
	}
	if _, err := os.Stat(cache.Path("stations")); !os.IsNotExist(err) {
		t.Error("corrupt entry was not removed")
	}
}

func TestFileCache_SetRejectsInvalidJSON(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)

	if err := cache.Set("stations", []byte("{broken")); err == nil {
		t.Error("Set() accepted invalid JSON")
	}
}

func TestFileCache_SetLeavesNoTempFiles(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)

	for i := 0; i < 3; i++ {
		if err := cache.Set("stations", []byte(`[]`)); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}

	entries, err := os.ReadDir(cache.Dir())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("cache dir has %d files, want 1", len(entries))
	}
}

func TestFileCache_HashKey(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)

	if cache.Path("stations") == cache.Path("departures") {
		t.Error("different keys map to the same file")
	}
	if filepath.Dir(cache.Path("stations")) != cache.Dir() {
		t.Error("entry path is outside the cache dir")
	}
}

func TestFileCache_Delete(t *testing.T) {
	cache, _ := newTestCache(t, time.Hour)

	if err := cache.Set("stations", []byte(`[]`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := cache.Delete("stations"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := cache.Get("stations"); ok {
		t.Error("Get() returned true after Delete()")
	}
	if err := cache.Delete("stations"); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}
}

func TestFileCache_CreateDirectory(t *testing.T) {
	nestedDir := filepath.Join(t.TempDir(), "nested", "cache", "dir")

	cache, err := NewFileCache(nestedDir, time.Hour)
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}

	if _, err := os.Stat(nestedDir); os.IsNotExist(err) {
		t.Error("Cache directory was not created")
	}
	if err := cache.Set("test", []byte(`"data"`)); err != nil {
		t.Errorf("Set() error = %v", err)
	}
}

func TestDefaultCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	if got := DefaultCacheDir(); got != filepath.Join("/tmp/xdg", "fahrinfo") {
		t.Errorf("DefaultCacheDir() = %q", got)
	}

	t.Setenv("XDG_CACHE_HOME", "")
	if got := DefaultCacheDir(); filepath.Base(got) != "fahrinfo" && filepath.Base(got) != "fahrinfo-cache" {
		t.Errorf("DefaultCacheDir() = %q", got)
	}
}
