package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/chordviz/internal/config"
	"github.com/matzehuels/chordviz/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir(nil)
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}
	if !strings.HasSuffix(dir, appName) {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir(nil)
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg-cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Dir = "/srv/chordviz-cache"

	dir, err := cacheDir(cfg)
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != cfg.Cache.Dir {
		t.Errorf("cacheDir() = %q, want %q", dir, cfg.Cache.Dir)
	}
}

func TestNewCacheBackends(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	ctx := context.Background()

	cfg := config.Default()
	cfg.Cache.Dir = t.TempDir()

	store, _, err := c.newCache(ctx, cfg, false)
	if err != nil {
		t.Fatalf("newCache(file) error: %v", err)
	}
	if _, ok := store.(*cache.FileCache); !ok {
		t.Errorf("file backend returned %T", store)
	}

	store, _, _ = c.newCache(ctx, cfg, true)
	if _, ok := store.(*cache.NullCache); !ok {
		t.Errorf("--no-cache returned %T", store)
	}

	cfg.Cache.Backend = config.BackendNone
	store, _, _ = c.newCache(ctx, cfg, false)
	if _, ok := store.(*cache.NullCache); !ok {
		t.Errorf("none backend returned %T", store)
	}
}

func TestNewCacheRedisFallback(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cfg := config.Default()
	cfg.Cache.Backend = config.BackendRedis
	cfg.Cache.RedisURL = "redis://127.0.0.1:1/0"

	store, _, err := c.newCache(ctx, cfg, false)
	if err != nil {
		t.Fatalf("unreachable redis should fall back, got %v", err)
	}
	if _, ok := store.(*cache.NullCache); !ok {
		t.Errorf("unreachable redis returned %T", store)
	}
}
