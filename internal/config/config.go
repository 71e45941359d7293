// Package config loads the chordviz configuration file.
//
// The file lives at $XDG_CONFIG_HOME/chordviz/config.toml (falling back to
// ~/.config/chordviz/config.toml). Every value is optional: a missing file or
// a missing key keeps the default. Command-line flags override the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	cverrors "github.com/matzehuels/chordviz/pkg/errors"
	"github.com/matzehuels/chordviz/pkg/layout/circular"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config holds chordviz configuration.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
}

// LayoutConfig sets the circle geometry.
type LayoutConfig struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Radius      float64 `toml:"radius"`
	LabelOffset float64 `toml:"label_offset"`
	NodeRadius  float64 `toml:"node_radius"`
}

// RenderConfig sets output defaults.
type RenderConfig struct {
	Style   string   `toml:"style"`
	Formats []string `toml:"formats"`
	Arrows  bool     `toml:"arrows"`
	Title   bool     `toml:"title"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Backend  string `toml:"backend"`   // "file", "redis", "none"
	Dir      string `toml:"dir"`       // file backend; empty means the user cache dir
	RedisURL string `toml:"redis_url"` // redis backend
	Prefix   string `toml:"prefix"`    // key prefix for shared redis instances
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			Width:       circular.DefaultWidth,
			Height:      circular.DefaultHeight,
			Radius:      circular.DefaultRadius,
			LabelOffset: circular.DefaultLabelOffset,
			NodeRadius:  circular.DefaultNodeRadius,
		},
		Render: RenderConfig{
			Style:   "light",
			Formats: []string{"svg"},
			Arrows:  true,
		},
		Cache: CacheConfig{
			Backend: BackendFile,
			Prefix:  "chordviz:",
		},
	}
}

// Dir returns the chordviz config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "chordviz")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at Path. A missing file yields the defaults.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the config file at path over the defaults. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, cverrors.New(cverrors.ErrCodeInvalidInput, "%s: unknown keys %v", path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the cache backend and layout geometry.
func (c *Config) Validate() error {
	if !slices.Contains([]string{BackendFile, BackendRedis, BackendNone}, c.Cache.Backend) {
		return cverrors.New(cverrors.ErrCodeInvalidInput, "cache.backend must be file, redis or none, got %q", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisURL == "" {
		return cverrors.New(cverrors.ErrCodeInvalidInput, "cache.redis_url is required for the redis backend")
	}
	return c.LayoutOptions().Validate()
}

// LayoutOptions converts the layout section.
func (c *Config) LayoutOptions() circular.Options {
	return circular.Options{
		Width:       c.Layout.Width,
		Height:      c.Layout.Height,
		Radius:      c.Layout.Radius,
		LabelOffset: c.Layout.LabelOffset,
		NodeRadius:  c.Layout.NodeRadius,
	}
}

// Save writes cfg to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// EnsureExists writes the default config to path unless a file is already
// there. It reports whether it created one.
func EnsureExists(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err := Save(Default(), path); err != nil {
		return false, err
	}
	return true, nil
}
