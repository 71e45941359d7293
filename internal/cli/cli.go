package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/chordviz/internal/config"
	"github.com/matzehuels/chordviz/pkg/buildinfo"
	"github.com/matzehuels/chordviz/pkg/cache"
	"github.com/matzehuels/chordviz/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "chordviz"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath overrides the config file location (--config).
	ConfigPath string

	cfg *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "chordviz draws correlation networks as circular chord diagrams",
		Long:          `chordviz places the nodes of a correlation network on a circle, joins them with curved connectors through the hub and labels every connector with its coefficient. Hovering a node in the SVG output highlights its connections.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default: "+config.Path()+")")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.focusCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// configPath returns --config, or the default location.
func (c *CLI) configPath() string {
	if c.ConfigPath != "" {
		return c.ConfigPath
	}
	return config.Path()
}

// loadConfig returns the loaded configuration, reading it on first use.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	path := c.configPath()
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Logger.Debug("loaded config", "path", path, "cache", cfg.Cache.Backend)
	c.cfg = cfg
	return cfg, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	store, keyer, err := c.newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

// newCache opens the configured artifact cache. An unreachable Redis falls
// back to no caching rather than failing the command.
func (c *CLI) newCache(ctx context.Context, cfg *config.Config, noCache bool) (cache.Cache, cache.Keyer, error) {
	if noCache {
		return cache.NewNullCache(), nil, nil
	}
	switch cfg.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil, nil
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.RedisURL)
		if err != nil {
			c.Logger.Warn("redis cache unavailable, caching disabled", "error", err)
			return cache.NewNullCache(), nil, nil
		}
		return rc, cache.NewScopedKeyer(nil, cfg.Cache.Prefix), nil
	default:
		dir, err := cacheDir(cfg)
		if err != nil {
			return cache.NewNullCache(), nil, nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, nil, err
		}
		return fc, nil, nil
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the XDG standard
// location (~/.cache/chordviz/).
func cacheDir(cfg *config.Config) (string, error) {
	if cfg != nil && cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	return cache.DefaultDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// setCLIDefaults applies CLI-specific defaults on top of pipeline defaults.
func setCLIDefaults(opts *pipeline.Options) {
	opts.SetLayoutDefaults()
	opts.SetRenderDefaults()
	// CLI-specific preferences (override pipeline defaults)
	opts.Arrows = true
}

// applyConfig copies config values into opts for every flag the user did not
// set explicitly.
func applyConfig(flags *pflag.FlagSet, cfg *config.Config, opts *pipeline.Options) {
	set := func(name string, apply func()) {
		if f := flags.Lookup(name); f != nil && !f.Changed {
			apply()
		}
	}
	set("width", func() { opts.Width = cfg.Layout.Width })
	set("height", func() { opts.Height = cfg.Layout.Height })
	set("radius", func() { opts.Radius = cfg.Layout.Radius })
	set("label-offset", func() { opts.LabelOffset = cfg.Layout.LabelOffset })
	set("node-radius", func() { opts.NodeRadius = cfg.Layout.NodeRadius })
	set("style", func() { opts.Style = cfg.Render.Style })
	set("format", func() { opts.Formats = append([]string(nil), cfg.Render.Formats...) })
	set("arrows", func() { opts.Arrows = cfg.Render.Arrows })
	set("title", func() { opts.ShowTitle = cfg.Render.Title })
}

// addLayoutFlags registers the circle geometry flags shared by several commands.
func addLayoutFlags(flags *pflag.FlagSet, opts *pipeline.Options) {
	flags.Float64Var(&opts.Width, "width", opts.Width, "frame width")
	flags.Float64Var(&opts.Height, "height", opts.Height, "frame height")
	flags.Float64Var(&opts.Radius, "radius", opts.Radius, "layout circle radius")
	flags.Float64Var(&opts.LabelOffset, "label-offset", opts.LabelOffset, "outward push of value labels from the chord midpoint")
	flags.Float64Var(&opts.NodeRadius, "node-radius", opts.NodeRadius, "drawn node circle radius")
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// datasetArg returns the dataset named on the command line, or the builtin default.
func datasetArg(args []string) string {
	if len(args) == 0 {
		return pipeline.DefaultDataset
	}
	return args[0]
}
