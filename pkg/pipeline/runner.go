package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chordviz/pkg/cache"
	"github.com/matzehuels/chordviz/pkg/layout/circular"
	"github.com/matzehuels/chordviz/pkg/network"
	"github.com/matzehuels/chordviz/pkg/observability"
	"github.com/matzehuels/chordviz/pkg/render/chord"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Load
	loadStart := time.Now()
	n, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Network = n
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.NodeCount = n.NodeCount()
	result.Stats.EdgeCount = n.EdgeCount()
	result.Warnings = network.Lint(n)

	if result.DatasetHash, err = DatasetHash(n); err != nil {
		return nil, fmt.Errorf("hash dataset: %w", err)
	}

	r.Logger.Info("loaded dataset",
		"dataset", opts.Dataset,
		"nodes", n.NodeCount(),
		"edges", n.EdgeCount(),
		"duration", result.Stats.LoadTime)
	for _, w := range result.Warnings {
		r.Logger.Warn(w.Message, "subject", w.Subject)
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	l, err := r.ComputeLayout(ctx, n, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Degenerate = len(l.DegenerateEdges())

	r.Logger.Info("computed layout",
		"radius", l.Radius,
		"degenerate", result.Stats.Degenerate,
		"duration", result.Stats.LayoutTime)

	scene, err := BuildScene(n, l, opts)
	if err != nil {
		return nil, fmt.Errorf("focus: %w", err)
	}
	result.Scene = scene

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, n, l, scene, result.DatasetHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the dataset, reporting to the pipeline hooks.
func (r *Runner) Load(ctx context.Context, opts Options) (*network.Network, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Dataset)
	start := time.Now()

	n, err := Load(ctx, opts)

	nodes, edges := 0, 0
	if n != nil {
		nodes, edges = n.NodeCount(), n.EdgeCount()
	}
	hooks.OnLoadComplete(ctx, opts.Dataset, nodes, edges, time.Since(start), err)
	return n, err
}

// ComputeLayout lays out n, reporting to the pipeline hooks.
func (r *Runner) ComputeLayout(ctx context.Context, n *network.Network, opts Options) (circular.Layout, error) {
	r.applyLogger(&opts)
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, n.NodeCount())
	start := time.Now()

	l, err := ComputeLayout(ctx, n, opts)

	hooks.OnLayoutComplete(ctx, len(l.DegenerateEdges()), time.Since(start), err)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
// Artifacts are keyed by the dataset hash and the render options of each format.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, n *network.Network, l circular.Layout, scene chord.Scene, datasetHash string, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	hooks := observability.Pipeline()
	cacheHooks := observability.Cache()

	// Try to get all formats from cache
	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(datasetHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				r.Logger.Warn("cache read failed", "format", format, "error", err)
				break
			}
			if !hit {
				cacheHooks.OnCacheMiss(ctx, "artifact")
				break
			}
			cacheHooks.OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	// Render all formats
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(ctx, n, l, scene, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(datasetHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "error", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
