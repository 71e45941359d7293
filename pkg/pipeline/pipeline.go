// Package pipeline provides the load -> layout -> render pipeline for chordviz.
//
// This package implements the complete pipeline used by every CLI command
// that produces output. By centralizing this logic, rendering behaves the same
// whether it is driven by `chordviz render`, `chordviz layout` or a test.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read a dataset file or a builtin dataset and validate it
//  2. Layout: place nodes on the circle and derive connectors and anchors
//  3. Render: resolve the focus state into a scene and write each format
//     (SVG, JSON, DOT, Graphviz SVG, PNG, PDF)
//
// Rendered artifacts are cached by dataset content and options, so repeated
// renders of an unchanged dataset are served from the cache.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Dataset: "ev-correlations",
//	    Formats: []string{"svg", "json"},
//	    Focus:   "Trust",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chordviz/pkg/cache"
	cverrors "github.com/matzehuels/chordviz/pkg/errors"
	"github.com/matzehuels/chordviz/pkg/layout/circular"
	"github.com/matzehuels/chordviz/pkg/network"
	"github.com/matzehuels/chordviz/pkg/render/chord"
	"github.com/matzehuels/chordviz/pkg/render/chord/styles"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and tests
// =============================================================================

const (
	// DefaultDataset is rendered when no dataset is given.
	DefaultDataset = network.BuiltinEVCorrelations

	// DefaultStyle is the default visual style.
	DefaultStyle = "light"

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG      = "svg"
	FormatJSON     = "json"
	FormatDOT      = "dot"
	FormatNodelink = "nodelink" // Graphviz-rendered SVG
	FormatPNG      = "png"
	FormatPDF      = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:      true,
	FormatJSON:     true,
	FormatDOT:      true,
	FormatNodelink: true,
	FormatPNG:      true,
	FormatPDF:      true,
}

// Extension returns the file extension used when writing format.
func Extension(format string) string {
	if format == FormatNodelink {
		return ".nodelink.svg"
	}
	return "." + format
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Load options
	Dataset string `json:"dataset"`         // Builtin dataset name or file path
	Title   string `json:"title,omitempty"` // Overrides the dataset title

	// Layout options
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
	Radius      float64 `json:"radius,omitempty"`
	LabelOffset float64 `json:"label_offset,omitempty"`
	NodeRadius  float64 `json:"node_radius,omitempty"`

	// Render options
	Formats   []string `json:"formats,omitempty"`
	Style     string   `json:"style,omitempty"`
	Focus     string   `json:"focus,omitempty"`      // Node to render focused; empty for idle
	Arrows    bool     `json:"arrows,omitempty"`     // Arrowheads at target ends
	ShowTitle bool     `json:"show_title,omitempty"` // Draw the dataset title
	Static    bool     `json:"static,omitempty"`     // Omit the hover script
	Detailed  bool     `json:"detailed,omitempty"`   // DOT node labels carry id and angle
	Scale     float64  `json:"scale,omitempty"`      // PNG scale factor
	Refresh   bool     `json:"refresh,omitempty"`    // Bypass cached artifacts

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Network is the loaded dataset.
	Network *network.Network

	// DatasetHash is the content hash of the dataset.
	DatasetHash string

	// Layout holds node positions, connectors and anchors.
	Layout circular.Layout

	// Scene is the layout resolved under the requested focus state.
	Scene chord.Scene

	// Warnings are non-fatal dataset problems found by [network.Lint].
	Warnings []network.Warning

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	Degenerate int // Edges whose label anchor used the fallback direction
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return cverrors.New(cverrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, json, dot, nodelink, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is registered.
func ValidateStyle(style string) error {
	_, err := styles.ByName(style)
	return err
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Dataset == "" {
		o.Dataset = DefaultDataset
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	lo := o.LayoutOptions()
	lo.SetDefaults()
	o.Width, o.Height, o.Radius = lo.Width, lo.Height, lo.Radius
	o.LabelOffset, o.NodeRadius = lo.LabelOffset, lo.NodeRadius
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return o.LayoutOptions().Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) || o.Scale <= 0 {
		return cverrors.New(cverrors.ErrCodeInvalidInput, "scale must be a positive number, got %v", o.Scale)
	}
	return ValidateStyle(o.Style)
}

// LayoutOptions returns the circular layout options. Center is left zero so
// the layout centers the circle in the frame.
func (o *Options) LayoutOptions() circular.Options {
	return circular.Options{
		Width:       o.Width,
		Height:      o.Height,
		Radius:      o.Radius,
		LabelOffset: o.LabelOffset,
		NodeRadius:  o.NodeRadius,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:      format,
		Style:       o.Style,
		Focus:       o.Focus,
		Width:       o.Width,
		Height:      o.Height,
		Radius:      o.Radius,
		LabelOffset: o.LabelOffset,
		NodeRadius:  o.NodeRadius,
		Arrows:      o.Arrows,
		Title:       o.ShowTitle,
		Static:      o.Static,
	}
	switch format {
	case FormatPNG:
		k.Scale = o.Scale
	case FormatDOT, FormatNodelink:
		k.Detailed = o.Detailed
	}
	return k
}
