package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	cverrors "github.com/matzehuels/chordviz/pkg/errors"
	"github.com/matzehuels/chordviz/pkg/pipeline"
	"github.com/matzehuels/chordviz/pkg/render"
)

// renderCommand creates the render command for generating diagrams.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "render [dataset]",
		Short: "Render a correlation network as a chord diagram",
		Long: `Render a correlation network as a chord diagram.

The dataset is a .json, .yaml or .toml file with nodes and links, or the name
of a builtin dataset (ev-correlations, ev-correlations-zh). Without an
argument the builtin ev-correlations dataset is rendered.

Formats:
  svg       interactive SVG; hovering a node highlights its connections
  json      the resolved scene (positions, paths, anchors, emphasis)
  dot       Graphviz source with pinned node positions
  nodelink  SVG drawn by Graphviz from the DOT source
  png, pdf  static raster/vector output (requires rsvg-convert)

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			applyConfig(cmd.Flags(), cfg, &opts)
			if cmd.Flags().Changed("format") {
				opts.Formats = parseFormats(formatsStr)
			}
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.Style); err != nil {
				return err
			}
			if err := checkConverter(opts.Formats); err != nil {
				return err
			}
			opts.Dataset = datasetArg(args)
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even if cached")

	// Layout flags
	addLayoutFlags(cmd.Flags(), &opts)

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, nodelink, png, pdf (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", opts.Style, "visual style: light (default), dark")
	cmd.Flags().StringVar(&opts.Focus, "focus", "", "render with this node focused")
	cmd.Flags().StringVar(&opts.Title, "title-text", "", "override the dataset title")
	cmd.Flags().BoolVar(&opts.Arrows, "arrows", opts.Arrows, "draw arrowheads at link targets")
	cmd.Flags().BoolVar(&opts.ShowTitle, "title", opts.ShowTitle, "draw the dataset title")
	cmd.Flags().BoolVar(&opts.Static, "static", false, "omit the hover script from SVG output")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "label dot/nodelink nodes with id and angle")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "PNG scale factor")

	return cmd
}

// runRender executes the pipeline and writes every artifact.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	for _, w := range result.Warnings {
		printWarning("%s", w)
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     opts.Dataset,
		output:    output,
		nodes:     result.Stats.NodeCount,
		edges:     result.Stats.EdgeCount,
		cacheHit:  result.CacheInfo.RenderHit,
	})
}

// checkConverter fails early when a requested format needs rsvg-convert and
// it is not installed, before any work is done.
func checkConverter(formats []string) error {
	if render.Available() {
		return nil
	}
	for _, f := range formats {
		if f == pipeline.FormatPNG || f == pipeline.FormatPDF {
			return cverrors.New(cverrors.ErrCodeUnsupported, "%s output requires %s on PATH", f, render.Converter)
		}
	}
	return nil
}

// artifactWriteParams describes a batch of rendered outputs to write.
type artifactWriteParams struct {
	artifacts    map[string][]byte
	formats      []string
	input        string
	output       string
	nodes, edges int
	cacheHit     bool
}

// writeArtifacts writes each artifact to its output path and prints a summary.
func writeArtifacts(p artifactWriteParams) error {
	paths := outputPaths(p.formats, p.input, p.output)
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return fmt.Errorf("missing %s artifact", format)
		}
		if err := writeFile(paths[format], data); err != nil {
			return err
		}
	}

	printSuccess("Render complete")
	for _, format := range p.formats {
		printFile(paths[format])
	}
	printStats(p.nodes, p.edges, p.cacheHit)
	if path, ok := paths[pipeline.FormatSVG]; ok {
		printNextStep("Open in a browser to explore", path)
	}
	return nil
}

// outputPaths maps each format to its output file. A single format with an
// explicit output uses that path verbatim; otherwise the base path gets the
// format's extension.
func outputPaths(formats []string, input, output string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + pipeline.Extension(f)
	}
	return paths
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input (a builtin dataset
// name is used as is). A known format extension on output is stripped.
func basePath(output, input string) string {
	if output == "" {
		if pipeline.IsBuiltin(input) {
			return input
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if err := cverrors.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	return nil
}
