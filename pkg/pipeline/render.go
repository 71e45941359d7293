package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/chordviz/pkg/layout/circular"
	"github.com/matzehuels/chordviz/pkg/network"
	"github.com/matzehuels/chordviz/pkg/render/chord"
	"github.com/matzehuels/chordviz/pkg/render/chord/sink"
	"github.com/matzehuels/chordviz/pkg/render/chord/styles"
	"github.com/matzehuels/chordviz/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, n *network.Network, l circular.Layout, scene chord.Scene, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	style, err := styles.ByName(opts.Style)
	if err != nil {
		return nil, err
	}

	svgOpts := buildSVGOptions(style, opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(scene, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(scene, sink.WithJSONStyle(style.Name()))
		case FormatDOT:
			data = []byte(nodelink.ToDOT(n, l, nodelinkOptions(scene, opts)))
		case FormatNodelink:
			data, err = nodelink.RenderSVG(ctx, nodelink.ToDOT(n, l, nodelinkOptions(scene, opts)))
		case FormatPNG:
			data, err = sink.RenderPNG(scene, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(scene, sink.WithPDFSVGOptions(svgOpts...))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options.
func buildSVGOptions(style styles.Style, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if opts.Arrows {
		svgOpts = append(svgOpts, sink.WithArrows())
	}
	if opts.ShowTitle {
		svgOpts = append(svgOpts, sink.WithTitle())
	}
	if opts.Static {
		svgOpts = append(svgOpts, sink.WithoutInteraction())
	}
	return svgOpts
}

func nodelinkOptions(scene chord.Scene, opts Options) nodelink.Options {
	return nodelink.Options{Values: true, Detailed: opts.Detailed, EdgeOpacity: scene.Appearance.EdgeOpacity}
}
