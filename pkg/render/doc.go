// Package render provides visualization rendering for chord networks.
//
// # Overview
//
// This package contains the rendering pipeline that transforms laid-out
// networks into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Chord diagrams (in [chord] subpackage)
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are used by both
// chord and node-link renderers.
//
//	svg := sink.RenderSVG(scene, opts...)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Chord Diagrams
//
// The [chord] subpackage draws the circular layout as a hub-and-spoke
// diagram with Bezier connectors through the center and hover focus.
//
// Key chord subpackages:
//   - [chord/sink]: Output formats (SVG, JSON, PDF, PNG)
//   - [chord/styles]: Visual styles (light, dark)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage exports the same network to Graphviz with node
// positions pinned to the circular layout.
//
//	dot := nodelink.ToDOT(net, layout, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(svg)
//
// [chord]: github.com/matzehuels/chordviz/pkg/render/chord
// [chord/sink]: github.com/matzehuels/chordviz/pkg/render/chord/sink
// [chord/styles]: github.com/matzehuels/chordviz/pkg/render/chord/styles
// [nodelink]: github.com/matzehuels/chordviz/pkg/render/nodelink
package render
