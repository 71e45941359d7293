// Package sink provides output format renderers for chord scenes.
//
// # Overview
//
// A "sink" transforms a resolved [chord.Scene] into a final output format:
//
//   - SVG: vector graphics with an embedded hover script
//   - JSON: scene data export for external tools
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster image output (requires rsvg-convert)
//
// # SVG Output
//
// [RenderSVG] writes connectors first, then value labels on background
// rects at their anchors, then nodes, so labels never hide under curves and
// nodes cover connector ends. The static attributes reflect the scene's
// focus state. The embedded script applies the same emphasis rules on
// hover: entering a node focuses it, leaving the focused node clears the
// focus, and a stale leave from a previously hovered node is ignored.
//
//	svg := sink.RenderSVG(scene,
//	    sink.WithStyle(styles.Dark()),
//	    sink.WithArrows(),
//	)
//
// Every element id is prefixed with a document id derived from the scene
// ([DocumentID]), so several diagrams can be inlined into one page.
//
// # SVG Options
//
//   - [WithStyle]: visual style ([styles.Light] or [styles.Dark])
//   - [WithArrows]: arrowheads at target ends
//   - [WithTitle]: draw the network title
//   - [WithoutLabels]: omit value labels
//   - [WithoutInteraction]: omit the hover script
//   - [WithDocumentID]: override the root element id
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] render the scene as SVG without the script and
// convert it via [render.ToPDF] and [render.ToPNG].
//
// [chord.Scene]: github.com/matzehuels/chordviz/pkg/render/chord.Scene
// [styles.Light]: github.com/matzehuels/chordviz/pkg/render/chord/styles.Light
// [styles.Dark]: github.com/matzehuels/chordviz/pkg/render/chord/styles.Dark
// [render.ToPDF]: github.com/matzehuels/chordviz/pkg/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/chordviz/pkg/render.ToPNG
package sink
