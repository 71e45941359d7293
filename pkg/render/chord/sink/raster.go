package sink

import (
	"slices"

	"github.com/matzehuels/chordviz/pkg/render"
	"github.com/matzehuels/chordviz/pkg/render/chord"
)

// Converted formats are rendered by rsvg-convert (librsvg):
// brew install librsvg (macOS), apt install librsvg2-bin (Linux).

// PNGOption configures [RenderPNG].
type PNGOption func(*pngConfig)

type pngConfig struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions forwards options to the SVG pass.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(c *pngConfig) { c.svgOpts = opts }
}

// WithScale sets the raster scale factor. The default is 2.
func WithScale(s float64) PNGOption {
	return func(c *pngConfig) { c.scale = s }
}

// RenderPNG rasterizes the scene. The focus baked into the scene is kept;
// the hover script is dropped.
func RenderPNG(s chord.Scene, opts ...PNGOption) ([]byte, error) {
	c := pngConfig{scale: 2}
	for _, opt := range opts {
		opt(&c)
	}
	return render.ToPNG(staticSVG(s, c.svgOpts), c.scale)
}

// PDFOption configures [RenderPDF].
type PDFOption func(*pdfConfig)

type pdfConfig struct {
	svgOpts []SVGOption
}

// WithPDFSVGOptions forwards options to the SVG pass.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(c *pdfConfig) { c.svgOpts = opts }
}

// RenderPDF converts the scene to a single page PDF without the hover script.
func RenderPDF(s chord.Scene, opts ...PDFOption) ([]byte, error) {
	var c pdfConfig
	for _, opt := range opts {
		opt(&c)
	}
	return render.ToPDF(staticSVG(s, c.svgOpts))
}

func staticSVG(s chord.Scene, opts []SVGOption) []byte {
	return RenderSVG(s, append(slices.Clip(opts), WithoutInteraction())...)
}
