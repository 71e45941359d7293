package styles

import (
	"bytes"
	"fmt"
)

const (
	nodeStrokeWidth = 3.0
	nodeFontSize    = 11.0
	valueFontSize   = 10.0
	titleFontSize   = 13.0
	valueCharWidth  = 0.6
	valuePadding    = 3.0
)

// Flat draws white-filled node rings in their own color and translucent
// connectors, the look of the original figure. Colors are configurable so
// one implementation serves both light and dark backgrounds.
type Flat struct {
	StyleName  string
	Background string // Empty for transparent
	NodeFill   string
	Text       string
	LabelFill  string
	LabelText  string
	FontFamily string
}

// Light returns the default style: transparent background, white nodes.
func Light() Flat {
	return Flat{
		StyleName:  "light",
		NodeFill:   "#ffffff",
		Text:       "#334155",
		LabelFill:  "#ffffff",
		LabelText:  "#475569",
		FontFamily: "system-ui, -apple-system, 'Segoe UI', sans-serif",
	}
}

// Dark returns a slate variant for dark pages.
func Dark() Flat {
	return Flat{
		StyleName:  "dark",
		Background: "#0f172a",
		NodeFill:   "#1e293b",
		Text:       "#e2e8f0",
		LabelFill:  "#1e293b",
		LabelText:  "#cbd5e1",
		FontFamily: "system-ui, -apple-system, 'Segoe UI', sans-serif",
	}
}

func (f Flat) Name() string { return f.StyleName }

func (f Flat) RenderDefs(buf *bytes.Buffer, markers []Marker) {
	if len(markers) == 0 {
		return
	}
	buf.WriteString("  <defs>\n")
	for _, m := range markers {
		fmt.Fprintf(buf, `    <marker id="%s" viewBox="0 0 10 10" refX="%.2f" refY="5" markerWidth="8" markerHeight="8" markerUnits="userSpaceOnUse" orient="auto-start-reverse">`,
			EscapeXML(m.ID), 10+m.Offset)
		fmt.Fprintf(buf, `<path d="M0,0 L10,5 L0,10 z" fill="%s"/></marker>`+"\n", EscapeXML(m.Color))
	}
	buf.WriteString("  </defs>\n")
}

func (f Flat) RenderBackground(buf *bytes.Buffer, fr Frame) {
	if f.Background == "" {
		return
	}
	fmt.Fprintf(buf, `  <rect class="background" x="0" y="0" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		fr.Width, fr.Height, f.Background)
}

func (f Flat) RenderTitle(buf *bytes.Buffer, fr Frame) {
	if fr.Title == "" {
		return
	}
	fmt.Fprintf(buf, `  <text class="title" x="%.2f" y="%.2f" text-anchor="middle" font-family="%s" font-size="%.0f" font-weight="600" fill="%s">%s</text>`+"\n",
		fr.Width/2, titleFontSize+4, EscapeXML(f.FontFamily), titleFontSize, f.Text, EscapeXML(fr.Title))
}

func (f Flat) RenderEdge(buf *bytes.Buffer, e Edge) {
	marker := ""
	if e.Marker != "" {
		marker = fmt.Sprintf(` marker-end="url(#%s)"`, EscapeXML(e.Marker))
	}
	fmt.Fprintf(buf, `    <path class="connector" d="%s" fill="none" stroke="%s" stroke-width="%.2f" stroke-opacity="%.2f" stroke-linecap="round"%s/>`+"\n",
		e.Path, EscapeXML(e.Color), e.Width, e.Opacity, marker)
}

func (f Flat) RenderEdgeLabel(buf *bytes.Buffer, e Edge) {
	if e.Label == "" {
		return
	}
	w, h := LabelBox(e.Label)
	fmt.Fprintf(buf, `    <g class="value" data-index="%d" opacity="%.2f">`, e.Index, e.LabelOpacity)
	fmt.Fprintf(buf, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="3" fill="%s" fill-opacity="0.85"/>`,
		e.LabelX-w/2, e.LabelY-h/2, w, h, f.LabelFill)
	fmt.Fprintf(buf, `<text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.0f" fill="%s">%s</text></g>`+"\n",
		e.LabelX, e.LabelY, EscapeXML(f.FontFamily), valueFontSize, f.LabelText, EscapeXML(e.Label))
}

func (f Flat) RenderNode(buf *bytes.Buffer, n Node) {
	fmt.Fprintf(buf, `    <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="%.0f"/>`+"\n",
		n.X, n.Y, n.R, f.NodeFill, EscapeXML(n.Color), nodeStrokeWidth)
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.0f" font-weight="600" fill="%s">%s</text>`+"\n",
		n.X, n.Y, EscapeXML(f.FontFamily), NodeFontSize(n), f.Text, EscapeXML(n.Label))
}
