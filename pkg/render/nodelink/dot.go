package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/chordviz/pkg/layout/circular"
	"github.com/matzehuels/chordviz/pkg/network"
)

// points per inch, Graphviz's unit for node sizes
const pointsPerInch = 72.0

// Options configures node-link diagram rendering.
type Options struct {
	// Values labels every edge with its value.
	Values bool
	// Detailed includes each node's id and angle in its label.
	// When false, only the display label is shown.
	Detailed bool
	// EdgeOpacity is the alpha of edge strokes, 0 meaning 0.3.
	EdgeOpacity float64
}

// ToDOT converts a laid-out network to Graphviz DOT format. Node positions
// are pinned to the circular layout so Graphviz only routes the edges; the
// result can be rendered with [RenderSVG].
//
// Graphviz's y axis points up, so y coordinates are mirrored within the
// layout frame.
func ToDOT(n *network.Network, l circular.Layout, opts Options) string {
	alpha := opts.EdgeOpacity
	if alpha <= 0 || alpha > 1 {
		alpha = 0.3
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  splines=curved;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if title := n.Title(); title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", title)
	}
	diameter := strconv.FormatFloat(2*l.NodeRadius/pointsPerInch, 'f', 4, 64)
	fmt.Fprintf(&buf, "  node [shape=circle, fixedsize=true, width=%s, style=filled, fillcolor=white, penwidth=3, fontsize=11];\n", diameter)
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, node := range n.Nodes() {
		pos, _ := l.Position(node.ID)
		attrs := []string{
			fmt.Sprintf("label=%q", fmtLabel(node, opts.Detailed)),
			fmt.Sprintf("color=%q", node.Color),
			fmt.Sprintf("pos=\"%.2f,%.2f!\"", pos.X, l.Height-pos.Y),
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", node.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range n.Edges() {
		src, _ := n.Node(e.Source)
		attrs := []string{
			fmt.Sprintf("color=%q", withAlpha(src.Color, alpha)),
			fmt.Sprintf("penwidth=%s", strconv.FormatFloat(e.Width, 'f', -1, 64)),
		}
		if opts.Values {
			attrs = append(attrs, fmt.Sprintf("label=%q", strconv.FormatFloat(e.Value, 'f', 2, 64)))
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.Source, e.Target, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n network.Node, detailed bool) string {
	if !detailed {
		return n.DisplayLabel()
	}
	return fmt.Sprintf("%s\n%s @ %g°", n.DisplayLabel(), n.ID, n.Angle)
}

// withAlpha appends an alpha channel to a #rgb or #rrggbb color.
func withAlpha(color string, alpha float64) string {
	hex := strings.TrimPrefix(color, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color
	}
	return fmt.Sprintf("#%s%02x", hex, int(alpha*255))
}

// RenderSVG renders a DOT graph to SVG using the neato engine of Graphviz,
// which honors pinned positions.
// The root viewBox is rebased to the origin with matching width and height.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
