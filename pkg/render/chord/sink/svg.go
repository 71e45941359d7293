package sink

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/chordviz/pkg/render/chord"
	"github.com/matzehuels/chordviz/pkg/render/chord/styles"
)

// documentNamespace scopes generated document ids.
var documentNamespace = uuid.MustParse("6b0f5c1e-8a1d-4e59-9a43-2f0f3c7de1a4")

const focusCSS = `
    .node { cursor: pointer; transition: opacity 0.2s ease; }
    .connector { transition: stroke-opacity 0.2s ease, stroke-width 0.2s ease; }
    .value { pointer-events: none; transition: opacity 0.2s ease; }`

// focusJS mirrors the focus state machine: enter focuses a node, leave only
// clears the focus if it names the focused node.
const focusJS = `
    (function() {
      const root = document.getElementById('{{id}}');
      const a = {edge: {{edge}}, on: {{on}}, off: {{off}}, boost: {{boost}}, node: {{node}}, label: {{label}}, scale: {{scale}}};
      let current = root.dataset.focus || '';
      const edges = root.querySelectorAll('.edge');
      const values = {};
      root.querySelectorAll('.value').forEach(v => { values[v.dataset.index] = v; });
      const nodes = root.querySelectorAll('.node');
      function apply() {
        edges.forEach(e => {
          const w = parseFloat(e.dataset.width);
          const on = e.dataset.source === current || e.dataset.target === current;
          let op = a.edge, sw = w, lo = 1;
          if (current) { op = on ? a.on : a.off; sw = on ? w + a.boost : w; lo = on ? 1 : a.label; }
          const p = e.querySelector('.connector');
          p.setAttribute('stroke-opacity', op);
          p.setAttribute('stroke-width', sw);
          const v = values[e.dataset.index];
          if (v) v.setAttribute('opacity', lo);
        });
        nodes.forEach(n => {
          const id = n.dataset.node;
          const on = id === current || (n.dataset.neighbors || '').split(' ').includes(current);
          n.setAttribute('opacity', !current || on ? 1 : a.node);
          const s = id === current ? a.scale : 1, x = n.dataset.x, y = n.dataset.y;
          n.setAttribute('transform', 'translate(' + x + ' ' + y + ') scale(' + s + ') translate(' + (-x) + ' ' + (-y) + ')');
        });
      }
      nodes.forEach(n => {
        n.addEventListener('mouseenter', () => { current = n.dataset.node; apply(); });
        n.addEventListener('mouseleave', () => { if (current === n.dataset.node) { current = ''; apply(); } });
      });
    })();`

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style       styles.Style
	interactive bool
	arrows      bool
	labels      bool
	title       bool
	docID       string
}

// WithStyle sets the visual style. The default is [styles.Light].
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithArrows adds arrowheads at the target end of every connector.
func WithArrows() SVGOption { return func(r *svgRenderer) { r.arrows = true } }

// WithoutInteraction omits the hover script, for static conversions.
func WithoutInteraction() SVGOption { return func(r *svgRenderer) { r.interactive = false } }

// WithoutLabels omits edge value labels.
func WithoutLabels() SVGOption { return func(r *svgRenderer) { r.labels = false } }

// WithTitle draws the scene title at the top of the frame.
func WithTitle() SVGOption { return func(r *svgRenderer) { r.title = true } }

// WithDocumentID sets the id of the root element. The default is derived
// from the scene by [DocumentID].
func WithDocumentID(id string) SVGOption { return func(r *svgRenderer) { r.docID = id } }

// RenderSVG draws the scene. Static attributes reflect the scene's focus
// state; unless disabled, an embedded script re-applies the same emphasis
// rules on hover.
func RenderSVG(s chord.Scene, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Light(), interactive: true, labels: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.docID == "" {
		r.docID = DocumentID(s)
	}

	markers, markerFor := buildMarkers(s, r)

	var buf bytes.Buffer
	focusAttr := ""
	if id, ok := s.Focus.Node(); ok {
		focusAttr = fmt.Sprintf(` data-focus="%s"`, styles.EscapeXML(id))
	}
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" id="%s" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f"%s>`+"\n",
		styles.EscapeXML(r.docID), s.Width, s.Height, s.Width, s.Height, focusAttr)

	frame := styles.Frame{Width: s.Width, Height: s.Height, Title: s.Title}
	r.style.RenderDefs(&buf, markers)
	r.style.RenderBackground(&buf, frame)
	if r.title {
		r.style.RenderTitle(&buf, frame)
	}

	renderEdges(&buf, s, r, markerFor)
	renderNodes(&buf, s, r)

	if r.interactive {
		renderFocusInteraction(&buf, r.docID, s.Appearance)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// DocumentID derives a stable element id from the scene's nodes and edges,
// so several diagrams can share one HTML page.
func DocumentID(s chord.Scene) string {
	var b strings.Builder
	b.WriteString(s.Title)
	for _, n := range s.Nodes {
		fmt.Fprintf(&b, "|n:%s@%g#%s", n.ID, n.Angle, n.Color)
	}
	for _, e := range s.Edges {
		fmt.Fprintf(&b, "|e:%s>%s=%g/%g#%s", e.Source, e.Target, e.Value, e.Width, e.Color)
	}
	return "chord-" + uuid.NewSHA1(documentNamespace, []byte(b.String())).String()
}

func buildMarkers(s chord.Scene, r svgRenderer) ([]styles.Marker, map[string]string) {
	if !r.arrows {
		return nil, nil
	}
	var markers []styles.Marker
	byColor := make(map[string]string)
	for _, e := range s.Edges {
		if _, ok := byColor[e.Color]; ok {
			continue
		}
		id := fmt.Sprintf("%s-arrow-%d", r.docID, len(markers))
		byColor[e.Color] = id
		markers = append(markers, styles.Marker{ID: id, Color: e.Color, Offset: s.NodeRadius})
	}
	return markers, byColor
}

func renderEdges(buf *bytes.Buffer, s chord.Scene, r svgRenderer, markerFor map[string]string) {
	views := make([]styles.Edge, len(s.Edges))
	for i, e := range s.Edges {
		views[i] = styles.Edge{
			Index:        e.Index,
			Source:       e.Source,
			Target:       e.Target,
			Path:         e.Path.String(),
			Color:        e.Color,
			Width:        e.StrokeWidth,
			Opacity:      e.Opacity,
			Marker:       markerFor[e.Color],
			LabelX:       e.Anchor.X,
			LabelY:       e.Anchor.Y,
			LabelOpacity: e.LabelOpacity,
		}
		if r.labels {
			views[i].Label = e.Label
		}
	}

	// Connectors first so every value label is drawn above every curve.
	buf.WriteString("  <g class=\"edges\">\n")
	for i, e := range s.Edges {
		fmt.Fprintf(buf, `   <g class="edge %s" data-index="%d" data-source="%s" data-target="%s" data-width="%s">`+"\n",
			e.Emphasis, e.Index, styles.EscapeXML(e.Source), styles.EscapeXML(e.Target), strconv.FormatFloat(e.Width, 'f', -1, 64))
		r.style.RenderEdge(buf, views[i])
		buf.WriteString("   </g>\n")
	}
	buf.WriteString("  </g>\n")

	if !r.labels {
		return
	}
	buf.WriteString("  <g class=\"values\">\n")
	for i := range s.Edges {
		r.style.RenderEdgeLabel(buf, views[i])
	}
	buf.WriteString("  </g>\n")
}

func renderNodes(buf *bytes.Buffer, s chord.Scene, r svgRenderer) {
	buf.WriteString("  <g class=\"nodes\">\n")
	for _, n := range s.Nodes {
		x, y := n.Position.X, n.Position.Y
		transform := ""
		if n.Scale != 1 {
			transform = fmt.Sprintf(` transform="translate(%.2f %.2f) scale(%g) translate(%.2f %.2f)"`, x, y, n.Scale, -x, -y)
		}
		fmt.Fprintf(buf, `   <g class="node %s" id="%s-node-%s" data-node="%s" data-neighbors="%s" data-x="%.2f" data-y="%.2f" opacity="%.2f"%s>`+"\n",
			n.Emphasis, styles.EscapeXML(r.docID), styles.EscapeXML(n.ID), styles.EscapeXML(n.ID),
			styles.EscapeXML(strings.Join(n.Neighbors, " ")), x, y, n.Opacity, transform)
		r.style.RenderNode(buf, styles.Node{ID: n.ID, Label: n.Label, Color: n.Color, X: x, Y: y, R: s.NodeRadius})
		buf.WriteString("   </g>\n")
	}
	buf.WriteString("  </g>\n")
}

func renderFocusInteraction(buf *bytes.Buffer, docID string, a chord.Appearance) {
	num := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	js := strings.NewReplacer(
		"{{id}}", docID,
		"{{edge}}", num(a.EdgeOpacity),
		"{{on}}", num(a.HighlightOpacity),
		"{{off}}", num(a.DimOpacity),
		"{{boost}}", num(a.WidthBoost),
		"{{node}}", num(a.NodeDimOpacity),
		"{{label}}", num(a.LabelDimOpacity),
		"{{scale}}", num(a.FocusScale),
	).Replace(focusJS)
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", focusCSS)
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", js)
}
