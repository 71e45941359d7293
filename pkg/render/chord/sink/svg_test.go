package sink

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/chordviz/pkg/focus"
	"github.com/matzehuels/chordviz/pkg/layout/circular"
	"github.com/matzehuels/chordviz/pkg/network"
	"github.com/matzehuels/chordviz/pkg/render/chord"
	"github.com/matzehuels/chordviz/pkg/render/chord/styles"
)

func testScene(t *testing.T, name string, s focus.State) chord.Scene {
	t.Helper()
	n, err := network.Builtin(name)
	if err != nil {
		t.Fatalf("Builtin() error: %v", err)
	}
	l, err := circular.Compute(n, circular.DefaultOptions())
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	scene, err := chord.Build(n, l, s)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return scene
}

func TestRenderSVGWellFormed(t *testing.T) {
	for _, name := range network.BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			svg := RenderSVG(testScene(t, name, focus.FocusedOn("Trust")), WithArrows(), WithTitle())
			d := xml.NewDecoder(strings.NewReader(string(svg)))
			for {
				_, err := d.Token()
				if err == io.EOF {
					break
				}
				if err != nil {
					t.Fatalf("invalid XML: %v", err)
				}
			}
		})
	}
}

func TestRenderSVGStructure(t *testing.T) {
	svg := string(RenderSVG(testScene(t, network.BuiltinEVCorrelations, focus.Idle())))

	if !strings.HasPrefix(svg, "<svg") {
		t.Error("SVG should start with <svg")
	}
	if !strings.Contains(svg, `viewBox="0 0 320.0 320.0"`) {
		t.Error("SVG should use the 320x320 frame")
	}
	if got := strings.Count(svg, `class="connector"`); got != 7 {
		t.Errorf("connector count = %d, want 7", got)
	}
	if got := strings.Count(svg, "<circle"); got != 6 {
		t.Errorf("circle count = %d, want 6", got)
	}
	if !strings.Contains(svg, `d="M160.00,40.00 Q160.00,160.00 160.00,280.00"`) {
		t.Error("missing Trust -> Intention connector")
	}
	if !strings.Contains(svg, `x="160.00" y="135.00"`) {
		t.Error("missing degenerate label at 160,135")
	}
	if !strings.Contains(svg, "<script") || !strings.Contains(svg, "mouseleave") {
		t.Error("interactive SVG should embed the hover script")
	}
	if strings.Contains(svg, "data-focus") {
		t.Error("idle scene should not carry data-focus")
	}
	if strings.Contains(svg, "<marker") {
		t.Error("markers should be off by default")
	}

	// Connectors precede labels, labels precede nodes.
	conn := strings.LastIndex(svg, `class="connector"`)
	val := strings.Index(svg, `class="value"`)
	node := strings.Index(svg, `class="node `)
	if !(conn < val && val < node) {
		t.Errorf("draw order connector=%d value=%d node=%d", conn, val, node)
	}
}

func TestRenderSVGFocused(t *testing.T) {
	svg := string(RenderSVG(testScene(t, network.BuiltinEVCorrelations, focus.FocusedOn("Trust"))))

	if !strings.Contains(svg, `data-focus="Trust"`) {
		t.Error("focused scene should carry data-focus")
	}
	if got := strings.Count(svg, `class="edge highlighted"`); got != 4 {
		t.Errorf("highlighted edges = %d, want 4", got)
	}
	if got := strings.Count(svg, `class="edge dimmed"`); got != 3 {
		t.Errorf("dimmed edges = %d, want 3", got)
	}
	if !strings.Contains(svg, "scale(1.1)") {
		t.Error("focused node should be scaled")
	}
	if !strings.Contains(svg, `stroke-width="8.00" stroke-opacity="0.85"`) {
		t.Error("Policy -> Trust should be widened and opaque")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	scene := testScene(t, network.BuiltinEVCorrelations, focus.Idle())

	tests := []struct {
		name    string
		opts    []SVGOption
		want    []string
		notWant []string
	}{
		{"arrows", []SVGOption{WithArrows()}, []string{"<marker", "marker-end="}, nil},
		{"static", []SVGOption{WithoutInteraction()}, nil, []string{"<script"}},
		{"no labels", []SVGOption{WithoutLabels()}, nil, []string{`class="value"`}},
		{"dark", []SVGOption{WithStyle(styles.Dark())}, []string{`fill="#0f172a"`}, nil},
		{"title", []SVGOption{WithTitle()}, []string{"Construct correlations"}, nil},
		{"document id", []SVGOption{WithDocumentID("fig1")}, []string{`id="fig1"`, "getElementById('fig1')"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := string(RenderSVG(scene, tt.opts...))
			for _, w := range tt.want {
				if !strings.Contains(svg, w) {
					t.Errorf("missing %q", w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(svg, w) {
					t.Errorf("unexpected %q", w)
				}
			}
		})
	}
}

func TestRenderSVGMarkersPerColor(t *testing.T) {
	svg := string(RenderSVG(testScene(t, network.BuiltinEVCorrelations, focus.Idle()), WithArrows()))
	// Sources are Policy, Trust, Attitude, Know and Resp.
	if got := strings.Count(svg, "<marker"); got != 5 {
		t.Errorf("marker count = %d, want 5", got)
	}
}

func TestDocumentID(t *testing.T) {
	en := testScene(t, network.BuiltinEVCorrelations, focus.Idle())
	zh := testScene(t, network.BuiltinEVCorrelationsZH, focus.Idle())

	if DocumentID(en) != DocumentID(testScene(t, network.BuiltinEVCorrelations, focus.FocusedOn("Know"))) {
		t.Error("DocumentID should not depend on focus")
	}
	if DocumentID(en) == DocumentID(zh) {
		t.Error("different titles should produce different ids")
	}
	if !strings.HasPrefix(DocumentID(en), "chord-") {
		t.Errorf("DocumentID() = %q, want chord- prefix", DocumentID(en))
	}

	recolored := testScene(t, network.BuiltinEVCorrelations, focus.Idle())
	recolored.Nodes = append([]chord.NodeView(nil), recolored.Nodes...)
	recolored.Nodes[0].Color = "#000000"
	if DocumentID(en) == DocumentID(recolored) {
		t.Error("node colors should change the id")
	}

	widened := testScene(t, network.BuiltinEVCorrelations, focus.Idle())
	widened.Edges = append([]chord.EdgeView(nil), widened.Edges...)
	widened.Edges[0].Width += 1
	if DocumentID(en) == DocumentID(widened) {
		t.Error("edge widths should change the id")
	}
}

func TestRenderSVGValueLabelsPairWithEdges(t *testing.T) {
	scene := testScene(t, network.BuiltinEVCorrelations, focus.FocusedOn("Trust"))
	svg := string(RenderSVG(scene))

	for _, e := range scene.Edges {
		edge := fmt.Sprintf(`class="edge %s" data-index="%d"`, e.Emphasis, e.Index)
		if !strings.Contains(svg, edge) {
			t.Errorf("missing edge group %q", edge)
		}
		value := fmt.Sprintf(`class="value" data-index="%d" opacity="%.2f"`, e.Index, e.LabelOpacity)
		if !strings.Contains(svg, value) {
			t.Errorf("missing value label %q", value)
		}
	}
	if got := strings.Count(svg, `class="value" data-index=`); got != len(scene.Edges) {
		t.Errorf("value labels = %d, want %d", got, len(scene.Edges))
	}
	if !strings.Contains(svg, "values[e.dataset.index]") {
		t.Error("script should look labels up by edge index")
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	scene := testScene(t, network.BuiltinEVCorrelations, focus.FocusedOn("Policy"))
	a := RenderSVG(scene, WithArrows())
	b := RenderSVG(scene, WithArrows())
	if string(a) != string(b) {
		t.Error("RenderSVG should be deterministic")
	}
}
