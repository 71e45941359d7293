package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/chordviz/pkg/layout/circular"
	"github.com/matzehuels/chordviz/pkg/network"
)

func builtinDOT(t *testing.T, opts Options) string {
	t.Helper()
	n, err := network.Builtin(network.BuiltinEVCorrelations)
	if err != nil {
		t.Fatalf("Builtin() error: %v", err)
	}
	l, err := circular.Compute(n, circular.DefaultOptions())
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	return ToDOT(n, l, opts)
}

func TestToDOT(t *testing.T) {
	dot := builtinDOT(t, Options{})

	for _, want := range []string{
		"graph G {",
		"layout=neato;",
		`"Trust" [label="Trust", color="#f87171", pos="160.00,280.00!"];`,
		`"Intention" [label="Intention", color="#34d399", pos="160.00,40.00!"];`,
		`"Policy" -- "Trust" [color="#818cf84c", penwidth=6];`,
		"width=0.6667",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %s", want)
		}
	}
	if strings.Contains(dot, "->") {
		t.Error("ToDOT() should emit an undirected graph")
	}
	if got := strings.Count(dot, " -- "); got != 7 {
		t.Errorf("edge count = %d, want 7", got)
	}
}

func TestToDOTOptions(t *testing.T) {
	dot := builtinDOT(t, Options{Values: true, Detailed: true, EdgeOpacity: 1})

	if !strings.Contains(dot, `label="0.54"`) {
		t.Error("Values should label edges")
	}
	if !strings.Contains(dot, `color="#818cf8ff"`) {
		t.Error("EdgeOpacity 1 should produce an opaque alpha")
	}
	if !strings.Contains(dot, `Knowledge\nKnow @ 240°`) {
		t.Error("Detailed should include id and angle")
	}
}

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		color string
		alpha float64
		want  string
	}{
		{"#f87171", 0.3, "#f871714c"},
		{"#f87171", 0.5, "#f871717f"},
		{"#abc", 1, "#aabbccff"},
		{"#f87171", 0, "#f8717100"},
		{"red", 0.5, "red"},
	}
	for _, tt := range tests {
		if got := withAlpha(tt.color, tt.alpha); got != tt.want {
			t.Errorf("withAlpha(%q, %v) = %q, want %q", tt.color, tt.alpha, got, tt.want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}

	noBox := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(noBox)) != string(noBox) {
		t.Error("normalizeViewBox() should leave SVG without viewBox unchanged")
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering is slow")
	}
	svg, err := RenderSVG(context.Background(), builtinDOT(t, Options{Values: true}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(svg)), "<?xml") && !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() did not produce SVG")
	}
}
