package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/chordviz/internal/config"
	"github.com/matzehuels/chordviz/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,json,dot", []string{"svg", "json", "dot"}},
		{"pdf only", "pdf", []string{"pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "data/net.yaml", "data/net"},
		{"", "ev-correlations", "ev-correlations"},
		{"out/diagram.svg", "net.json", "out/diagram"},
		{"out/diagram", "net.json", "out/diagram"},
		{"out/diagram.v2", "net.json", "out/diagram.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	single := outputPaths([]string{"svg"}, "net.json", "figure.svg")
	if single["svg"] != "figure.svg" {
		t.Errorf("single format should use output verbatim, got %q", single["svg"])
	}

	multi := outputPaths([]string{"svg", "json", "nodelink"}, "net.json", "")
	want := map[string]string{"svg": "net.svg", "json": "net.json", "nodelink": "net.nodelink.svg"}
	for f, p := range want {
		if multi[f] != p {
			t.Errorf("outputPaths[%s] = %q, want %q", f, multi[f], p)
		}
	}
}

func TestApplyConfig(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	cmd := c.renderCommand()
	if err := cmd.ParseFlags([]string{"--radius", "80", "--style", "light"}); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Layout.Radius = 100
	cfg.Layout.LabelOffset = 40
	cfg.Render.Style = "dark"
	cfg.Render.Formats = []string{"json"}

	var opts pipeline.Options
	opts.Radius = 80
	opts.Style = "light"
	applyConfig(cmd.Flags(), cfg, &opts)

	if opts.Radius != 80 {
		t.Errorf("explicit --radius should win, got %v", opts.Radius)
	}
	if opts.Style != "light" {
		t.Errorf("explicit --style should win, got %q", opts.Style)
	}
	if opts.LabelOffset != 40 {
		t.Errorf("unset label offset should come from config, got %v", opts.LabelOffset)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != "json" {
		t.Errorf("unset formats should come from config, got %v", opts.Formats)
	}
}

func TestRunRender(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	c.cfg = config.Default()
	c.cfg.Cache.Backend = config.BackendNone

	dir := t.TempDir()
	opts := pipeline.Options{
		Dataset: pipeline.DefaultDataset,
		Formats: []string{pipeline.FormatSVG, pipeline.FormatJSON, pipeline.FormatDOT},
		Focus:   "Know",
	}
	if err := c.runRender(context.Background(), opts, filepath.Join(dir, "fig"), false); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	for _, name := range []string{"fig.svg", "fig.json", "fig.dot"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing %s: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	svg, _ := os.ReadFile(filepath.Join(dir, "fig.svg"))
	if !strings.Contains(string(svg), `data-focus="Know"`) {
		t.Error("SVG should be rendered with Know focused")
	}
}

func TestRunRenderUnknownFocus(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	c.cfg = config.Default()
	c.cfg.Cache.Backend = config.BackendNone

	opts := pipeline.Options{Focus: "Nobody", Formats: []string{pipeline.FormatSVG}}
	if err := c.runRender(context.Background(), opts, filepath.Join(t.TempDir(), "x.svg"), true); err == nil {
		t.Error("expected error for unknown focus node")
	}
}
