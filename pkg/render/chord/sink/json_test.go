package sink

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/chordviz/pkg/focus"
	"github.com/matzehuels/chordviz/pkg/network"
)

func TestRenderJSON(t *testing.T) {
	scene := testScene(t, network.BuiltinEVCorrelations, focus.FocusedOn("Know"))

	data, err := RenderJSON(scene, WithJSONStyle("dark"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Width != 320 || out.Height != 320 {
		t.Errorf("size = %vx%v, want 320x320", out.Width, out.Height)
	}
	if out.Center != (jsonPoint{160, 160}) {
		t.Errorf("Center = %+v, want 160,160", out.Center)
	}
	if out.Style != "dark" {
		t.Errorf("Style = %q, want dark", out.Style)
	}
	if out.Focus != "Know" {
		t.Errorf("Focus = %q, want Know", out.Focus)
	}
	if len(out.Nodes) != 6 || len(out.Edges) != 7 {
		t.Fatalf("got %d nodes, %d edges, want 6, 7", len(out.Nodes), len(out.Edges))
	}

	intention := out.Edges[2]
	if !intention.Degenerate || intention.Anchor != (jsonPoint{160, 135}) {
		t.Errorf("Trust -> Intention anchor = %+v degenerate=%v", intention.Anchor, intention.Degenerate)
	}
	if out.Edges[5].Emphasis != "highlighted" || out.Edges[0].Emphasis != "dimmed" {
		t.Errorf("emphasis = %s/%s, want highlighted/dimmed", out.Edges[5].Emphasis, out.Edges[0].Emphasis)
	}
}

func TestRenderJSONIdle(t *testing.T) {
	data, err := RenderJSON(testScene(t, network.BuiltinEVCorrelations, focus.Idle()))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if out.Focus != "" || out.Style != "" {
		t.Errorf("Focus/Style = %q/%q, want empty", out.Focus, out.Style)
	}
	for _, n := range out.Nodes {
		if n.Emphasis != "default" {
			t.Errorf("node %s emphasis = %s, want default", n.ID, n.Emphasis)
		}
	}
}
