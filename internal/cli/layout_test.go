package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/chordviz/pkg/focus"
	"github.com/matzehuels/chordviz/pkg/layout/circular"
	"github.com/matzehuels/chordviz/pkg/network"
)

func TestFormatCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{160, "160"},
		{263.9230484541326, "263.92"},
		{-0.001, "0"},
		{99.999, "100"},
	}
	for _, tt := range tests {
		if got := formatCoord(tt.in); got != tt.want {
			t.Errorf("formatCoord(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLayoutTables(t *testing.T) {
	n, _ := network.Builtin(network.BuiltinEVCorrelations)
	l, err := circular.Compute(n, circular.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	nodes := nodeTable(n, l)
	for _, want := range []string{"Trust", "Responsibility", "40", "280"} {
		if !strings.Contains(nodes, want) {
			t.Errorf("node table missing %q:\n%s", want, nodes)
		}
	}

	edges := edgeTable(n, l)
	for _, want := range []string{"Policy → Trust", "0.54", "160.00,135.00", "fallback", "M263.92,100.00 Q160.00,160.00 160.00,40.00"} {
		if !strings.Contains(edges, want) {
			t.Errorf("edge table missing %q:\n%s", want, edges)
		}
	}
}

func TestFocusTables(t *testing.T) {
	n, _ := network.Builtin(network.BuiltinEVCorrelations)
	m := focus.NewMachine(n)
	if err := m.Enter("Resp"); err != nil {
		t.Fatal(err)
	}

	nodes := focusNodeTable(n, m)
	if !strings.Contains(nodes, "highlighted") || !strings.Contains(nodes, "dimmed") {
		t.Errorf("node table should mix emphasis levels:\n%s", nodes)
	}

	edges := focusEdgeTable(n, m)
	if strings.Count(edges, "highlighted") != 1 {
		t.Errorf("Resp touches exactly one link:\n%s", edges)
	}
}
