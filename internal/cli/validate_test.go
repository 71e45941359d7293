package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/chordviz/pkg/network"
)

func writeDataset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunValidate(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	ctx := context.Background()

	valid := writeDataset(t, "ok.yaml", "nodes:\n  - {id: a, color: '#123456', angle: 0}\n  - {id: b, color: '#654321', angle: 180}\nlinks:\n  - {source: a, target: b, value: 0.4, width: 3}\n")
	broken := writeDataset(t, "bad.json", `{"nodes":[{"id":"a","color":"#123456","angle":0}],"edges":[{"source":"a","target":"ghost","value":1,"width":1}]}`)

	if err := c.runValidate(ctx, []string{valid, network.BuiltinEVCorrelations}, ""); err != nil {
		t.Errorf("valid datasets: %v", err)
	}

	err := c.runValidate(ctx, []string{valid, broken}, "")
	if !errors.Is(err, errInvalidDatasets) {
		t.Errorf("error = %v, want errInvalidDatasets", err)
	}
}

func TestRunValidateConvert(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)

	out := filepath.Join(t.TempDir(), "converted.toml")
	if err := c.runValidate(context.Background(), []string{network.BuiltinEVCorrelations}, out); err != nil {
		t.Fatalf("runValidate: %v", err)
	}

	n, err := network.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile(%s): %v", out, err)
	}
	if n.NodeCount() != 6 || n.EdgeCount() != 7 {
		t.Errorf("converted dataset has %d nodes, %d edges", n.NodeCount(), n.EdgeCount())
	}
}

func TestValidateCommandOutputNeedsOneDataset(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	cmd := c.validateCommand()
	cmd.SetArgs([]string{"a.json", "b.json", "-o", "out.json"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for --output with several datasets")
	}
}

func TestProblemLines(t *testing.T) {
	_, err := network.New(
		[]network.Node{{ID: "a", Color: "#123456"}, {ID: "a", Color: "#123456"}},
		[]network.Edge{{Source: "a", Target: "ghost", Width: 1}},
	)
	if err == nil {
		t.Fatal("expected error")
	}
	lines := problemLines(err)
	want := []string{
		`node 1: duplicate id "a"`,
		`edge 0: unknown target node "ghost"`,
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}

	single := problemLines(errors.New("plain"))
	if len(single) != 1 || single[0] != "plain" {
		t.Errorf("plain error lines = %q", single)
	}
}
