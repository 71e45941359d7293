package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/chordviz/internal/config"
)

func TestRunConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chordviz", "config.toml")
	c := New(&bytes.Buffer{}, LogInfo)
	c.ConfigPath = path

	if err := c.runConfigInit(false); err != nil {
		t.Fatalf("runConfigInit() error: %v", err)
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cfg.Layout.Radius != config.Default().Layout.Radius {
		t.Errorf("radius = %v, want default", cfg.Layout.Radius)
	}

	if err := os.WriteFile(path, []byte("[layout]\nradius = 80\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := c.runConfigInit(false); err != nil {
		t.Fatalf("second runConfigInit() error: %v", err)
	}
	if cfg, _ := config.LoadFile(path); cfg.Layout.Radius != 80 {
		t.Error("init without --force should keep the existing file")
	}

	if err := c.runConfigInit(true); err != nil {
		t.Fatalf("runConfigInit(force) error: %v", err)
	}
	if cfg, _ := config.LoadFile(path); cfg.Layout.Radius != config.Default().Layout.Radius {
		t.Error("init --force should restore the defaults")
	}
}

func TestConfigShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[render]\nstyle = \"dark\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", path, "config", "show"})
	if err := root.Execute(); err != nil {
		t.Fatalf("config show error: %v", err)
	}
	if !strings.Contains(out.String(), `style = "dark"`) {
		t.Errorf("config show output missing style:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "[layout]") {
		t.Errorf("config show output missing defaults:\n%s", out.String())
	}
}
