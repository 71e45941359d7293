package buildinfo

import (
	"strings"
	"testing"
)

func TestResolveKeepsLdflags(t *testing.T) {
	v, c, d := Version, Commit, Date
	defer func() { Version, Commit, Date = v, c, d }()

	Version, Commit, Date = "v9.9.9", "deadbeef", "2026-01-01"
	Resolve()
	if Version != "v9.9.9" || Commit != "deadbeef" || Date != "2026-01-01" {
		t.Errorf("Resolve overwrote ldflags values: %s %s %s", Version, Commit, Date)
	}
}

func TestTemplate(t *testing.T) {
	v := Version
	defer func() { Version = v }()

	Version = "v0.3.0"
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version v0.3.0\n") {
		t.Errorf("Template() = %q", got)
	}
}
