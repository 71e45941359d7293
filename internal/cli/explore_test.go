package cli

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/chordviz/pkg/focus"
	"github.com/matzehuels/chordviz/pkg/network"
	"github.com/matzehuels/chordviz/pkg/observability"
)

type recordingFocusHooks struct {
	mu      sync.Mutex
	changes []string
}

func (h *recordingFocusHooks) OnFocusChange(_ context.Context, from, to string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.changes = append(h.changes, orIdle(from)+">"+orIdle(to))
}

func press(t *testing.T, m ExploreModel, keys ...tea.KeyMsg) ExploreModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(ExploreModel)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyReset = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
)

func newTestExplorer(t *testing.T) ExploreModel {
	t.Helper()
	n, err := network.Builtin(network.BuiltinEVCorrelations)
	require.NoError(t, err)
	m := NewExploreModel(context.Background(), n)
	t.Cleanup(m.Close)
	return m
}

func TestExploreStartsIdle(t *testing.T) {
	m := newTestExplorer(t)
	assert.True(t, m.Machine.State().IsIdle())
	assert.Equal(t, 0, m.Cursor)
}

func TestExploreCursorFocuses(t *testing.T) {
	m := newTestExplorer(t)

	m = press(t, m, keyDown)
	assert.Equal(t, 1, m.Cursor)
	assert.Equal(t, focus.FocusedOn("Policy"), m.Machine.State())

	m = press(t, m, keyDown, keyUp)
	assert.Equal(t, focus.FocusedOn("Policy"), m.Machine.State())

	m = press(t, m, keyUp)
	assert.Equal(t, focus.FocusedOn("Trust"), m.Machine.State())

	// At the top the cursor stays put.
	m = press(t, m, keyUp)
	assert.Equal(t, 0, m.Cursor)
}

func TestExploreToggleAndLeave(t *testing.T) {
	m := newTestExplorer(t)

	m = press(t, m, keyEnter)
	assert.Equal(t, focus.FocusedOn("Trust"), m.Machine.State())

	m = press(t, m, keyEnter)
	assert.True(t, m.Machine.State().IsIdle(), "enter on the focused node leaves it")

	m = press(t, m, keyDown, keyEsc)
	assert.True(t, m.Machine.State().IsIdle())

	m = press(t, m, keyDown, keyReset)
	assert.True(t, m.Machine.State().IsIdle())
}

func TestExploreQuit(t *testing.T) {
	m := newTestExplorer(t)
	_, cmd := m.Update(keyQuit)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestExploreReportsFocusChanges(t *testing.T) {
	h := &recordingFocusHooks{}
	observability.SetFocusHooks(h)
	defer observability.Reset()

	m := newTestExplorer(t)
	press(t, m, keyDown, keyDown, keyEsc)

	assert.Equal(t, []string{"idle>Policy", "Policy>Attitude", "Attitude>idle"}, h.changes)
}

func TestExploreView(t *testing.T) {
	m := newTestExplorer(t)
	m = press(t, m, keyEnter)

	view := m.View()
	assert.Contains(t, view, "Construct correlations")
	assert.Contains(t, view, "focused(Trust)")
	assert.Contains(t, view, "highlighted")
	assert.Contains(t, view, "dimmed")
	assert.True(t, strings.Contains(view, "Resp → Attitude"))
}
