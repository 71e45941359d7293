package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chordviz/pkg/focus"
	"github.com/matzehuels/chordviz/pkg/network"
	"github.com/matzehuels/chordviz/pkg/observability"
	"github.com/matzehuels/chordviz/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// exploreCommand creates the explore command, an interactive focus browser.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore [dataset]",
		Short: "Step through focus states interactively",
		Long: `Step through focus states interactively.

Moving the cursor onto a node focuses it, the way hovering does in the SVG
output. The link list shows which links the focused node highlights.

Keys: ↑/↓ move focus, enter toggle focus, esc leave, r reset, q quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExplore(cmd.Context(), datasetArg(args))
		},
	}
}

// runExplore loads the dataset and runs the explorer until the user quits.
func (c *CLI) runExplore(ctx context.Context, dataset string) error {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	n, err := runner.Load(ctx, pipeline.Options{Dataset: dataset, Logger: c.Logger})
	if err != nil {
		return err
	}

	model := NewExploreModel(ctx, n)
	defer model.Close()

	if _, err := tea.NewProgram(model, tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("explore: %w", err)
	}
	printInfo("Final state: %s", model.Machine.State())
	return nil
}

// =============================================================================
// ExploreModel - Interactive focus browser
// =============================================================================

// ExploreModel is the bubbletea model for the focus explorer. The focus
// machine is shared by pointer so the model can be copied freely.
type ExploreModel struct {
	Net     *network.Network
	Machine *focus.Machine
	Nodes   []network.Node
	Cursor  int

	unsubscribe func()
}

// NewExploreModel creates an explorer over n in the idle state. Focus
// changes are reported to the registered focus hooks.
func NewExploreModel(ctx context.Context, n *network.Network) ExploreModel {
	m := focus.NewMachine(n)
	prev := m.State()
	unsubscribe := m.Subscribe(func(s focus.State) {
		from, _ := prev.Node()
		to, _ := s.Node()
		observability.Focus().OnFocusChange(ctx, from, to)
		prev = s
	})
	return ExploreModel{
		Net:         n,
		Machine:     m,
		Nodes:       n.Nodes(),
		unsubscribe: unsubscribe,
	}
}

// Close detaches the model from its focus machine.
func (m ExploreModel) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	if len(m.Nodes) == 0 {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
			m.focusCursor()
		}
	case "down", "j":
		if m.Cursor < len(m.Nodes)-1 {
			m.Cursor++
			m.focusCursor()
		}
	case "enter", " ", "space":
		id := m.Nodes[m.Cursor].ID
		if cur, ok := m.Machine.State().Node(); ok && cur == id {
			m.Machine.Leave(id)
		} else {
			m.focusCursor()
		}
	case "esc":
		if cur, ok := m.Machine.State().Node(); ok {
			m.Machine.Leave(cur)
		}
	case "r":
		m.Machine.Reset()
	}
	return m, nil
}

// focusCursor focuses the node under the cursor. Ids come from the network,
// so Enter cannot fail.
func (m ExploreModel) focusCursor() {
	_ = m.Machine.Enter(m.Nodes[m.Cursor].ID)
}

func (m ExploreModel) View() string {
	var b strings.Builder

	title := m.Net.Title()
	if title == "" {
		title = "Focus Explorer"
	}
	b.WriteString(styleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ focus  ⏎ toggle  esc leave  r reset  q quit"))
	b.WriteString("\n\n")

	for i, node := range m.Nodes {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		emph := m.Machine.NodeEmphasis(node.ID)
		line := fmt.Sprintf("%s%-12s %s", cursor, node.ID, listDimStyle.Render(node.DisplayLabel()))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(emphasisStyle(emph).Render(line))
		}
		b.WriteString("  " + renderEmphasis(emph))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for i, e := range m.Net.Edges() {
		emph := m.Machine.EdgeEmphasis(e)
		line := fmt.Sprintf("  %s %-24s %s", strconv.Itoa(i), e.Source+" → "+e.Target, strconv.FormatFloat(e.Value, 'f', 2, 64))
		b.WriteString(emphasisStyle(emph).Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("  state: " + m.Machine.State().String()))
	b.WriteString("\n")
	return b.String()
}
