package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chordviz/pkg/focus"
	"github.com/matzehuels/chordviz/pkg/network"
	"github.com/matzehuels/chordviz/pkg/pipeline"
)

// focusCommand creates the focus command for printing emphasis under a focused node.
func (c *CLI) focusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus <node> [dataset]",
		Short: "Show which nodes and links a focused node highlights",
		Long: `Show which nodes and links a focused node highlights.

This prints what hovering <node> does in the SVG output: links touching the
node are highlighted, the node and its neighbors stay at full strength and
everything else is dimmed.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFocus(cmd.Context(), args[0], datasetArg(args[1:]))
		},
	}
	return cmd
}

// runFocus loads the dataset, focuses id and prints the emphasis tables.
func (c *CLI) runFocus(ctx context.Context, id, dataset string) error {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	n, err := runner.Load(ctx, pipeline.Options{Dataset: dataset, Logger: c.Logger})
	if err != nil {
		return err
	}

	m := focus.NewMachine(n)
	if err := m.Enter(id); err != nil {
		return err
	}

	fmt.Println(styleTitle.Render("Focus: " + id))
	fmt.Println(focusNodeTable(n, m))
	fmt.Println(focusEdgeTable(n, m))
	return nil
}

// focusNodeTable renders the emphasis of every node under m's state.
func focusNodeTable(n *network.Network, m *focus.Machine) string {
	t := newTable("Node", "Label", "Emphasis")
	for _, node := range n.Nodes() {
		e := m.NodeEmphasis(node.ID)
		t.Row(emphasisStyle(e).Render(node.ID), node.DisplayLabel(), renderEmphasis(e))
	}
	return t.Render()
}

// focusEdgeTable renders the emphasis of every edge under m's state.
func focusEdgeTable(n *network.Network, m *focus.Machine) string {
	t := newTable("#", "Link", "Value", "Emphasis")
	for i, e := range n.Edges() {
		emph := m.EdgeEmphasis(e)
		t.Row(
			strconv.Itoa(i),
			emphasisStyle(emph).Render(e.Source+" → "+e.Target),
			strconv.FormatFloat(e.Value, 'f', 2, 64),
			renderEmphasis(emph),
		)
	}
	return t.Render()
}
