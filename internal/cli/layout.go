package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chordviz/pkg/layout/circular"
	"github.com/matzehuels/chordviz/pkg/network"
	"github.com/matzehuels/chordviz/pkg/pipeline"
)

// layoutCommand creates the layout command for inspecting the circle geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "layout [dataset]",
		Short: "Print node positions, connectors and label anchors",
		Long: `Print node positions, connectors and label anchors.

Nodes are placed clockwise from the top of the circle by their angle. Every
link is a quadratic curve through the hub; its value label sits at the chord
midpoint pushed outward by the label offset. Links whose endpoints are
opposite each other have no outward direction and their label is pushed
straight up instead; these are marked "fallback".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			applyConfig(cmd.Flags(), cfg, &opts)
			opts.Dataset = datasetArg(args)
			return c.runLayout(cmd.Context(), opts)
		},
	}

	addLayoutFlags(cmd.Flags(), &opts)

	return cmd
}

// runLayout loads the dataset and prints its layout tables.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options) error {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	opts.Logger = c.Logger

	prog := newProgress(c.Logger)
	n, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}
	l, err := runner.ComputeLayout(ctx, n, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Computed layout for %d nodes", n.NodeCount()))

	if t := n.Title(); t != "" {
		fmt.Println(styleTitle.Render(t))
	}
	printKeyValue("center", l.Center.String())
	printKeyValue("radius", formatCoord(l.Radius))
	printKeyValue("offset", formatCoord(l.LabelOffset))
	fmt.Println(nodeTable(n, l))
	fmt.Println(edgeTable(n, l))
	printStats(n.NodeCount(), n.EdgeCount(), false)
	return nil
}

// nodeTable renders one row per node: id, label, angle and position.
func nodeTable(n *network.Network, l circular.Layout) string {
	t := newTable("Node", "Label", "Angle", "X", "Y")
	for _, p := range l.Nodes {
		node, _ := n.Node(p.ID)
		t.Row(p.ID, node.DisplayLabel(), formatCoord(p.Angle), formatCoord(p.Position.X), formatCoord(p.Position.Y))
	}
	return t.Render()
}

// edgeTable renders one row per edge: endpoints, value, anchor and path.
func edgeTable(n *network.Network, l circular.Layout) string {
	edges := n.Edges()
	t := newTable("#", "Link", "Value", "Width", "Anchor", "Path")
	for _, e := range l.Edges {
		anchor := e.Anchor.String()
		if e.Degenerate {
			anchor += " " + styleWarning.Render("fallback")
		}
		t.Row(
			strconv.Itoa(e.Index),
			e.Source+" → "+e.Target,
			strconv.FormatFloat(edges[e.Index].Value, 'f', 2, 64),
			formatCoord(edges[e.Index].Width),
			anchor,
			e.Path.String(),
		)
	}
	return t.Render()
}

// formatCoord prints v rounded to two decimals without trailing zeros.
func formatCoord(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
