package pipeline

import (
	"context"

	"github.com/matzehuels/chordviz/pkg/focus"
	"github.com/matzehuels/chordviz/pkg/layout/circular"
	"github.com/matzehuels/chordviz/pkg/network"
	"github.com/matzehuels/chordviz/pkg/render/chord"
)

// ComputeLayout lays n out on the circle described by opts. Edges whose label
// anchor fell back to the default direction are logged at debug level.
func ComputeLayout(ctx context.Context, n *network.Network, opts Options) (circular.Layout, error) {
	if err := ctx.Err(); err != nil {
		return circular.Layout{}, err
	}
	if err := opts.ValidateForLayout(); err != nil {
		return circular.Layout{}, err
	}

	l, err := circular.Compute(n, opts.LayoutOptions())
	if err != nil {
		return circular.Layout{}, err
	}
	for _, i := range l.DegenerateEdges() {
		e := l.Edges[i]
		opts.Logger.Debug("label anchor fell back to upward direction",
			"edge", i, "source", e.Source, "target", e.Target, "anchor", e.Anchor.String())
	}
	return l, nil
}

// FocusState converts a node id into a focus state; empty means idle.
func FocusState(id string) focus.State {
	if id == "" {
		return focus.Idle()
	}
	return focus.FocusedOn(id)
}

// BuildScene resolves l under the focus state requested by opts.
func BuildScene(n *network.Network, l circular.Layout, opts Options) (chord.Scene, error) {
	return chord.Build(n, l, FocusState(opts.Focus))
}
