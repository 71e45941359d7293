package chord

import (
	"strconv"

	cverrors "github.com/matzehuels/chordviz/pkg/errors"
	"github.com/matzehuels/chordviz/pkg/focus"
	"github.com/matzehuels/chordviz/pkg/layout/circular"
	"github.com/matzehuels/chordviz/pkg/network"
)

// Appearance maps emphasis levels to drawing parameters.
type Appearance struct {
	EdgeOpacity      float64 // Connector opacity while idle
	HighlightOpacity float64 // Connector opacity of highlighted edges
	DimOpacity       float64 // Connector opacity of dimmed edges
	WidthBoost       float64 // Added to the stroke width of highlighted edges
	NodeDimOpacity   float64 // Opacity of dimmed nodes
	LabelDimOpacity  float64 // Opacity of value labels on dimmed edges
	FocusScale       float64 // Scale of the focused node
}

// DefaultAppearance returns the parameters of the original figure: connectors
// at 0.3 opacity and the hovered node grown by 10%.
func DefaultAppearance() Appearance {
	return Appearance{
		EdgeOpacity:      0.3,
		HighlightOpacity: 0.85,
		DimOpacity:       0.06,
		WidthBoost:       2,
		NodeDimOpacity:   0.25,
		LabelDimOpacity:  0.15,
		FocusScale:       1.1,
	}
}

// NodeView is a node ready to draw.
type NodeView struct {
	ID        string
	Label     string
	Color     string
	Angle     float64
	Position  circular.Point
	Neighbors []string
	Emphasis  focus.Emphasis
	Opacity   float64
	Scale     float64
}

// EdgeView is an edge ready to draw. Color is the source node's color.
type EdgeView struct {
	Index        int
	Source       string
	Target       string
	Value        float64
	Label        string
	Width        float64
	Color        string
	Path         circular.Path
	Anchor       circular.Point
	Degenerate   bool
	Emphasis     focus.Emphasis
	Opacity      float64
	StrokeWidth  float64
	LabelOpacity float64
}

// Scene is the resolved visual description of one diagram.
type Scene struct {
	Title      string
	Width      float64
	Height     float64
	Center     circular.Point
	Radius     float64
	NodeRadius float64
	Focus      focus.State
	Appearance Appearance
	Nodes      []NodeView
	Edges      []EdgeView
}

// Option configures [Build].
type Option func(*builder)

type builder struct {
	appearance Appearance
	format     func(float64) string
}

// WithAppearance overrides [DefaultAppearance].
func WithAppearance(a Appearance) Option { return func(b *builder) { b.appearance = a } }

// WithValueFormat sets how edge values are printed in labels.
func WithValueFormat(f func(float64) string) Option { return func(b *builder) { b.format = f } }

// FormatValue prints v with two decimals, the way coefficients are reported.
func FormatValue(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

// Build resolves n laid out as l under focus state s.
//
// l must have been computed from n. Build fails with INVALID_INPUT when a node
// or edge of n has no placement in l and with UNKNOWN_NODE when s focuses a
// node that n does not contain.
func Build(n *network.Network, l circular.Layout, s focus.State, opts ...Option) (Scene, error) {
	b := builder{appearance: DefaultAppearance(), format: FormatValue}
	for _, opt := range opts {
		opt(&b)
	}

	if id, ok := s.Node(); ok && !n.Has(id) {
		return Scene{}, cverrors.New(cverrors.ErrCodeUnknownNode, "cannot focus unknown node %q", id)
	}
	if len(l.Edges) != n.EdgeCount() {
		return Scene{}, cverrors.New(cverrors.ErrCodeInvalidInput, "layout has %d edges, network has %d", len(l.Edges), n.EdgeCount())
	}

	a := b.appearance
	scene := Scene{
		Title:      n.Title(),
		Width:      l.Width,
		Height:     l.Height,
		Center:     l.Center,
		Radius:     l.Radius,
		NodeRadius: l.NodeRadius,
		Focus:      s,
		Appearance: a,
		Nodes:      make([]NodeView, 0, n.NodeCount()),
		Edges:      make([]EdgeView, 0, n.EdgeCount()),
	}

	colors := make(map[string]string, n.NodeCount())
	focused, _ := s.Node()
	for _, node := range n.Nodes() {
		pos, ok := l.Position(node.ID)
		if !ok {
			return Scene{}, cverrors.New(cverrors.ErrCodeInvalidInput, "node %q has no position in layout", node.ID)
		}
		colors[node.ID] = node.Color

		em := focus.NodeEmphasis(s, n, node.ID)
		v := NodeView{
			ID:        node.ID,
			Label:     node.DisplayLabel(),
			Color:     node.Color,
			Angle:     node.Angle,
			Position:  pos,
			Neighbors: n.Neighbors(node.ID),
			Emphasis:  em,
			Opacity:   1,
			Scale:     1,
		}
		if em == focus.Dimmed {
			v.Opacity = a.NodeDimOpacity
		}
		if node.ID == focused {
			v.Scale = a.FocusScale
		}
		scene.Nodes = append(scene.Nodes, v)
	}

	for i, e := range n.Edges() {
		p := l.Edges[i]
		if p.Source != e.Source || p.Target != e.Target {
			return Scene{}, cverrors.New(cverrors.ErrCodeInvalidInput, "edge %d: layout placement %s -> %s does not match %s -> %s",
				i, p.Source, p.Target, e.Source, e.Target)
		}

		em := focus.EdgeEmphasis(s, e)
		v := EdgeView{
			Index:        i,
			Source:       e.Source,
			Target:       e.Target,
			Value:        e.Value,
			Label:        b.format(e.Value),
			Width:        e.Width,
			Color:        colors[e.Source],
			Path:         p.Path,
			Anchor:       p.Anchor,
			Degenerate:   p.Degenerate,
			Emphasis:     em,
			Opacity:      a.EdgeOpacity,
			StrokeWidth:  e.Width,
			LabelOpacity: 1,
		}
		switch em {
		case focus.Highlighted:
			v.Opacity = a.HighlightOpacity
			v.StrokeWidth = e.Width + a.WidthBoost
		case focus.Dimmed:
			v.Opacity = a.DimOpacity
			v.LabelOpacity = a.LabelDimOpacity
		}
		scene.Edges = append(scene.Edges, v)
	}
	return scene, nil
}

// Node returns the view of the node with the given id.
func (s Scene) Node(id string) (NodeView, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return NodeView{}, false
}

// Highlighted returns the indexes of highlighted edges.
func (s Scene) Highlighted() []int {
	var out []int
	for _, e := range s.Edges {
		if e.Emphasis == focus.Highlighted {
			out = append(out, e.Index)
		}
	}
	return out
}
