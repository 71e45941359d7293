package circular

import (
	"fmt"
	"math"

	cverrors "github.com/matzehuels/chordviz/pkg/errors"
	"github.com/matzehuels/chordviz/pkg/network"
)

// Defaults reproduce the 320x320 frame of the original correlation figure.
const (
	DefaultWidth       = 320.0
	DefaultHeight      = 320.0
	DefaultRadius      = 120.0
	DefaultLabelOffset = 25.0
	DefaultNodeRadius  = 24.0
)

// Options configures [Compute].
//
// Zero sizes select the defaults, so a zero Radius or LabelOffset cannot be
// requested here; call [NodePosition] and [LabelAnchor] directly for those.
// Center is a pointer so that a hub at the origin stays expressible.
type Options struct {
	Width       float64 // Frame width
	Height      float64 // Frame height
	Center      *Point  // Hub; nil means the middle of the frame
	Radius      float64 // Layout circle radius
	LabelOffset float64 // Outward push of edge labels from the chord midpoint
	NodeRadius  float64 // Drawn node circle radius (renderers only)
}

// DefaultOptions returns the options of the original figure.
func DefaultOptions() Options {
	o := Options{}
	o.SetDefaults()
	return o
}

// SetDefaults fills zero fields. A nil Center becomes the frame middle.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Center == nil {
		o.Center = &Point{X: o.Width / 2, Y: o.Height / 2}
	}
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if o.LabelOffset == 0 {
		o.LabelOffset = DefaultLabelOffset
	}
	if o.NodeRadius == 0 {
		o.NodeRadius = DefaultNodeRadius
	}
}

// Validate rejects negative or non-finite options.
func (o Options) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"width", o.Width}, {"height", o.Height}, {"radius", o.Radius},
		{"label offset", o.LabelOffset}, {"node radius", o.NodeRadius},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return cverrors.New(cverrors.ErrCodeInvalidInput, "%s must be a finite non-negative number, got %v", f.name, f.v)
		}
	}
	if o.Center != nil && !o.Center.IsFinite() {
		return cverrors.New(cverrors.ErrCodeInvalidInput, "center must be finite, got %v", *o.Center)
	}
	return nil
}

// NodePlacement is a node's computed position.
type NodePlacement struct {
	ID       string
	Angle    float64
	Position Point
}

// EdgePlacement is an edge's computed connector and label anchor.
type EdgePlacement struct {
	Index      int // Index into the network's edge list
	Source     string
	Target     string
	Path       Path
	Anchor     Point
	Degenerate bool // Anchor used FallbackDirection
}

// Layout holds the geometry of one network on one circle.
type Layout struct {
	Width       float64
	Height      float64
	Center      Point
	Radius      float64
	LabelOffset float64
	NodeRadius  float64
	Nodes       []NodePlacement // Network node order
	Edges       []EdgePlacement // Network edge order

	byID map[string]int
}

// Compute lays out every node of n on the circle described by opts and
// derives each edge's connector and label anchor.
func Compute(n *network.Network, opts Options) (Layout, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return Layout{}, err
	}

	center := *opts.Center
	nodes := n.Nodes()
	edges := n.Edges()
	l := Layout{
		Width:       opts.Width,
		Height:      opts.Height,
		Center:      center,
		Radius:      opts.Radius,
		LabelOffset: opts.LabelOffset,
		NodeRadius:  opts.NodeRadius,
		Nodes:       make([]NodePlacement, 0, len(nodes)),
		Edges:       make([]EdgePlacement, 0, len(edges)),
		byID:        make(map[string]int, len(nodes)),
	}

	for _, node := range nodes {
		l.byID[node.ID] = len(l.Nodes)
		l.Nodes = append(l.Nodes, NodePlacement{
			ID:       node.ID,
			Angle:    node.Angle,
			Position: NodePosition(node.Angle, center, opts.Radius),
		})
	}

	for i, e := range edges {
		src, okS := l.Position(e.Source)
		dst, okD := l.Position(e.Target)
		if !okS || !okD {
			// network.New guarantees resolution; reaching this is a bug.
			return Layout{}, cverrors.New(cverrors.ErrCodeInternal, "edge %d: unresolved endpoint %s -> %s", i, e.Source, e.Target)
		}
		anchor, degenerate := LabelAnchorChecked(src, dst, center, opts.LabelOffset)
		l.Edges = append(l.Edges, EdgePlacement{
			Index:      i,
			Source:     e.Source,
			Target:     e.Target,
			Path:       ConnectorPath(src, dst, center),
			Anchor:     anchor,
			Degenerate: degenerate,
		})
	}
	return l, nil
}

// Position returns the position of the node with the given id.
func (l Layout) Position(id string) (Point, bool) {
	i, ok := l.byID[id]
	if !ok {
		return Point{}, false
	}
	return l.Nodes[i].Position, true
}

// DegenerateEdges returns the indexes of edges whose anchor used the fallback.
func (l Layout) DegenerateEdges() []int {
	var out []int
	for _, e := range l.Edges {
		if e.Degenerate {
			out = append(out, e.Index)
		}
	}
	return out
}

// String summarizes the layout for logs.
func (l Layout) String() string {
	return fmt.Sprintf("circle r=%.1f at %s, %d nodes, %d edges", l.Radius, l.Center, len(l.Nodes), len(l.Edges))
}
