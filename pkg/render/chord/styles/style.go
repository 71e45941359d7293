package styles

import (
	"bytes"
	"slices"

	cverrors "github.com/matzehuels/chordviz/pkg/errors"
)

// Style defines the visual appearance of a chord diagram.
// Sinks own structure and interaction; styles own the look of each element.
type Style interface {
	// Name is the identifier used on the command line and in config files.
	Name() string
	// RenderDefs writes SVG <defs> content such as arrow markers.
	RenderDefs(buf *bytes.Buffer, markers []Marker)
	// RenderBackground writes the frame background, if any.
	RenderBackground(buf *bytes.Buffer, f Frame)
	// RenderTitle writes the diagram title.
	RenderTitle(buf *bytes.Buffer, f Frame)
	// RenderEdge writes the connector of one edge.
	RenderEdge(buf *bytes.Buffer, e Edge)
	// RenderEdgeLabel writes the value label at the edge's anchor.
	RenderEdgeLabel(buf *bytes.Buffer, e Edge)
	// RenderNode writes the node circle and its label.
	RenderNode(buf *bytes.Buffer, n Node)
}

// Frame describes the drawing area.
type Frame struct {
	Width, Height float64
	Title         string
}

// Marker is an arrowhead definition for one edge color.
type Marker struct {
	ID     string
	Color  string
	Offset float64 // Distance from the path end to the arrow tip
}

// Node contains all data needed to draw one node.
type Node struct {
	ID      string
	Label   string
	Color   string
	X, Y, R float64
}

// Edge contains all data needed to draw one connector and its label.
type Edge struct {
	Index          int // Position in the edge list; pairs a label with its connector
	Source, Target string
	Path           string // SVG path data
	Color          string
	Width          float64
	Opacity        float64
	Marker         string // Marker id, empty for none
	Label          string
	LabelX, LabelY float64
	LabelOpacity   float64
}

var registry = map[string]func() Style{
	"light": func() Style { return Light() },
	"dark":  func() Style { return Dark() },
}

// ByName returns the registered style with the given name.
func ByName(name string) (Style, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, cverrors.New(cverrors.ErrCodeInvalidStyle, "unknown style %q (available: %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns the registered style names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
