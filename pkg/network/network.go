package network

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/go-playground/validator/v10"

	cverrors "github.com/matzehuels/chordviz/pkg/errors"
)

// validate is shared by all datasets; validator instances cache struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Node is a labeled, colored point placed at a fixed angle on the layout circle.
type Node struct {
	ID    string  `json:"id" yaml:"id" toml:"id" validate:"required,max=64"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Color string  `json:"color" yaml:"color" toml:"color" validate:"required,hexcolor"`
	Angle float64 `json:"angle" yaml:"angle" toml:"angle"`
}

// DisplayLabel returns Label, or ID when no label is set.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a weighted relationship between two nodes. Width is the stroke
// width supplied by the dataset; it is not derived from Value.
type Edge struct {
	Source string  `json:"source" yaml:"source" toml:"source" validate:"required"`
	Target string  `json:"target" yaml:"target" toml:"target" validate:"required"`
	Value  float64 `json:"value" yaml:"value" toml:"value"`
	Width  float64 `json:"width" yaml:"width" toml:"width" validate:"gte=0"`
}

// Touches reports whether id is the source or the target of e.
func (e Edge) Touches(id string) bool {
	return e.Source == id || e.Target == id
}

// Other returns the endpoint of e opposite to id.
func (e Edge) Other(id string) string {
	if e.Source == id {
		return e.Target
	}
	return e.Source
}

// Network is a validated, immutable dataset.
// The zero value is an empty network.
type Network struct {
	title     string
	nodes     []Node
	edges     []Edge
	index     map[string]int
	neighbors map[string][]string
	incident  map[string][]int
}

// Option configures [New].
type Option func(*Network)

// WithTitle sets the network title shown by renderers.
func WithTitle(title string) Option { return func(n *Network) { n.title = title } }

// New validates nodes and edges and returns the network.
//
// Every problem is collected and returned joined; each one is a coded error
// from pkg/errors: INVALID_INPUT for malformed fields, DUPLICATE_NODE for a
// repeated id and INVALID_REFERENCE for an edge naming an unknown node.
func New(nodes []Node, edges []Edge, opts ...Option) (*Network, error) {
	n := &Network{
		nodes:     slices.Clone(nodes),
		edges:     slices.Clone(edges),
		index:     make(map[string]int, len(nodes)),
		neighbors: make(map[string][]string, len(nodes)),
		incident:  make(map[string][]int, len(nodes)),
	}
	for _, opt := range opts {
		opt(n)
	}

	var errs []error
	for i, node := range n.nodes {
		if err := validateNode(node); err != nil {
			errs = append(errs, cverrors.Wrap(cverrors.ErrCodeInvalidInput, err, "node %d (%q)", i, node.ID))
			continue
		}
		if _, dup := n.index[node.ID]; dup {
			errs = append(errs, cverrors.New(cverrors.ErrCodeDuplicateNode, "node %d: duplicate id %q", i, node.ID))
			continue
		}
		n.index[node.ID] = i
	}

	for i, e := range n.edges {
		if err := validateEdge(e); err != nil {
			errs = append(errs, cverrors.Wrap(cverrors.ErrCodeInvalidInput, err, "edge %d (%s -> %s)", i, e.Source, e.Target))
			continue
		}
		if _, ok := n.index[e.Source]; !ok {
			errs = append(errs, cverrors.New(cverrors.ErrCodeInvalidReference, "edge %d: unknown source node %q", i, e.Source))
		}
		if _, ok := n.index[e.Target]; !ok {
			errs = append(errs, cverrors.New(cverrors.ErrCodeInvalidReference, "edge %d: unknown target node %q", i, e.Target))
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	for i, e := range n.edges {
		n.incident[e.Source] = append(n.incident[e.Source], i)
		if e.Target != e.Source {
			n.incident[e.Target] = append(n.incident[e.Target], i)
		}
		n.addNeighbor(e.Source, e.Target)
		n.addNeighbor(e.Target, e.Source)
	}
	return n, nil
}

func (n *Network) addNeighbor(id, other string) {
	if id == other || slices.Contains(n.neighbors[id], other) {
		return
	}
	n.neighbors[id] = append(n.neighbors[id], other)
}

func validateNode(node Node) error {
	if err := validate.Struct(node); err != nil {
		return err
	}
	if err := cverrors.ValidateNodeID(node.ID); err != nil {
		return err
	}
	if !isFinite(node.Angle) {
		return fmt.Errorf("angle must be finite, got %v", node.Angle)
	}
	return nil
}

func validateEdge(e Edge) error {
	if err := validate.Struct(e); err != nil {
		return err
	}
	if !isFinite(e.Value) {
		return fmt.Errorf("value must be finite, got %v", e.Value)
	}
	if !isFinite(e.Width) {
		return fmt.Errorf("width must be finite, got %v", e.Width)
	}
	return nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Title returns the network title, possibly empty.
func (n *Network) Title() string { return n.title }

// Nodes returns a copy of the nodes in definition order.
func (n *Network) Nodes() []Node { return slices.Clone(n.nodes) }

// Edges returns a copy of the edges in definition order.
func (n *Network) Edges() []Edge { return slices.Clone(n.edges) }

// NodeCount returns the number of nodes.
func (n *Network) NodeCount() int { return len(n.nodes) }

// EdgeCount returns the number of edges.
func (n *Network) EdgeCount() int { return len(n.edges) }

// Node returns the node with the given id.
func (n *Network) Node(id string) (Node, bool) {
	i, ok := n.index[id]
	if !ok {
		return Node{}, false
	}
	return n.nodes[i], true
}

// Has reports whether a node with the given id exists.
func (n *Network) Has(id string) bool {
	_, ok := n.index[id]
	return ok
}

// Neighbors returns the ids of nodes sharing an edge with id, in edge order.
func (n *Network) Neighbors(id string) []string { return slices.Clone(n.neighbors[id]) }

// Adjacent reports whether a and b share an edge.
func (n *Network) Adjacent(a, b string) bool { return slices.Contains(n.neighbors[a], b) }

// Incident returns the indexes of edges touching id, in edge order.
func (n *Network) Incident(id string) []int { return slices.Clone(n.incident[id]) }
