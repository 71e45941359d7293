package sink

import (
	"encoding/json"

	"github.com/matzehuels/chordviz/pkg/render/chord"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
}

// WithJSONStyle records the style name in the output so the scene can be
// re-rendered identically.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	Title      string     `json:"title,omitempty"`
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Center     jsonPoint  `json:"center"`
	Radius     float64    `json:"radius"`
	NodeRadius float64    `json:"node_radius"`
	Style      string     `json:"style,omitempty"`
	Focus      string     `json:"focus,omitempty"`
	Nodes      []jsonNode `json:"nodes"`
	Edges      []jsonEdge `json:"edges"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonNode struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Color     string    `json:"color"`
	Angle     float64   `json:"angle"`
	Position  jsonPoint `json:"position"`
	Neighbors []string  `json:"neighbors,omitempty"`
	Emphasis  string    `json:"emphasis"`
	Opacity   float64   `json:"opacity"`
	Scale     float64   `json:"scale"`
}

type jsonEdge struct {
	Index       int       `json:"index"`
	Source      string    `json:"source"`
	Target      string    `json:"target"`
	Value       float64   `json:"value"`
	Label       string    `json:"label"`
	Width       float64   `json:"width"`
	Color       string    `json:"color"`
	Path        string    `json:"path"`
	Control     jsonPoint `json:"control"`
	Anchor      jsonPoint `json:"anchor"`
	Degenerate  bool      `json:"degenerate,omitempty"`
	Emphasis    string    `json:"emphasis"`
	Opacity     float64   `json:"opacity"`
	StrokeWidth float64   `json:"stroke_width"`
}

// RenderJSON exports the scene as a pretty-printed JSON document: node
// positions, edge paths and label anchors, and the emphasis of every element
// under the scene's focus state.
func RenderJSON(s chord.Scene, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	focused, _ := s.Focus.Node()
	out := jsonOutput{
		Title:      s.Title,
		Width:      s.Width,
		Height:     s.Height,
		Center:     jsonPoint{s.Center.X, s.Center.Y},
		Radius:     s.Radius,
		NodeRadius: s.NodeRadius,
		Style:      r.style,
		Focus:      focused,
		Nodes:      make([]jsonNode, 0, len(s.Nodes)),
		Edges:      make([]jsonEdge, 0, len(s.Edges)),
	}
	for _, n := range s.Nodes {
		out.Nodes = append(out.Nodes, jsonNode{
			ID:        n.ID,
			Label:     n.Label,
			Color:     n.Color,
			Angle:     n.Angle,
			Position:  jsonPoint{n.Position.X, n.Position.Y},
			Neighbors: n.Neighbors,
			Emphasis:  n.Emphasis.String(),
			Opacity:   n.Opacity,
			Scale:     n.Scale,
		})
	}
	for _, e := range s.Edges {
		out.Edges = append(out.Edges, jsonEdge{
			Index:       e.Index,
			Source:      e.Source,
			Target:      e.Target,
			Value:       e.Value,
			Label:       e.Label,
			Width:       e.Width,
			Color:       e.Color,
			Path:        e.Path.String(),
			Control:     jsonPoint{e.Path.Control.X, e.Path.Control.Y},
			Anchor:      jsonPoint{e.Anchor.X, e.Anchor.Y},
			Degenerate:  e.Degenerate,
			Emphasis:    e.Emphasis.String(),
			Opacity:     e.Opacity,
			StrokeWidth: e.StrokeWidth,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
