package network

import (
	"slices"
	"sort"

	cverrors "github.com/matzehuels/chordviz/pkg/errors"
)

// Builtin dataset names.
const (
	BuiltinEVCorrelations   = "ev-correlations"
	BuiltinEVCorrelationsZH = "ev-correlations-zh"
)

// evNodes are the six constructs of the EV adoption survey, clockwise from the top.
var evNodes = []Node{
	{ID: "Trust", Label: "Trust", Color: "#f87171", Angle: 0},
	{ID: "Policy", Label: "Policy", Color: "#818cf8", Angle: 60},
	{ID: "Attitude", Label: "Attitude", Color: "#64748b", Angle: 120},
	{ID: "Intention", Label: "Intention", Color: "#34d399", Angle: 180},
	{ID: "Know", Label: "Knowledge", Color: "#a78bfa", Angle: 240},
	{ID: "Resp", Label: "Responsibility", Color: "#fbbf24", Angle: 300},
}

var evLabelsZH = map[string]string{
	"Trust":     "信任",
	"Policy":    "政策",
	"Attitude":  "态度",
	"Intention": "意愿",
	"Know":      "认知",
	"Resp":      "责任",
}

// evEdges are the pairwise correlations reported by the study.
var evEdges = []Edge{
	{Source: "Policy", Target: "Trust", Value: 0.54, Width: 6},
	{Source: "Trust", Target: "Attitude", Value: 0.52, Width: 5},
	{Source: "Trust", Target: "Intention", Value: 0.45, Width: 4},
	{Source: "Attitude", Target: "Intention", Value: 0.45, Width: 4},
	{Source: "Policy", Target: "Intention", Value: 0.49, Width: 5},
	{Source: "Know", Target: "Trust", Value: 0.22, Width: 2},
	{Source: "Resp", Target: "Attitude", Value: 0.27, Width: 3},
}

var builtins = map[string]func() (*Network, error){
	BuiltinEVCorrelations: func() (*Network, error) {
		return New(evNodes, evEdges, WithTitle("Construct correlations"))
	},
	BuiltinEVCorrelationsZH: func() (*Network, error) {
		nodes := slices.Clone(evNodes)
		for i := range nodes {
			nodes[i].Label = evLabelsZH[nodes[i].ID]
		}
		return New(nodes, evEdges, WithTitle("变量相关性"))
	},
}

// Builtin returns a bundled dataset by name.
func Builtin(name string) (*Network, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, cverrors.New(cverrors.ErrCodeNotFound, "unknown builtin dataset %q (available: %v)", name, BuiltinNames())
	}
	return build()
}

// BuiltinNames lists the bundled datasets in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
