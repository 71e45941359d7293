package network

import (
	"fmt"
	"math"
)

// Warning is a non-fatal observation about a valid network.
type Warning struct {
	Subject string // Node id or "edge N"
	Message string
}

func (w Warning) String() string { return w.Subject + ": " + w.Message }

// Lint reports dataset shapes that render poorly without being invalid:
// nodes sharing an angle (coincident positions), self-loops, parallel edges
// and isolated nodes.
func Lint(n *Network) []Warning {
	var out []Warning

	byAngle := make(map[float64]string)
	for _, node := range n.nodes {
		a := normalizeAngle(node.Angle)
		if prev, ok := byAngle[a]; ok {
			out = append(out, Warning{node.ID, fmt.Sprintf("shares angle %g with %q", a, prev)})
			continue
		}
		byAngle[a] = node.ID
	}

	type pair struct{ a, b string }
	seen := make(map[pair]int)
	for i, e := range n.edges {
		subject := fmt.Sprintf("edge %d", i)
		if e.Source == e.Target {
			out = append(out, Warning{subject, fmt.Sprintf("self-loop on %q", e.Source)})
		}
		key := pair{e.Source, e.Target}
		if e.Target < e.Source {
			key = pair{e.Target, e.Source}
		}
		if prev, ok := seen[key]; ok {
			out = append(out, Warning{subject, fmt.Sprintf("parallel to edge %d", prev)})
			continue
		}
		seen[key] = i
	}

	for _, node := range n.nodes {
		if len(n.incident[node.ID]) == 0 {
			out = append(out, Warning{node.ID, "has no edges"})
		}
	}
	return out
}

// normalizeAngle maps an angle onto [0, 360).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
