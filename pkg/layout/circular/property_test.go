package circular

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestGeometryProperties checks the layout contract for arbitrary inputs.
func TestGeometryProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	angle := gen.Float64Range(-720, 720)
	coordGen := gen.Float64Range(-1000, 1000)
	radius := gen.Float64Range(0, 500)
	offset := gen.Float64Range(0.5, 100)

	properties.Property("node lies on the circle", prop.ForAll(
		func(a, cx, cy, r float64) bool {
			c := Point{cx, cy}
			d := NodePosition(a, c, r).Dist(c)
			return math.Abs(d-r) <= 1e-9*math.Max(1, r)
		},
		angle, coordGen, coordGen, radius,
	))

	properties.Property("connector apex sits halfway between chord midpoint and hub", prop.ForAll(
		func(a1, a2, cx, cy, r float64) bool {
			c := Point{cx, cy}
			s := NodePosition(a1, c, r)
			e := NodePosition(a2, c, r)
			mid := s.Mid(e)
			if mid.Dist(c) < 1e-6 {
				return true
			}
			apex := ConnectorPath(s, e, c).At(0.5)
			// Strictly between: closer to the hub than the midpoint is, and
			// on the segment from the midpoint to the hub.
			dm, dc, total := apex.Dist(mid), apex.Dist(c), mid.Dist(c)
			return dm > 0 && dc > 0 && dc < total && math.Abs(dm+dc-total) <= 1e-6*math.Max(1, total)
		},
		angle, angle, coordGen, coordGen, gen.Float64Range(1, 500),
	))

	properties.Property("label anchor is offset away from the chord midpoint", prop.ForAll(
		func(a1, a2, cx, cy, r, off float64) bool {
			c := Point{cx, cy}
			s := NodePosition(a1, c, r)
			e := NodePosition(a2, c, r)
			mid := s.Mid(e)
			anchor, _ := LabelAnchorChecked(s, e, c, off)
			if !anchor.IsFinite() {
				return false
			}
			if math.Abs(anchor.Dist(mid)-off) > 1e-6*math.Max(1, off) {
				return false
			}
			// Pushed outward: never closer to the hub than the midpoint.
			return anchor.Dist(c) >= mid.Dist(c)-1e-9
		},
		angle, angle, coordGen, coordGen, radius, offset,
	))

	properties.Property("pure functions are bit-identical across calls", prop.ForAll(
		func(a1, a2, r float64) bool {
			c := Point{160, 160}
			return NodePosition(a1, c, r) == NodePosition(a1, c, r) &&
				ConnectorPath(NodePosition(a1, c, r), NodePosition(a2, c, r), c) ==
					ConnectorPath(NodePosition(a1, c, r), NodePosition(a2, c, r), c) &&
				LabelAnchor(NodePosition(a1, c, r), NodePosition(a2, c, r), c, 25) ==
					LabelAnchor(NodePosition(a1, c, r), NodePosition(a2, c, r), c, 25)
		},
		angle, angle, radius,
	))

	properties.TestingRun(t)
}
