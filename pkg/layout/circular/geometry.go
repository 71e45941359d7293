package circular

import (
	"fmt"
	"math"
	"strconv"
)

// DegenerateEpsilon is the length below which the center-to-midpoint vector
// is treated as zero by [LabelAnchor].
const DegenerateEpsilon = 1e-9

// FallbackDirection is the unit direction used for label anchors whose
// endpoint midpoint coincides with the center. It points up in SVG
// coordinates, where y grows downward.
var FallbackDirection = Point{X: 0, Y: -1}

// Point is a 2D coordinate in SVG user units.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Len returns the Euclidean length of p treated as a vector.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return q.Sub(p).Len() }

// Mid returns the midpoint of the segment pq.
func (p Point) Mid(q Point) Point { return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2} }

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String formats p as "x,y" with two decimals, the form used in SVG path data.
func (p Point) String() string { return coord(p.X) + "," + coord(p.Y) }

// NodePosition maps a polar angle in degrees onto a circle of the given
// center and radius. 0 degrees is the top of the circle and angles grow
// clockwise. The function is total: any angle is accepted and a zero radius
// collapses every node onto the center.
func NodePosition(angle float64, center Point, radius float64) Point {
	rad := (angle - 90) * (math.Pi / 180)
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// Path is a quadratic Bezier connector.
type Path struct {
	Start   Point
	Control Point
	End     Point
}

// ConnectorPath returns the connector from source to target that uses center
// as its single control point.
func ConnectorPath(source, target, center Point) Path {
	return Path{Start: source, Control: center, End: target}
}

// At evaluates the curve at parameter t in [0, 1].
func (p Path) At(t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p.Start.X + 2*u*t*p.Control.X + t*t*p.End.X,
		Y: u*u*p.Start.Y + 2*u*t*p.Control.Y + t*t*p.End.Y,
	}
}

// String returns the SVG path data "M sx,sy Q cx,cy ex,ey".
func (p Path) String() string {
	return fmt.Sprintf("M%s Q%s %s", p.Start, p.Control, p.End)
}

// LabelAnchor returns the anchor for an edge label: the midpoint of the
// straight segment between source and target, pushed away from center by
// offset. See [LabelAnchorChecked] for the degenerate case.
func LabelAnchor(source, target, center Point, offset float64) Point {
	p, _ := LabelAnchorChecked(source, target, center, offset)
	return p
}

// LabelAnchorChecked is [LabelAnchor] that also reports whether the
// center-to-midpoint vector was too short to normalize. In that case the
// anchor is pushed along [FallbackDirection] instead.
func LabelAnchorChecked(source, target, center Point, offset float64) (Point, bool) {
	mid := source.Mid(target)
	v := mid.Sub(center)
	n := v.Len()
	if n < DegenerateEpsilon || math.IsNaN(n) || math.IsInf(n, 0) {
		return mid.Add(FallbackDirection.Scale(offset)), true
	}
	return mid.Add(v.Scale(offset / n)), false
}

// coord formats a coordinate with two decimals and without a negative zero.
func coord(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', 2, 64)
}
