// Package circular places a fixed set of nodes on a circle and computes the
// connectors and edge-label anchors of a hub-and-spoke diagram.
//
// # Geometry
//
// Every node carries a polar angle in degrees. Angles are measured clockwise
// with 0 at the top of the circle, so [NodePosition] rotates by -90 degrees
// before the usual cos/sin conversion:
//
//	NodePosition(0, c, r)   == c + (0, -r)   // top
//	NodePosition(90, c, r)  == c + (r, 0)    // right
//	NodePosition(180, c, r) == c + (0, r)    // bottom
//
// Connectors are quadratic Bezier curves that use the shared center as their
// single control point ([ConnectorPath]). All of them bow toward the hub,
// which gives the diagram its chord appearance.
//
// Edge labels sit on the ray from the center through the midpoint of the
// straight segment between the endpoints, pushed outward by a fixed offset
// ([LabelAnchor]). When that midpoint coincides with the center (endpoints
// diametrically opposite) the direction is undefined and the anchor falls
// back to [FallbackDirection], straight up.
//
// # Layouts
//
// [Compute] applies the three operations to a validated network and returns a
// [Layout] holding per-node positions and per-edge paths and anchors. The
// functions are pure: identical inputs always produce bit-identical outputs.
package circular
