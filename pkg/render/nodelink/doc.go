// Package nodelink exports chord networks as Graphviz node-link diagrams.
//
// # Overview
//
// This package writes the same nodes and edges the chord renderer draws as a
// Graphviz graph. Node positions are pinned to the circular layout
// (pos="x,y!" with inputscale=72), and the neato engine routes the edges as
// curved splines. It is useful for feeding the dataset into Graphviz tooling
// or for a second opinion on edge routing.
//
// # Usage
//
// Convert a laid-out network to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(net, layout, nodelink.Options{Values: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Values: label edges with their values
//   - Detailed: node labels include the id and angle
//   - EdgeOpacity: stroke alpha, matching the chord renderer's default of 0.3
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
