// Package pkg provides the core libraries for chordviz correlation diagrams.
//
// # Overview
//
// chordviz draws a small correlation network as a circular chord diagram:
// nodes sit on a circle at fixed angles, every link is a curve that bends
// through the hub, and each link carries its coefficient as a label pushed
// outward from the crowded center. Hovering a node highlights its links and
// neighbors and dims everything else.
//
// # Architecture
//
// The typical data flow through chordviz:
//
//	Dataset file (.json/.yaml/.toml) or builtin
//	         ↓
//	    [network] package (validated nodes and links)
//	         ↓
//	    [layout/circular] package (positions, connectors, label anchors)
//	         ↓
//	    [focus] package (idle or focused state, emphasis)
//	         ↓
//	    [render/chord] package (scene) → [render/chord/sink] (SVG, JSON, PDF, PNG)
//	                                   → [render/nodelink] (DOT, Graphviz SVG)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/chordviz/pkg/focus"
//	    "github.com/matzehuels/chordviz/pkg/layout/circular"
//	    "github.com/matzehuels/chordviz/pkg/network"
//	    "github.com/matzehuels/chordviz/pkg/render/chord"
//	    "github.com/matzehuels/chordviz/pkg/render/chord/sink"
//	)
//
//	// 1. Load a dataset
//	n, _ := network.ReadFile("correlations.yaml")
//
//	// 2. Compute layout
//	l, _ := circular.Compute(n, circular.DefaultOptions())
//
//	// 3. Resolve a focus state
//	scene, _ := chord.Build(n, l, focus.FocusedOn("Trust"))
//
//	// 4. Render to SVG
//	svg := sink.RenderSVG(scene, sink.WithArrows())
//
// # Main Packages
//
// [network] - Nodes, links and fail-fast validation. Every problem in a
// dataset is reported at once. Builtin datasets ship with the binary.
//
// [layout/circular] - The geometry: angle to position (0° at the top,
// clockwise), quadratic connectors through the center and radial label
// anchors with a fixed fallback when a chord passes through the center.
//
// [focus] - The Idle/Focused state machine and the emphasis rules shared by
// every renderer.
//
// [render/chord] - Scene building and visual styles (light, dark).
//
// [render/nodelink] - DOT export with pinned positions, rendered by Graphviz.
//
// [render] - Format conversion (SVG to PDF/PNG).
//
// ## Infrastructure
//
// [pipeline] - The load → layout → render pipeline with artifact caching,
// used by every CLI command.
//
// [cache] - Artifact cache backends (file, Redis, null) and key derivation.
//
// [observability] - Hooks for pipeline, cache and focus events.
//
// [errors] - Coded errors shared by all packages.
//
// # Testing
//
// Run tests:
//
//	go test ./...                              # All tests
//	go test ./pkg/layout/circular/...          # Specific package
//	REDIS_URL=redis://localhost:6379/15 go test ./pkg/cache/...
//
// [network]: https://pkg.go.dev/github.com/matzehuels/chordviz/pkg/network
// [layout/circular]: https://pkg.go.dev/github.com/matzehuels/chordviz/pkg/layout/circular
// [focus]: https://pkg.go.dev/github.com/matzehuels/chordviz/pkg/focus
// [render/chord]: https://pkg.go.dev/github.com/matzehuels/chordviz/pkg/render/chord
// [render/chord/sink]: https://pkg.go.dev/github.com/matzehuels/chordviz/pkg/render/chord/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/chordviz/pkg/render/nodelink
// [render]: https://pkg.go.dev/github.com/matzehuels/chordviz/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/chordviz/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/chordviz/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/chordviz/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/chordviz/pkg/errors
package pkg
