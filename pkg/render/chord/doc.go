// Package chord turns a laid-out network and a focus state into a [Scene]:
// the fully resolved visual description of a hub-and-spoke diagram.
//
// # Overview
//
// A scene is what every chord sink consumes. It carries, per node, the
// position, color, label and emphasis, and per edge, the Bezier connector,
// the label anchor, the stroke and the emphasis. Emphasis follows the focus
// contract of [focus.EdgeEmphasis] and [focus.NodeEmphasis]; [Appearance]
// maps each emphasis level to concrete opacities, widths and scales.
//
//	net, _ := network.Builtin(network.BuiltinEVCorrelations)
//	l, _ := circular.Compute(net, circular.DefaultOptions())
//	scene, _ := chord.Build(net, l, focus.FocusedOn("Trust"))
//	svg := sink.RenderSVG(scene, sink.WithStyle(styles.Light()))
//
// Sub-packages:
//   - [styles]: visual styles (light, dark)
//   - [sink]: output formats (SVG, JSON, PDF, PNG)
//
// [focus.EdgeEmphasis]: github.com/matzehuels/chordviz/pkg/focus.EdgeEmphasis
// [focus.NodeEmphasis]: github.com/matzehuels/chordviz/pkg/focus.NodeEmphasis
// [styles]: github.com/matzehuels/chordviz/pkg/render/chord/styles
// [sink]: github.com/matzehuels/chordviz/pkg/render/chord/sink
package chord
