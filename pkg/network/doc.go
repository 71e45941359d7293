// Package network defines the node/edge dataset rendered by chordviz.
//
// A [Network] is an immutable, validated pair of node and edge lists. It is
// only obtainable through [New] (or the readers built on it), which rejects a
// dataset that names an unknown node, repeats a node id, or carries
// malformed colors and non-finite numbers. Every error found is reported, not
// only the first.
//
// # File Formats
//
// Datasets are read from JSON, YAML or TOML. All three share one shape:
//
//	{
//	  "title": "Correlations",
//	  "nodes": [{"id": "Trust", "label": "Trust", "color": "#f87171", "angle": 0}],
//	  "edges": [{"source": "Policy", "target": "Trust", "value": 0.54, "width": 6}]
//	}
//
// "links" is accepted as an alias of "edges".
//
// # Builtin Datasets
//
// [Builtin] returns the correlation network of the EV adoption study in
// English ("ev-correlations") and Chinese ("ev-correlations-zh").
package network
