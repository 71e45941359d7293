package pipeline

import (
	"context"
	"slices"

	"github.com/matzehuels/chordviz/pkg/cache"
	"github.com/matzehuels/chordviz/pkg/network"
)

// IsBuiltin reports whether dataset names a builtin dataset rather than a file.
func IsBuiltin(dataset string) bool {
	return slices.Contains(network.BuiltinNames(), dataset)
}

// Load reads the dataset named by opts.Dataset: a builtin name or a path to
// a .json, .yaml or .toml file. opts.Title, when set, replaces the dataset
// title.
func Load(ctx context.Context, opts Options) (*network.Network, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dataset := opts.Dataset
	if dataset == "" {
		dataset = DefaultDataset
	}

	var (
		n   *network.Network
		err error
	)
	if IsBuiltin(dataset) {
		n, err = network.Builtin(dataset)
	} else {
		n, err = network.ReadFile(dataset)
	}
	if err != nil {
		return nil, err
	}

	if opts.Title != "" && opts.Title != n.Title() {
		return network.New(n.Nodes(), n.Edges(), network.WithTitle(opts.Title))
	}
	return n, nil
}

// DatasetHash returns the content hash of n's canonical JSON encoding. Two
// files that decode to the same dataset share a hash regardless of format.
func DatasetHash(n *network.Network) (string, error) {
	data, err := network.Marshal(n, network.FormatJSON)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
