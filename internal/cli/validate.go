package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	cverrors "github.com/matzehuels/chordviz/pkg/errors"
	"github.com/matzehuels/chordviz/pkg/network"
	"github.com/matzehuels/chordviz/pkg/pipeline"
)

// errInvalidDatasets is returned when at least one dataset fails validation.
// Details have already been printed.
var errInvalidDatasets = errors.New("invalid datasets")

// validateCommand creates the validate command for checking dataset files.
func (c *CLI) validateCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "validate <dataset>...",
		Short: "Check dataset files for errors and warnings",
		Long: `Check dataset files for errors and warnings.

Errors make a dataset unusable: unknown node references, duplicate or empty
ids, malformed colors, negative widths. Every problem in a file is reported,
not only the first. Warnings flag datasets that render but probably not as
intended, such as two nodes at the same angle.

With --output, a single valid dataset is rewritten in the format implied by
the output extension (.json, .yaml or .toml).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && len(args) != 1 {
				return fmt.Errorf("--output requires exactly one dataset")
			}
			return c.runValidate(cmd.Context(), args, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "rewrite the dataset to this file")

	return cmd
}

// runValidate checks each dataset and prints one result block per file.
func (c *CLI) runValidate(ctx context.Context, datasets []string, output string) error {
	logger := loggerFromContext(ctx)
	failed := 0
	var last *network.Network
	for _, ds := range datasets {
		n, err := pipeline.Load(ctx, pipeline.Options{Dataset: ds})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failed++
			printError("%s", ds)
			for _, line := range problemLines(err) {
				printDetail("%s", line)
			}
			continue
		}
		last = n

		warnings := network.Lint(n)
		logger.Debug("validated dataset", "dataset", ds, "nodes", n.NodeCount(), "edges", n.EdgeCount(), "warnings", len(warnings))
		printSuccess("%s", ds)
		printStats(n.NodeCount(), n.EdgeCount(), false)
		for _, w := range warnings {
			printWarning("%s", w)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidDatasets, failed, len(datasets))
	}

	if output != "" {
		if err := network.WriteFile(last, output); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printFile(output)
	}
	return nil
}

// problemLines splits a joined load error into one message per problem,
// without the error code prefix.
func problemLines(err error) []string {
	errs := []error{err}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		errs = joined.Unwrap()
	}
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := cverrors.UserMessage(e)
		var ce *cverrors.Error
		if errors.As(e, &ce) && ce.Cause != nil {
			msg += ": " + ce.Cause.Error()
		}
		lines = append(lines, msg)
	}
	return lines
}
