package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sakshamsharma/poleiro/experiments"
)

// cgt experiment
func Experiment() *cobra.Command {
	return &cobra.Command{
		Use:   "experiment { classification | comparison }",
		Short: "Run a batch experiment over generated positions",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`experiment classifies batches of randomly generated positions of
			growing shape and stores per-game CSV records (outcome, height,
			positions evaluated, memo hits, duration) under the experiments
			directory.

			The classification experiment evaluates single positions; the
			comparison experiment evaluates differences of consecutive
			positions, which are far larger and exercise the evaluator's
			memo table.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "classification":
				experiments.RunClassificationExperiment()
			case "comparison":
				experiments.RunComparisonExperiment()
			default:
				return fmt.Errorf("unknown experiment %q", args[0])
			}
			return nil
		},
	}
}
