package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sakshamsharma/poleiro/analysis"
	"github.com/sakshamsharma/poleiro/game"
	"github.com/sakshamsharma/poleiro/notation"
)

// cgt sum
func SumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum game...",
		Short: "Classify the disjunctive sum of the given positions",
		Args:  cobra.MinimumNArgs(1),
		Long: heredoc.Doc(`sum combines the given positions into their disjunctive sum,
			the compound game where the player to move picks exactly one
			component and moves in it, and reports the outcome class of the
			combined position.`),
		Example: heredoc.Doc(`
			cgt sum '*' '*'
			cgt sum '1' '-1'
			cgt sum '{0|}' '{|0}' '*'`),
		RunE: func(cmd *cobra.Command, args []string) error {
			total := game.Zero
			for i, arg := range args {
				g, err := notation.Parse(arg)
				if err != nil {
					return fmt.Errorf("invalid game %d: %w", i+1, err)
				}
				total = game.Sum(total, g)
			}

			cmd.Printf("%s\n", analysis.Classify(total))
			return nil
		},
	}
}
