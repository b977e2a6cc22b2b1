package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sakshamsharma/poleiro/analysis"
	"github.com/sakshamsharma/poleiro/notation"
)

// cgt compare
func Compare() *cobra.Command {
	return &cobra.Command{
		Use:   "compare game1 game2",
		Short: "Compare the values of two positions",
		Args:  cobra.ExactArgs(2),
		Long: heredoc.Doc(`compare reports the order between two positions: greater, less,
			equivalent, or incomparable. The order is read off from who wins
			the difference of the two games, so "equivalent" means the two
			positions are interchangeable in any sum, not that they look
			alike.`),
		Example: heredoc.Doc(`
			cgt compare '1' '0'
			cgt compare '*' '0'
			cgt compare '{0|}' '1'`),
		RunE: func(cmd *cobra.Command, args []string) error {
			g1, err := notation.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid first game: %w", err)
			}
			g2, err := notation.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid second game: %w", err)
			}

			cmd.Printf("%s is %s %s\n", g1, describe(analysis.Compare(g1, g2)), g2)
			return nil
		},
	}
}

func describe(r analysis.Relation) string {
	switch r {
	case analysis.Greater:
		return "greater than"
	case analysis.Less:
		return "less than"
	case analysis.Equivalent:
		return "equivalent to"
	default:
		return "incomparable with"
	}
}
