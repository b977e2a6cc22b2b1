package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sakshamsharma/poleiro/notation"
)

// cgt height
func Height() *cobra.Command {
	return &cobra.Command{
		Use:   "height game",
		Short: "Print the nesting depth of the given position",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`height prints the maximum nesting depth of a position: 1 for
			the empty game, otherwise one more than the tallest option.`),
		Example: heredoc.Doc(`
			cgt height '0'
			cgt height '{1,*|0}'`),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := notation.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid game: %w", err)
			}

			cmd.Printf("%d\n", g.Height())
			return nil
		},
	}
}
