package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sakshamsharma/poleiro/analysis"
	"github.com/sakshamsharma/poleiro/notation"
)

// cgt classify
func Classify() *cobra.Command {
	return &cobra.Command{
		Use:   "classify game",
		Short: "Report who wins the given position under optimal play",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`classify evaluates a position written in bracket notation and
			reports which of the four outcome classes it falls into: Left
			always wins, Right always wins, the first player to move wins,
			or the second player wins.

			A position is written {left options|right options}, with options
			separated by commas. The names 0, 1, 2, -1 and * abbreviate the
			standard small games, so {0|0} and * denote the same position.`),
		Example: heredoc.Doc(`
			cgt classify '0'
			cgt classify '{0|0}'
			cgt classify '{1,*|0}'`),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := notation.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid game: %w", err)
			}
			log.Trace().
				Uint64("hash", uint64(g.Hash())).
				Int("height", g.Height()).
				Msg("parsed position")

			cmd.Printf("%s: %s\n", g, analysis.Classify(g))
			return nil
		},
	}
}
