package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sakshamsharma/poleiro/game"
)

func TestCompare(t *testing.T) {
	testCases := []struct {
		name string
		g1   *game.Game
		g2   *game.Game
		want Relation
	}{
		{"one exceeds zero", game.One, game.Zero, Greater},
		{"two exceeds one", game.Two, game.One, Greater},
		{"minus one is below zero", game.MinusOne, game.Zero, Less},
		{"star is incomparable with zero", game.Star, game.Zero, Incomparable},
		{"star plus star is zero", game.Sum(game.Star, game.Star), game.Zero, Equivalent},
		{"every game equals itself", game.Star, game.Star, Equivalent},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Compare(tc.g1, tc.g2))
		})
	}
}

func TestComparisonPredicates(t *testing.T) {
	require.True(t, Gt(game.One, game.Zero), "1 should be greater than 0")
	require.True(t, Lt(game.MinusOne, game.Zero), "-1 should be less than 0")
	require.True(t, Eq(game.Sum(game.Star, game.Star), game.Zero), "*+* should be equivalent to 0")
	require.True(t, Incomp(game.Star, game.Zero), "* should be incomparable with 0")

	require.False(t, Eq(game.Star, game.Zero), "* should not be equivalent to 0")
	require.False(t, Gt(game.Zero, game.One), "0 should not be greater than 1")
}

func TestExactlyOneRelation(t *testing.T) {
	gen := game.NewGenerator(23, game.WithMaxDepth(2))
	for i := 0; i < 15; i++ {
		g1 := gen.Game()
		g2 := gen.Game()
		held := 0
		for _, relation := range []bool{Gt(g1, g2), Lt(g1, g2), Eq(g1, g2), Incomp(g1, g2)} {
			if relation {
				held++
			}
		}
		require.Equal(t, 1, held, "Exactly one relation should hold between %s and %s", g1, g2)
	}
}

func TestAntisymmetry(t *testing.T) {
	gen := game.NewGenerator(29, game.WithMaxDepth(2))
	for i := 0; i < 15; i++ {
		g1 := gen.Game()
		g2 := gen.Game()
		require.Equal(t, Gt(g1, g2), Lt(g2, g1),
			"%s exceeding %s should match %s falling below %s", g1, g2, g2, g1)
	}
}

func TestSumIdentity(t *testing.T) {
	gen := game.NewGenerator(31, game.WithMaxDepth(2))
	for i := 0; i < 15; i++ {
		g := gen.Game()
		require.True(t, Eq(game.Sum(g, game.Zero), g),
			"Summing %s with the empty game should not change its value", g)
	}
}

func TestAdditiveInverse(t *testing.T) {
	gen := game.NewGenerator(37, game.WithMaxDepth(2))
	for i := 0; i < 15; i++ {
		g := gen.Game()
		require.True(t, Eq(game.Sum(g, g.Negate()), game.Zero),
			"%s plus its negation should be equivalent to the empty game", g)
	}
}

func TestSumCommutativity(t *testing.T) {
	games := []*game.Game{game.Zero, game.One, game.MinusOne, game.Star,
		game.New([]*game.Game{game.Star}, []*game.Game{game.One})}
	for _, g1 := range games {
		for _, g2 := range games {
			require.True(t, Eq(game.Sum(g1, g2), game.Sum(g2, g1)),
				"%s + %s should be equivalent to %s + %s", g1, g2, g2, g1)
		}
	}
}

func TestSumAssociativity(t *testing.T) {
	// Kept to small games: the difference of two three-way sums is already
	// a sizable tree
	games := []*game.Game{game.One, game.MinusOne, game.Star}
	for _, g1 := range games {
		for _, g2 := range games {
			for _, g3 := range games {
				require.True(t,
					Eq(game.Sum(game.Sum(g1, g2), g3), game.Sum(g1, game.Sum(g2, g3))),
					"Grouping of %s + %s + %s should not matter", g1, g2, g3)
			}
		}
	}
}
