package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNegate(t *testing.T) {
	t.Run("swapping roles", func(t *testing.T) {
		require.True(t, StructEqual(MinusOne, One.Negate()), "Negating {0|} should give {|0}")
		require.True(t, StructEqual(One, MinusOne.Negate()), "Negating {|0} should give {0|}")
		require.True(t, StructEqual(Zero, Zero.Negate()), "The terminal game should be its own negation")
		require.True(t, StructEqual(Star, Star.Negate()), "Star should be its own negation")
	})

	t.Run("preserving option order", func(t *testing.T) {
		g := New(nil, []*Game{One, Star})
		negated := g.Negate()

		require.True(t, StructEqual(MinusOne, negated.LeftOptions()[0]),
			"First right option should become first left option, negated")
		require.True(t, StructEqual(Star, negated.LeftOptions()[1]),
			"Second right option should become second left option, negated")
		require.Empty(t, negated.RightOptions(), "No left options should mean no negated right options")
	})

	t.Run("involution", func(t *testing.T) {
		gen := NewGenerator(11)
		for i := 0; i < 50; i++ {
			g := gen.Game()
			require.True(t, StructEqual(g, g.Negate().Negate()),
				"Double negation of %s should be structurally equal to it", g)
		}
	})
}
