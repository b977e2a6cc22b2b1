// Package analysis evaluates games: who wins under optimal play, the
// four-way outcome classification, and the order between two games derived
// from the outcome of their difference.
//
// Every predicate here is a specialization of the single generic Wins. The
// left-biased and first/second-player forms are kept because comparisons are
// conventionally phrased in terms of them, but none has its own recursion.
package analysis

import "github.com/sakshamsharma/poleiro/game"

// Wins reports whether side s wins g under optimal play when mover is the
// side to move. See Evaluator.Wins; this form uses a fresh evaluator and
// stays a pure function of its arguments.
func Wins(s, mover game.Side, g *game.Game) bool {
	return New().Wins(s, mover, g)
}

// AlwaysWins reports whether s wins g no matter who moves first.
func AlwaysWins(s game.Side, g *game.Game) bool {
	return New().AlwaysWins(s, g)
}

// LeftWinsGoingFirst reports whether Left wins g when Left moves first.
func LeftWinsGoingFirst(g *game.Game) bool {
	return Wins(game.Left, game.Left, g)
}

// LeftWinsGoingSecond reports whether Left wins g when Right moves first.
func LeftWinsGoingSecond(g *game.Game) bool {
	return Wins(game.Left, game.Right, g)
}

// FirstPlayerWins reports whether whoever moves first wins g.
func FirstPlayerWins(g *game.Game) bool {
	return Classify(g) == FirstWins
}

// SecondPlayerWins reports whether whoever moves second wins g.
func SecondPlayerWins(g *game.Game) bool {
	return Classify(g) == SecondWins
}
