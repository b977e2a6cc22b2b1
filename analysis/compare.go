package analysis

import "github.com/sakshamsharma/poleiro/game"

// Relation is the order between two games, read off from who wins their
// difference. The four relations are mutually exclusive and exhaustive.
type Relation int

const (
	// Greater: the first game is strictly greater.
	Greater Relation = iota
	// Less: the first game is strictly less.
	Less
	// Equivalent: indistinguishable under sums with any third game.
	Equivalent
	// Incomparable: whoever moves first in the difference wins.
	Incomparable
)

var relationName = map[Relation]string{
	Greater:      "greater",
	Less:         "less",
	Equivalent:   "equivalent",
	Incomparable: "incomparable",
}

func (r Relation) String() string {
	return relationName[r]
}

// Compare classifies g1 against g2 by playing out the difference g1 - g2:
// Left holding the advantage there means g1 is the greater game, Right means
// the lesser, a second-player win means the two are equivalent, and a
// first-player win means they are incomparable.
func Compare(g1, g2 *game.Game) Relation {
	return New().Compare(g1, g2)
}

func (e *Evaluator) Compare(g1, g2 *game.Game) Relation {
	switch e.Classify(game.Minus(g1, g2)) {
	case LeftWins:
		return Greater
	case RightWins:
		return Less
	case SecondWins:
		return Equivalent
	default:
		return Incomparable
	}
}

// Gt reports whether g1 is strictly greater than g2.
func Gt(g1, g2 *game.Game) bool {
	return Compare(g1, g2) == Greater
}

// Lt reports whether g1 is strictly less than g2.
func Lt(g1, g2 *game.Game) bool {
	return Compare(g1, g2) == Less
}

// Eq reports whether g1 and g2 are game-theoretically equivalent. This is
// weaker than game.StructEqual: Eq(Sum(Star, Star), Zero) holds even though
// the two games are shaped differently.
func Eq(g1, g2 *game.Game) bool {
	return Compare(g1, g2) == Equivalent
}

// Incomp reports whether g1 and g2 are incomparable, with neither side
// holding the advantage in their difference.
func Incomp(g1, g2 *game.Game) bool {
	return Compare(g1, g2) == Incomparable
}
