package analysis

import "github.com/sakshamsharma/poleiro/game"

// Outcome classifies a game by who wins it under optimal play. Exactly one
// class holds for every game: perfect play is determined, so for each
// starting side either Left or Right wins, and the four combinations are
// the four classes.
type Outcome int

const (
	// LeftWins: Left wins no matter who starts.
	LeftWins Outcome = iota
	// RightWins: Right wins no matter who starts.
	RightWins
	// FirstWins: whoever moves first wins.
	FirstWins
	// SecondWins: whoever moves second wins.
	SecondWins
)

var outcomeName = map[Outcome]string{
	LeftWins:   "Left wins",
	RightWins:  "Right wins",
	FirstWins:  "first player wins",
	SecondWins: "second player wins",
}

func (o Outcome) String() string {
	return outcomeName[o]
}

// Classify returns the outcome class of g.
func Classify(g *game.Game) Outcome {
	return New().Classify(g)
}

// Classify answers two win queries about g through the evaluator's memo
// table, so the second reuses everything the first computed.
func (e *Evaluator) Classify(g *game.Game) Outcome {
	leftFirst := e.Wins(game.Left, game.Left, g)
	leftSecond := e.Wins(game.Left, game.Right, g)
	switch {
	case leftFirst && leftSecond:
		return LeftWins
	case !leftFirst && !leftSecond:
		return RightWins
	case leftFirst:
		return FirstWins
	default:
		return SecondWins
	}
}
