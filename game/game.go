package game

// Game is a two-player, perfect-information position, given entirely by the
// positions each player could move to. Values are immutable and built
// strictly bottom-up: New only accepts games that already exist, so no game
// ever contains itself and every recursion over options terminates.
//
// Option order carries no game-theoretic meaning but is preserved so that
// traversals and printed forms are deterministic.
type Game struct {
	left  []*Game
	right []*Game
}

// New builds a game from its left and right options. The option slices are
// copied; the option games themselves are shared by pointer, so a small game
// like One can appear under any number of parents without duplication.
func New(left, right []*Game) *Game {
	g := &Game{}
	if len(left) > 0 {
		g.left = make([]*Game, len(left))
		copy(g.left, left)
	}
	if len(right) > 0 {
		g.right = make([]*Game, len(right))
		copy(g.right, right)
	}
	return g
}

// LeftOptions returns the positions Left may move to. The returned slice is
// shared with the game and must not be modified.
func (g *Game) LeftOptions() []*Game { return g.left }

// RightOptions returns the positions Right may move to. The returned slice
// is shared with the game and must not be modified.
func (g *Game) RightOptions() []*Game { return g.right }

// Options returns the option list belonging to side s.
func (g *Game) Options(s Side) []*Game {
	if s == Left {
		return g.left
	}
	return g.right
}

// Terminal reports whether neither player has a move.
func (g *Game) Terminal() bool {
	return len(g.left) == 0 && len(g.right) == 0
}

// Height returns the maximum nesting depth of g: 1 for a terminal game,
// otherwise 1 plus the height of the tallest option. Every option is
// strictly shallower than its parent, which is the bound that makes the
// recursive operators on games terminate.
func (g *Game) Height() int {
	tallest := 0
	for _, o := range g.left {
		if h := o.Height(); h > tallest {
			tallest = h
		}
	}
	for _, o := range g.right {
		if h := o.Height(); h > tallest {
			tallest = h
		}
	}
	return tallest + 1
}

// StructEqual reports whether two games have exactly the same tree shape,
// option order included. This is stronger than game-value equivalence:
// analysis.Eq can hold between structurally different games (Star summed
// with itself is equivalent to Zero but shaped nothing like it).
func StructEqual(g1, g2 *Game) bool {
	if g1 == g2 {
		return true
	}
	if len(g1.left) != len(g2.left) || len(g1.right) != len(g2.right) {
		return false
	}
	for i, o := range g1.left {
		if !StructEqual(o, g2.left[i]) {
			return false
		}
	}
	for i, o := range g1.right {
		if !StructEqual(o, g2.right[i]) {
			return false
		}
	}
	return true
}
