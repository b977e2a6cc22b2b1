package game

// Negate returns the game with the players' roles exchanged throughout: its
// left options are the negations of g's right options and vice versa, in the
// original order. Negation is an involution, g.Negate().Negate() is
// structurally equal to g.
//
// Negation reduces reasoning about Right to reasoning about Left (Right wins
// g exactly when Left wins the negation) and defines subtraction via Minus.
func (g *Game) Negate() *Game {
	out := &Game{}
	if len(g.right) > 0 {
		out.left = make([]*Game, len(g.right))
		for i, o := range g.right {
			out.left[i] = o.Negate()
		}
	}
	if len(g.left) > 0 {
		out.right = make([]*Game, len(g.left))
		for i, o := range g.left {
			out.right[i] = o.Negate()
		}
	}
	return out
}
