package game

// Sum returns the disjunctive sum of g1 and g2: on each turn the player to
// move picks exactly one component and makes a legal move in it, leaving the
// other untouched. A left option of the sum is therefore the sum with one
// component replaced by one of its left options (g1's options first, then
// g2's), and symmetrically for right.
//
// Each recursive call swaps exactly one argument for one of its own options,
// so the height of one of the two arguments shrinks on every step. Games are
// finite by construction, hence plain recursion bottoms out with no explicit
// depth bound.
func Sum(g1, g2 *Game) *Game {
	out := &Game{}
	if n := len(g1.left) + len(g2.left); n > 0 {
		out.left = make([]*Game, 0, n)
		for _, o := range g1.left {
			out.left = append(out.left, Sum(o, g2))
		}
		for _, o := range g2.left {
			out.left = append(out.left, Sum(g1, o))
		}
	}
	if n := len(g1.right) + len(g2.right); n > 0 {
		out.right = make([]*Game, 0, n)
		for _, o := range g1.right {
			out.right = append(out.right, Sum(o, g2))
		}
		for _, o := range g2.right {
			out.right = append(out.right, Sum(g1, o))
		}
	}
	return out
}

// Minus returns the game difference g1 - g2, the sum of g1 with g2's
// negation. Comparisons between games reduce to win analysis of their
// difference.
func Minus(g1, g2 *Game) *Game {
	return Sum(g1, g2.Negate())
}
