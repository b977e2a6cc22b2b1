package game

import "strings"

// named maps the standard small games to their conventional abbreviations.
// Order matters only for determinism of the lookup.
var named = []struct {
	game *Game
	name string
}{
	{Zero, "0"},
	{One, "1"},
	{Two, "2"},
	{MinusOne, "-1"},
	{Star, "*"},
}

// String renders g in bracket notation, e.g. {1,*|0}. Games structurally
// equal to one of the standard small games print as their abbreviation.
// The notation package parses the same syntax back.
func (g *Game) String() string {
	var b strings.Builder
	g.render(&b)
	return b.String()
}

func (g *Game) render(b *strings.Builder) {
	for _, n := range named {
		if StructEqual(g, n.game) {
			b.WriteString(n.name)
			return
		}
	}

	b.WriteByte('{')
	for i, o := range g.left {
		if i > 0 {
			b.WriteByte(',')
		}
		o.render(b)
	}
	b.WriteByte('|')
	for i, o := range g.right {
		if i > 0 {
			b.WriteByte(',')
		}
		o.render(b)
	}
	b.WriteByte('}')
}
