// Package notation reads games written in bracket notation, the same syntax
// game.String renders: "{|}" is the empty game, "{0,*|1}" has left options
// 0 and * and right option 1. The names 0, 1, 2, -1 and * abbreviate the
// standard small games.
package notation

import (
	"fmt"
	"strings"

	"github.com/sakshamsharma/poleiro/game"
)

var names = []struct {
	text string
	game *game.Game
}{
	{"-1", game.MinusOne}, // before "1" so the sign is not left dangling
	{"2", game.Two},
	{"1", game.One},
	{"0", game.Zero},
	{"*", game.Star},
}

// Parse reads a single game from input. Whitespace between tokens is
// ignored. The whole input must be consumed.
func Parse(input string) (*game.Game, error) {
	p := &parser{input: input}
	g, err := p.game()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("unexpected %q at offset %d", p.rest(), p.pos)
	}
	return g, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) game() (*game.Game, error) {
	p.skipSpace()

	if p.eat("{") {
		return p.bracket()
	}
	for _, n := range names {
		if p.eat(n.text) {
			return n.game, nil
		}
	}
	if p.pos == len(p.input) {
		return nil, fmt.Errorf("expected a game at offset %d, got end of input", p.pos)
	}
	return nil, fmt.Errorf("expected a game at offset %d, got %q", p.pos, p.rest())
}

// bracket parses the remainder of a {left|right} form, the opening brace
// already consumed.
func (p *parser) bracket() (*game.Game, error) {
	left, err := p.options('|')
	if err != nil {
		return nil, err
	}
	if !p.eat("|") {
		return nil, fmt.Errorf("expected '|' at offset %d", p.pos)
	}
	right, err := p.options('}')
	if err != nil {
		return nil, err
	}
	if !p.eat("}") {
		return nil, fmt.Errorf("expected '}' at offset %d", p.pos)
	}
	return game.New(left, right), nil
}

// options parses a possibly empty comma-separated list of games, stopping
// before stop.
func (p *parser) options(stop byte) ([]*game.Game, error) {
	p.skipSpace()
	if p.peek() == stop {
		return nil, nil
	}

	var opts []*game.Game
	for {
		g, err := p.game()
		if err != nil {
			return nil, err
		}
		opts = append(opts, g)
		p.skipSpace()
		if !p.eat(",") {
			return opts, nil
		}
	}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t' || p.input[p.pos] == '\n') {
		p.pos++
	}
}

// peek returns the next byte without consuming it, or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// eat consumes prefix if it is next, skipping leading whitespace.
func (p *parser) eat(prefix string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.input[p.pos:], prefix) {
		p.pos += len(prefix)
		return true
	}
	return false
}

// rest returns a short view of the unconsumed input for error messages.
func (p *parser) rest() string {
	r := p.input[p.pos:]
	if len(r) > 10 {
		r = r[:10] + "..."
	}
	return r
}
