package game

import "golang.org/x/exp/rand"

// Generator produces random bounded-shape games. Property tests and batch
// experiments use it to exercise the algebra on positions beyond the
// standard small games. A generator with a fixed seed is deterministic.
type Generator struct {
	rng      *rand.Rand
	maxDepth int
	maxWidth int
}

type GeneratorOption func(gen *Generator)

// WithMaxDepth bounds the height of generated games to depth+1.
func WithMaxDepth(depth int) GeneratorOption {
	return func(gen *Generator) {
		if depth >= 0 {
			gen.maxDepth = depth
		}
	}
}

// WithMaxWidth bounds the number of options per side at every position.
func WithMaxWidth(width int) GeneratorOption {
	return func(gen *Generator) {
		if width >= 0 {
			gen.maxWidth = width
		}
	}
}

func NewGenerator(seed uint64, options ...GeneratorOption) *Generator {
	gen := &Generator{ // Default shape keeps sums of three games tractable
		rng:      rand.New(rand.NewSource(seed)),
		maxDepth: 3,
		maxWidth: 2,
	}
	for _, option := range options {
		option(gen)
	}
	return gen
}

// Game returns the next random game.
func (gen *Generator) Game() *Game {
	return gen.game(gen.maxDepth)
}

func (gen *Generator) game(depth int) *Game {
	if depth == 0 {
		return Zero
	}
	return New(gen.options(depth), gen.options(depth))
}

func (gen *Generator) options(depth int) []*Game {
	n := gen.rng.Intn(gen.maxWidth + 1)
	if n == 0 {
		return nil
	}
	opts := make([]*Game, n)
	for i := range opts {
		opts[i] = gen.game(depth - 1)
	}
	return opts
}
