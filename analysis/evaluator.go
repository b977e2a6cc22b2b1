package analysis

import (
	"sync"

	"github.com/sakshamsharma/poleiro/experiments/metrics"
	"github.com/sakshamsharma/poleiro/game"
)

// key identifies one evaluation: which side we ask about, whose turn it is,
// and the position. Games are immutable and shared by pointer, so pointer
// identity is a sound cache key.
type key struct {
	g     *game.Game
	side  game.Side
	mover game.Side
}

// Evaluator answers win queries over games, caching results for sub-games
// that recur. The cache is read-through and never invalidated: games are
// immutable, so a cached answer can never go stale. A single Evaluator is
// safe for concurrent use; two goroutines racing on the same key at worst
// compute the same answer twice.
type Evaluator struct {
	mu      sync.RWMutex
	memo    map[key]bool
	metrics metrics.Collector
}

type Option func(e *Evaluator)

// WithMetrics attaches a collector counting evaluated positions and memo
// hits.
func WithMetrics(c metrics.Collector) Option {
	return func(e *Evaluator) {
		if c != nil {
			e.metrics = c
		}
	}
}

func New(options ...Option) *Evaluator {
	e := &Evaluator{ // Default values
		memo:    make(map[key]bool),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Wins reports whether side s wins g under optimal play when mover is the
// side to move. The mover wins if some option of theirs is winning for s
// with the turn handed over; the waiting side wins only if every option
// keeps s winning. The empty cases give the normal play convention: a mover
// with no options has lost.
func (e *Evaluator) Wins(s, mover game.Side, g *game.Game) bool {
	k := key{g: g, side: s, mover: mover}

	e.mu.RLock()
	result, ok := e.memo[k]
	e.mu.RUnlock()
	if ok {
		e.metrics.AddMemoHit()
		return result
	}

	e.metrics.AddPosition()
	if s == mover {
		result = false
		for _, m := range g.Options(mover) {
			if e.Wins(s, mover.Other(), m) {
				result = true
				break
			}
		}
	} else {
		result = true
		for _, m := range g.Options(mover) {
			if !e.Wins(s, mover.Other(), m) {
				result = false
				break
			}
		}
	}

	e.mu.Lock()
	e.memo[k] = result
	e.mu.Unlock()
	return result
}

// AlwaysWins reports whether s wins g no matter who moves first.
func (e *Evaluator) AlwaysWins(s game.Side, g *game.Game) bool {
	return e.Wins(s, s, g) && e.Wins(s, s.Other(), g)
}
