package analysis

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sakshamsharma/poleiro/experiments/metrics"
	"github.com/sakshamsharma/poleiro/game"
)

func TestEvaluatorMemo(t *testing.T) {
	t.Run("repeated query answered from the memo", func(t *testing.T) {
		collector := metrics.NewCollector()
		evaluator := New(WithMetrics(collector))
		g := game.Sum(game.Star, game.Star)

		collector.Start()
		first := evaluator.Wins(game.Left, game.Left, g)
		cold := collector.Complete()

		collector.Start()
		second := evaluator.Wins(game.Left, game.Left, g)
		warm := collector.Complete()

		require.Equal(t, first, second, "Memoized answer should match the computed one")
		require.Positive(t, cold.Positions, "First query should evaluate positions")
		require.Zero(t, warm.Positions, "Second query should evaluate nothing new")
		require.Equal(t, 1, warm.MemoHits, "Second query should be a single memo hit")
	})

	t.Run("memo distinguishes side and mover", func(t *testing.T) {
		evaluator := New()

		require.False(t, evaluator.Wins(game.Left, game.Left, game.Zero),
			"Left moving first in the empty game should lose")
		require.True(t, evaluator.Wins(game.Left, game.Right, game.Zero),
			"Left moving second in the empty game should win")
		require.True(t, evaluator.Wins(game.Right, game.Left, game.Zero),
			"Right moving second in the empty game should win")
	})

	t.Run("shared sub-games hit the memo", func(t *testing.T) {
		collector := metrics.NewCollector()
		evaluator := New(WithMetrics(collector))
		// Both options are the same *Game, so the second is free
		g := game.New([]*game.Game{game.Star, game.Star}, nil)

		collector.Start()
		evaluator.Wins(game.Left, game.Left, g)
		metric := collector.Complete()

		require.Positive(t, metric.MemoHits, "The shared option should be answered from the memo")
	})

	t.Run("concurrent population", func(t *testing.T) {
		evaluator := New()
		g := game.Sum(game.Sum(game.Star, game.One), game.MinusOne)

		var wg sync.WaitGroup
		results := make([]Outcome, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = evaluator.Classify(g)
			}(i)
		}
		wg.Wait()

		for i, r := range results {
			require.Equal(t, results[0], r, "Goroutine %d should agree on the outcome", i)
		}
	})
}

func TestEvaluatorReuse(t *testing.T) {
	// Classify asks two questions about the same game; comparing a game
	// against itself then reuses the whole difference analysis.
	evaluator := New()
	d := game.Minus(game.Star, game.Star)

	require.Equal(t, SecondWins, evaluator.Classify(d), "*-* should be a second player win")
	require.Equal(t, Equivalent, evaluator.Compare(game.Star, game.Star),
		"A game should be equivalent to itself")
}
