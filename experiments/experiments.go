package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/sakshamsharma/poleiro/analysis"
	"github.com/sakshamsharma/poleiro/experiments/metrics"
	"github.com/sakshamsharma/poleiro/game"
)

const NumGames = 100 // Per shape

// Each run grows the shape of the generated games so the records show how
// evaluation cost scales with height and width.
var shapeConfigs = []metrics.RunConfig{
	{ID: 1, Seed: 1, MaxDepth: 2, MaxWidth: 2, Games: NumGames},
	{ID: 2, Seed: 2, MaxDepth: 3, MaxWidth: 2, Games: NumGames},
	{ID: 3, Seed: 3, MaxDepth: 3, MaxWidth: 3, Games: NumGames},
	{ID: 4, Seed: 4, MaxDepth: 4, MaxWidth: 2, Games: NumGames},
}

// RunClassificationExperiment classifies batches of random games and stores
// a record per game: its outcome class and how much work the evaluator did.
func RunClassificationExperiment() {
	runExperiment("classification", shapeConfigs)
}

// RunComparisonExperiment compares consecutive pairs of generated games.
// Comparisons run over the difference game, whose size is roughly the
// product of the component sizes, so the per-game metrics here show the
// memo table earning its keep.
func RunComparisonExperiment() {
	runExperiment("comparison", shapeConfigs)
}

func runExperiment(name string, configs []metrics.RunConfig) {
	count := 0
	gameRecords := []metrics.GameRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for ci, config := range configs {
		log.Info().Msgf("starting run %d of %d with shape depth=%d width=%d...",
			ci+1, len(configs), config.MaxDepth, config.MaxWidth)

		generator := game.NewGenerator(config.Seed,
			game.WithMaxDepth(config.MaxDepth),
			game.WithMaxWidth(config.MaxWidth))

		var previous *game.Game
		for i := 0; i < config.Games; i++ {
			g := generator.Game()
			subject := g
			if name == "comparison" {
				if previous == nil {
					previous = g
					continue
				}
				subject = game.Minus(g, previous)
				previous = g
			}

			collector := metrics.NewCollector()
			evaluator := analysis.New(analysis.WithMetrics(collector))

			collector.Start()
			outcome := evaluator.Classify(subject)
			metric := collector.Complete()

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Run:        config.ID,
				Game:       subject.String(),
				Height:     subject.Height(),
				Outcome:    outcome.String(),
				EvalMetric: metric,
			})
		}
		log.Info().Msgf("completed run %d of %d", ci+1, len(configs))
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteRunConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store run configs: %v", err))
	}
	log.Info().Msg("stored run configs")

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")
}
