package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// RunConfig describes one batch of generated games within an experiment.
type RunConfig struct {
	ID       int
	Seed     uint64
	MaxDepth int
	MaxWidth int
	Games    int
}

// GameRecord is one classified game together with its evaluation metrics.
type GameRecord struct {
	ID      int
	Run     int // RunConfig.ID
	Game    string
	Height  int
	Outcome string
	EvalMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteRunConfigs(configs []RunConfig) error {
	// Create a file
	path := filepath.Join(w.baseDir, "run_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create run configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"id", "seed", "max_depth", "max_width", "games"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write run configs header: %w", err)
	}

	// Write each row
	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.FormatUint(config.Seed, 10),
			strconv.Itoa(config.MaxDepth),
			strconv.Itoa(config.MaxWidth),
			strconv.Itoa(config.Games),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write run config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"id", "run", "game", "height", "outcome", "positions", "memo_hits", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Run),
			record.Game,
			strconv.Itoa(record.Height),
			record.Outcome,
			strconv.Itoa(record.Positions),
			strconv.Itoa(record.MemoHits),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}
