package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID    int
	Agent int // AgentConfig.ID of the controlled team
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped directory under root for one experiment.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := [][]string{{"id", "goroutines", "special_rate", "evaluation"}}
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Goroutines),
			strconv.FormatFloat(config.SpecialRate, 'f', -1, 64),
			config.Evaluation,
		})
	}
	return w.write("agent_configs.csv", rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := [][]string{{"id", "agent", "game_id", "turns", "score0", "score1", "score2", "winner", "start_time", "end_time", "duration"}}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent),
			strconv.Itoa(record.GameID),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Score[0]),
			strconv.Itoa(record.Score[1]),
			strconv.Itoa(record.Score[2]),
			strconv.Itoa(record.Winner),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		})
	}
	return w.write("game_records.csv", rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := [][]string{{"game", "turn", "team", "front", "back", "score0", "score1", "score2", "goroutines", "duration", "candidates", "best", "ties", "specials"}}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Turn),
			strconv.Itoa(record.Team),
			record.Front,
			record.Back,
			strconv.Itoa(record.Score[0]),
			strconv.Itoa(record.Score[1]),
			strconv.Itoa(record.Score[2]),
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Best),
			strconv.Itoa(record.Ties),
			strconv.Itoa(record.Specials),
		})
	}
	return w.write("move_records.csv", rows)
}

func (w *Writer) write(name string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
