package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(4)
	for i := 0; i < 16; i++ {
		c.AddCandidate()
	}
	c.SetBest(12, 3)
	c.AddSpecial()

	m := c.Complete()
	require.Equal(t, 4, m.Goroutines)
	require.Equal(t, 16, m.Candidates)
	require.Equal(t, 12, m.Best)
	require.Equal(t, 3, m.Ties)
	require.Equal(t, 1, m.Specials)

	c.Start(1)
	require.Equal(t, 0, c.Complete().Candidates, "Start resets the counters")
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(8)
	c.AddCandidate()
	require.Equal(t, SearchMetric{}, c.Complete())
}

func TestWinner(t *testing.T) {
	require.Equal(t, 1, Winner([3]int{3, 9, 4}))
	require.Equal(t, -1, Winner([3]int{9, 9, 4}))
	require.Equal(t, 2, Winner([3]int{1, 1, 4}))
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "selfplay")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Goroutines: 4, SpecialRate: 0.1, Evaluation: "owned"}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, Agent: 1, GameMetric: GameMetric{Turns: 294, Score: [3]int{5, 6, 7}, Winner: 2, Duration: time.Second}}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, MoveMetric: MoveMetric{Turn: 3, Front: "1", Back: "2s"}}}))

	rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{{"id", "goroutines", "special_rate", "evaluation"}, {"1", "4", "0.1", "owned"}}, rows)

	rows = readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"1", "1", "0", "294", "5", "6", "7", "2"}, rows[1][:8])

	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, "2s", rows[1][4])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
