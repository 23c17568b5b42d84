package experiments

import (
	"context"

	"cubepaint/experiments/metrics"
	"cubepaint/searcher"
)

var throughputConfigs = []metrics.AgentConfig{
	{ID: 1, Goroutines: 1, SpecialRate: searcher.DefaultSpecialRate, Evaluation: "owned"},
	{ID: 2, Goroutines: 2, SpecialRate: searcher.DefaultSpecialRate, Evaluation: "owned"},
	{ID: 3, Goroutines: 4, SpecialRate: searcher.DefaultSpecialRate, Evaluation: "owned"},
	{ID: 4, Goroutines: 8, SpecialRate: searcher.DefaultSpecialRate, Evaluation: "owned"},
	{ID: 5, Goroutines: 16, SpecialRate: searcher.DefaultSpecialRate, Evaluation: "owned"},
}

// RunThroughputExperiment measures search time per turn as the worker count
// grows.
func RunThroughputExperiment(ctx context.Context, root string, seed uint64) (string, error) {
	const NumGames = 2
	return RunSelfPlay(ctx, root, "throughput", throughputConfigs, NumGames, seed)
}
