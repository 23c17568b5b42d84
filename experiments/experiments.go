package experiments

import (
	"context"
	"fmt"

	"cubepaint/engine"
	"cubepaint/experiments/metrics"
	"cubepaint/game"
	"cubepaint/gamemaster"
	"cubepaint/searcher"

	"github.com/rs/zerolog/log"
)

const (
	NumGames = 10 // Per agent config
	Specials = 2  // Charges per agent in every match
)

// Opponent config for teams 1 and 2 in every match
var baseline = metrics.AgentConfig{ID: 0, Goroutines: 4, SpecialRate: searcher.DefaultSpecialRate, Evaluation: "owned"}

var evaluationConfigs = []metrics.AgentConfig{
	{ID: 1, Goroutines: 4, SpecialRate: searcher.DefaultSpecialRate, Evaluation: "owned"}, // Baseline equivalent
	{ID: 2, Goroutines: 4, SpecialRate: searcher.DefaultSpecialRate, Evaluation: "margin"},
	{ID: 3, Goroutines: 4, SpecialRate: 0, Evaluation: "owned"},
	{ID: 4, Goroutines: 4, SpecialRate: 0.3, Evaluation: "owned"},
}

// RunEvaluationExperiment compares evaluation functions and special rates
// against the baseline opponents.
func RunEvaluationExperiment(ctx context.Context, root string, seed uint64) (string, error) {
	return RunSelfPlay(ctx, root, "evaluation", evaluationConfigs, NumGames, seed)
}

// RunSelfPlay plays games offline matches per config, the config controlling
// team 0 against two baseline opponents, and writes CSV records under root.
// It returns the directory holding the records.
func RunSelfPlay(ctx context.Context, root, name string, configs []metrics.AgentConfig, games int, seed uint64) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %+v", ci+1, len(configs), config)

		for i := 0; i < games; i++ {
			count++
			result, err := runGame(ctx, config, seed+uint64(count)*4)
			if err != nil {
				return "", fmt.Errorf("config %d game %d: %w", config.ID, i+1, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent:      config.ID,
				GameMetric: result.Game,
			})
			for _, mm := range result.Moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed config %d game %d of %d with score %v", config.ID, i+1, games, result.Game.Score)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(append([]metrics.AgentConfig{baseline}, configs...)); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays one offline match; seed through seed+3 are consumed.
func runGame(ctx context.Context, config metrics.AgentConfig, seed uint64) (engine.Result, error) {
	opponents := []gamemaster.Opponent{}
	for team := 1; team < game.Teams; team++ {
		o, err := NewLookahead(baseline, team, seed+uint64(team), false)
		if err != nil {
			return engine.Result{}, err
		}
		opponents = append(opponents, o)
	}
	server := gamemaster.NewLocal(Specials, opponents...)

	bot, err := NewLookahead(config, 0, seed, true)
	if err != nil {
		return engine.Result{}, err
	}
	e := engine.NewRemote(server, bot, engine.WithRand(searcher.NewRand(seed+3)))
	return e.Run(ctx)
}

// NewLookahead builds the searcher described by config for team.
func NewLookahead(config metrics.AgentConfig, team int, seed uint64, collect bool) (*searcher.Lookahead, error) {
	evaluate, err := game.EvaluationByName(config.Evaluation)
	if err != nil {
		return nil, err
	}
	options := []searcher.Option{
		searcher.WithTeam(team),
		searcher.WithSpecialRate(config.SpecialRate),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithRand(searcher.NewRand(seed)),
	}
	if collect {
		options = append(options, searcher.WithMetrics())
	}
	return searcher.NewLookahead(config.Goroutines, options...), nil
}
