package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"cubepaint/communication"
	"cubepaint/communication/client"
	"cubepaint/engine"
	"cubepaint/experiments"
	"cubepaint/experiments/metrics"
	"cubepaint/gamemaster"
	"cubepaint/meta"
	"cubepaint/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "config.yaml", "YAML config file, optional")
	local := flag.Bool("local", false, "play against the in-process game master")
	experiment := flag.String("experiment", "", "run an offline experiment: evaluation or throughput")
	seed := flag.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	config, err := meta.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(level)

	if *seed != 0 {
		config.Seed = *seed
	}
	if config.Seed == 0 {
		config.Seed = uint64(time.Now().UnixNano())
	}
	log.Info().Msgf("seed %d", config.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *experiment != "" {
		runExperiment(ctx, *experiment, config)
		return
	}

	var server communication.Server
	if *local {
		server = gamemaster.NewLocal(config.Specials, opponents(config)...)
	} else {
		server = client.NewHTTPClient(config.GameServer, config.Token, config.Retries, config.RetryDelay)
	}

	bot, err := experiments.NewLookahead(agentConfig(config), 0, config.Seed, config.MetricsDir != "")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create searcher")
	}
	options := []engine.Option{
		engine.WithPractice(config.PracticeMode, config.PracticeDelay),
		engine.WithRand(searcher.NewRand(config.Seed + 3)),
	}
	if config.GameID > 0 && !*local {
		options = append(options, engine.WithGameID(config.GameID))
	}

	result, err := engine.NewRemote(server, bot, options...).Run(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	log.Info().Msgf("final score %v, winner %d", result.Game.Score, result.Game.Winner)

	if config.MetricsDir != "" {
		writeRecords(config, result)
	}
}

func agentConfig(config meta.Config) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:          1,
		Goroutines:  config.Goroutines,
		SpecialRate: *config.SpecialRate,
		Evaluation:  config.Evaluation,
	}
}

func opponents(config meta.Config) []gamemaster.Opponent {
	var opps []gamemaster.Opponent
	for team := 1; team <= 2; team++ {
		o, err := experiments.NewLookahead(agentConfig(config), team, config.Seed+uint64(team), false)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create opponent")
		}
		opps = append(opps, o)
	}
	return opps
}

func runExperiment(ctx context.Context, name string, config meta.Config) {
	root := config.MetricsDir
	if root == "" {
		root = "experiments/results"
	}

	var dir string
	var err error
	switch name {
	case "evaluation":
		dir, err = experiments.RunEvaluationExperiment(ctx, root, config.Seed)
	case "throughput":
		dir, err = experiments.RunThroughputExperiment(ctx, root, config.Seed)
	default:
		log.Fatal().Msgf("unknown experiment %q", name)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", name)
	}
	log.Info().Msgf("results written to %s", dir)
}

func writeRecords(config meta.Config, result engine.Result) {
	writer, err := metrics.NewWriter(config.MetricsDir, "games")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create writer")
	}
	if err := writer.WriteGameRecords([]metrics.GameRecord{{ID: 1, Agent: 1, GameMetric: result.Game}}); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	moves := make([]metrics.MoveRecord, len(result.Moves))
	for i, mm := range result.Moves {
		moves[i] = metrics.MoveRecord{Game: 1, MoveMetric: mm}
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		log.Fatal().Err(err).Msg("failed to write move records")
	}
	log.Info().Msgf("records written to %s", writer.Dir())
}
