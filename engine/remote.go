package engine

import (
	"context"
	"fmt"
	"time"

	"cubepaint/communication"
	"cubepaint/experiments/metrics"
	"cubepaint/game"
	"cubepaint/searcher"

	"github.com/rs/zerolog/log"
)

type Option func(r *Remote)

// WithGameID joins an existing match instead of starting a practice one.
func WithGameID(id int) Option {
	return func(r *Remote) {
		r.gameID = id
	}
}

// WithPractice sets the mode and delay sent when starting a practice match.
func WithPractice(mode, delay int) Option {
	return func(r *Remote) {
		r.mode = mode
		r.delay = delay
	}
}

func WithRand(rand searcher.Rand) Option {
	return func(r *Remote) {
		if rand != nil {
			r.rand = rand
		}
	}
}

// Remote drives team 0 through a match server, one decision pair per turn.
type Remote struct {
	server   communication.Server
	searcher searcher.Searcher
	gameID   int
	mode     int
	delay    int
	rand     searcher.Rand
}

func NewRemote(server communication.Server, s searcher.Searcher, options ...Option) *Remote {
	r := &Remote{
		server:   server,
		searcher: s,
	}
	for _, option := range options {
		option(r)
	}
	if r.rand == nil {
		r.rand = searcher.NewRand(uint64(time.Now().UnixNano()))
	}
	return r
}

func (r *Remote) Run(ctx context.Context) (Result, error) {
	var result Result

	gameID, err := r.resolveGame(ctx)
	if err != nil {
		return result, err
	}
	result.Game.GameID = gameID
	result.Game.StartTime = time.Now()
	log.Info().Msgf("playing game %d", gameID)

	// The first turn has no state to search from.
	pair := searcher.Pair{
		Front: game.BasicMove(r.rand.Intn(4)),
		Back:  game.BasicMove(r.rand.Intn(4)),
	}

	for {
		res, err := r.server.Move(ctx, gameID, pair.Front.String(), pair.Back.String())
		if err != nil {
			return result, fmt.Errorf("game %d turn %d: %w", gameID, result.Game.Turns, err)
		}

		switch res.Status {
		case communication.StatusAlreadyMoved:
			continue
		case communication.StatusOK:
		default:
			r.finish(&result, res)
			return result, nil
		}

		state, err := game.FromSnapshot(res.Snapshot)
		if err != nil {
			return result, fmt.Errorf("game %d turn %d: %w", gameID, res.Turn, err)
		}
		result.Game.Turns = state.Turn
		result.Game.Score = state.Score
		log.Info().Msgf("turn %d score %v area %v", state.Turn, state.Score,
			[game.Teams]int{state.Field.Area(0), state.Field.Area(1), state.Field.Area(2)})

		var search metrics.SearchMetric
		pair, search = r.searcher.FindMove(state)
		result.Moves = append(result.Moves, metrics.MoveMetric{
			Turn:         state.Turn,
			Team:         0,
			Front:        pair.Front.String(),
			Back:         pair.Back.String(),
			Score:        state.Score,
			SearchMetric: search,
		})
	}
}

func (r *Remote) resolveGame(ctx context.Context) (int, error) {
	if r.gameID > 0 {
		return r.gameID, nil
	}
	res, err := r.server.Start(ctx, r.mode, r.delay)
	if err != nil {
		return 0, fmt.Errorf("start: %w", err)
	}
	if res.Status != communication.StatusOK && res.Status != communication.StatusStarted {
		return 0, fmt.Errorf("start: unexpected status %q", res.Status)
	}
	log.Info().Msgf("started game %d at %d", res.GameID, res.Start)
	return res.GameID, nil
}

func (r *Remote) finish(result *Result, res communication.MoveResponse) {
	result.Game.EndTime = time.Now()
	result.Game.Duration = result.Game.EndTime.Sub(result.Game.StartTime)
	if res.Status == communication.StatusGameFinished {
		result.Game.Turns = res.Turn
		result.Game.Score = res.Score
	}
	result.Game.Winner = metrics.Winner(result.Game.Score)
	log.Info().Msgf("game %d ended with status %s after %d turns, score %v",
		result.Game.GameID, res.Status, result.Game.Turns, result.Game.Score)
}
