package engine

import (
	"context"
	"errors"
	"testing"

	"cubepaint/communication"
	"cubepaint/game"
	"cubepaint/gamemaster"
	"cubepaint/searcher"

	"github.com/stretchr/testify/require"
)

// scriptedServer replays fixed move statuses and records what it was sent.
type scriptedServer struct {
	startStatus string
	statuses    []string
	sent        [][2]string
	started     int
}

func (s *scriptedServer) Start(ctx context.Context, mode, delay int) (communication.StartResponse, error) {
	s.started++
	return communication.StartResponse{Status: s.startStatus, GameID: 7}, nil
}

func (s *scriptedServer) Move(ctx context.Context, gameID int, front, back string) (communication.MoveResponse, error) {
	if len(s.statuses) == 0 {
		return communication.MoveResponse{}, errors.New("script exhausted")
	}
	s.sent = append(s.sent, [2]string{front, back})
	status := s.statuses[0]
	s.statuses = s.statuses[1:]

	snapshot := game.NewGameState(2).Snapshot()
	snapshot.Turn = len(s.sent)
	snapshot.Score = [game.Teams]int{5, 3, 1}
	return communication.MoveResponse{Status: status, Snapshot: snapshot}, nil
}

func TestRemoteRun(t *testing.T) {
	ctx := context.Background()

	t.Run("full offline match", func(t *testing.T) {
		server := gamemaster.NewLocal(2,
			searcher.NewLookahead(2, searcher.WithTeam(1), searcher.WithRand(searcher.NewRand(1))),
			searcher.NewLookahead(2, searcher.WithTeam(2), searcher.WithRand(searcher.NewRand(2))),
		)
		bot := searcher.NewLookahead(2, searcher.WithRand(searcher.NewRand(3)), searcher.WithMetrics())
		r := NewRemote(server, bot, WithRand(searcher.NewRand(4)))

		result, err := r.Run(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, result.Game.GameID)
		require.Equal(t, game.TotalTurns, result.Game.Turns)
		require.Len(t, result.Moves, game.TotalTurns)
		require.Equal(t, server.State().Score, result.Game.Score)
		require.Equal(t, 16, result.Moves[0].Candidates)
		require.False(t, result.Game.EndTime.Before(result.Game.StartTime))
	})

	t.Run("already moved resends without deciding", func(t *testing.T) {
		server := &scriptedServer{
			startStatus: communication.StatusStarted,
			statuses: []string{
				communication.StatusOK,
				communication.StatusAlreadyMoved,
				communication.StatusAlreadyMoved,
				communication.StatusGameFinished,
			},
		}
		bot := searcher.NewLookahead(1, searcher.WithSpecialRate(0), searcher.WithRand(searcher.NewRand(5)))
		r := NewRemote(server, bot, WithRand(searcher.NewRand(6)))

		result, err := r.Run(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, server.started)
		require.Len(t, server.sent, 4)
		require.Equal(t, server.sent[1], server.sent[2])
		require.Equal(t, server.sent[1], server.sent[3])
		require.Len(t, result.Moves, 1)
		require.Equal(t, 7, result.Game.GameID)
		require.Equal(t, 4, result.Game.Turns)
		require.Equal(t, 0, result.Game.Winner)
	})

	t.Run("configured game skips start", func(t *testing.T) {
		server := &scriptedServer{statuses: []string{communication.StatusGameFinished}}
		r := NewRemote(server, searcher.NewLookahead(1), WithGameID(12))

		result, err := r.Run(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, server.started)
		require.Equal(t, 12, result.Game.GameID)
		require.Empty(t, result.Moves)
	})

	t.Run("failed start", func(t *testing.T) {
		server := &scriptedServer{startStatus: "error"}
		_, err := NewRemote(server, searcher.NewLookahead(1)).Run(ctx)
		require.Error(t, err)
	})

	t.Run("move errors propagate", func(t *testing.T) {
		server := &scriptedServer{startStatus: communication.StatusOK, statuses: []string{communication.StatusOK}}
		_, err := NewRemote(server, searcher.NewLookahead(1)).Run(ctx)
		require.ErrorContains(t, err, "script exhausted")
	})

	t.Run("unknown status ends the match", func(t *testing.T) {
		server := &scriptedServer{startStatus: communication.StatusOK, statuses: []string{"error"}}
		result, err := NewRemote(server, searcher.NewLookahead(1)).Run(ctx)
		require.NoError(t, err)
		require.Equal(t, 0, result.Game.Turns)
		require.Equal(t, -1, result.Game.Winner)
	})
}
