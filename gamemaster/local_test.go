package gamemaster

import (
	"context"
	"testing"

	"cubepaint/communication"
	"cubepaint/game"
	"cubepaint/searcher"

	"github.com/stretchr/testify/require"
)

func newOpponents(seed uint64) []Opponent {
	return []Opponent{
		searcher.NewLookahead(2, searcher.WithTeam(1), searcher.WithRand(searcher.NewRand(seed))),
		searcher.NewLookahead(2, searcher.WithTeam(2), searcher.WithRand(searcher.NewRand(seed+1))),
	}
}

func TestLocalStart(t *testing.T) {
	l := NewLocal(2)
	ctx := context.Background()

	res, err := l.Start(ctx, 0, 0)
	require.NoError(t, err)
	require.Equal(t, communication.StatusOK, res.Status)
	require.Equal(t, 1, res.GameID)

	res, err = l.Start(ctx, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 2, res.GameID, "every start is a new game")

	require.Panics(t, func() {
		NewLocal(2, searcher.NewLookahead(1))
	}, "team 0 belongs to the client")
}

func TestLocalMove(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves the client's decisions", func(t *testing.T) {
		l := NewLocal(2)
		start, err := l.Start(ctx, 0, 0)
		require.NoError(t, err)

		res, err := l.Move(ctx, start.GameID, "1", "2s")
		require.NoError(t, err)
		require.Equal(t, communication.StatusOK, res.Status)
		require.Equal(t, 1, res.Turn)
		require.Equal(t, [4]int{0, 2, 3, 1}, res.Agent[0])
		require.Equal(t, [2]int{0, 2}, res.Field[0][2][3])
		require.Equal(t, 1, res.Special[5])
		require.Equal(t, [6]int{1, -1, -1, -1, -1, 6}, res.Move)
		require.Equal(t, 6, l.State().Field.Area(0))
	})

	t.Run("opponents move too", func(t *testing.T) {
		l := NewLocal(2, newOpponents(3)...)
		start, err := l.Start(ctx, 0, 0)
		require.NoError(t, err)

		res, err := l.Move(ctx, start.GameID, "0", "0")
		require.NoError(t, err)
		for a := 0; a < game.Agents; a++ {
			require.NotEqual(t, game.NoMove, res.Move[a], "agent %d should act", a)
		}
		gs := l.State()
		require.Equal(t, gs.Field.Area(1), gs.Field.Owned(1))
		require.Greater(t, gs.Field.Area(1), 0)
		require.Greater(t, gs.Field.Area(2), 0)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		l := NewLocal(0)
		_, err := l.Move(ctx, 1, "0", "0")
		require.ErrorIs(t, err, ErrUnknownGame, "no game started")

		start, err := l.Start(ctx, 0, 0)
		require.NoError(t, err)

		_, err = l.Move(ctx, start.GameID+1, "0", "0")
		require.ErrorIs(t, err, ErrUnknownGame)

		_, err = l.Move(ctx, start.GameID, "9", "0")
		require.ErrorIs(t, err, game.ErrInvalidDecision)

		_, err = l.Move(ctx, start.GameID, "0", "1-1-1")
		require.ErrorIs(t, err, game.ErrInvalidDecision, "no charges left")

		require.Equal(t, 0, l.State().Turn, "rejected moves do not advance the match")
	})

	t.Run("cancelled context", func(t *testing.T) {
		l := NewLocal(2)
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := l.Start(cctx, 0, 0)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalFullMatch(t *testing.T) {
	ctx := context.Background()
	l := NewLocal(2, newOpponents(11)...)
	start, err := l.Start(ctx, 0, 0)
	require.NoError(t, err)

	turns := 0
	for {
		res, err := l.Move(ctx, start.GameID, "1", "3")
		require.NoError(t, err)
		if res.Status != communication.StatusOK {
			require.Equal(t, communication.StatusGameFinished, res.Status)
			require.Equal(t, game.TotalTurns, res.Turn)
			break
		}
		turns++
	}
	require.Equal(t, game.TotalTurns, turns)

	gs := l.State()
	total := 0
	for team := 0; team < game.Teams; team++ {
		require.Equal(t, gs.Field.Owned(team), gs.Field.Area(team))
		total += gs.Score[team]
	}
	require.Greater(t, total, 0, "second half of the match scores")
}
