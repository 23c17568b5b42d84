package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	gs := NewGameState(0)
	gs.Field.Set(0, 0, 0, Cell{Owner: 0, Level: 2})
	gs.Field.Set(0, 0, 1, Cell{Owner: 0, Level: 1})
	gs.Field.Set(1, 0, 0, Cell{Owner: 1, Level: 2})
	gs.Field.Set(2, 0, 0, Cell{Owner: 2, Level: 2})
	gs.Field.Set(2, 0, 1, Cell{Owner: 2, Level: 2})
	gs.Field.Set(2, 0, 2, Cell{Owner: 2, Level: 2})

	require.Equal(t, 2, EvaluateOwned(gs, 0))
	require.Equal(t, 3, EvaluateOwned(gs, 2))
	require.Equal(t, -1, EvaluateMargin(gs, 0))
	require.Equal(t, 1, EvaluateMargin(gs, 2))
	require.Equal(t, 0, EvaluateMargin(NewGameState(0), 1))
}

func TestEvaluationByName(t *testing.T) {
	gs := NewGameState(0)
	gs.Field.Set(0, 0, 0, Cell{Owner: 1, Level: 2})

	owned, err := EvaluationByName("owned")
	require.NoError(t, err)
	require.Equal(t, 0, owned(gs, 0))

	margin, err := EvaluationByName("margin")
	require.NoError(t, err)
	require.Equal(t, -1, margin(gs, 0))

	_, err = EvaluationByName("fancy")
	require.Error(t, err)
}
