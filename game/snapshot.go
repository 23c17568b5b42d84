package game

import (
	"errors"
	"fmt"
)

var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot is the match state as exchanged with the server.
type Snapshot struct {
	Turn    int                 `json:"turn"`
	Move    [Agents]int         `json:"move"`
	Score   [Teams]int          `json:"score"`
	Field   [Faces][N][N][2]int `json:"field"` // [owner, level]
	Agent   [Agents][4]int      `json:"agent"` // [face, row, col, facing]
	Special [Agents]int         `json:"special"`
}

// FromSnapshot builds a GameState, rejecting out of range values.
func FromSnapshot(s Snapshot) (*GameState, error) {
	gs := &GameState{
		Turn:    s.Turn,
		Moves:   s.Move,
		Score:   s.Score,
		Special: s.Special,
		Field:   NewField(),
	}
	if s.Turn < 0 {
		return nil, fmt.Errorf("%w: negative turn %d", ErrInvalidSnapshot, s.Turn)
	}

	for i := 0; i < Faces; i++ {
		for j := 0; j < N; j++ {
			for k := 0; k < N; k++ {
				owner, level := s.Field[i][j][k][0], s.Field[i][j][k][1]
				if owner < Unowned || owner >= Teams {
					return nil, fmt.Errorf("%w: cell %d-%d-%d owner %d", ErrInvalidSnapshot, i, j, k, owner)
				}
				if level < 0 || level > 2 || (level == 0) != (owner == Unowned) {
					return nil, fmt.Errorf("%w: cell %d-%d-%d level %d for owner %d", ErrInvalidSnapshot, i, j, k, level, owner)
				}
				gs.Field.Set(i, j, k, Cell{Owner: owner, Level: level})
			}
		}
	}

	for a, v := range s.Agent {
		ag := Agent{Face: v[0], Row: v[1], Col: v[2], Facing: v[3]}
		if ag.Face < 0 || ag.Face >= Faces || ag.Row < 0 || ag.Row >= N ||
			ag.Col < 0 || ag.Col >= N || ag.Facing < 0 || ag.Facing >= 4 {
			return nil, fmt.Errorf("%w: agent %d at %v", ErrInvalidSnapshot, a, v)
		}
		gs.Agents[a] = ag
	}
	return gs, nil
}

// Snapshot renders the state in the server's shape.
func (gs *GameState) Snapshot() Snapshot {
	s := Snapshot{
		Turn:    gs.Turn,
		Move:    gs.Moves,
		Score:   gs.Score,
		Special: gs.Special,
	}
	for i := 0; i < Faces; i++ {
		for j := 0; j < N; j++ {
			for k := 0; k < N; k++ {
				c := gs.Field.Get(i, j, k)
				s.Field[i][j][k] = [2]int{c.Owner, c.Level}
			}
		}
	}
	for a, ag := range gs.Agents {
		s.Agent[a] = [4]int{ag.Face, ag.Row, ag.Col, ag.Facing}
	}
	return s
}
