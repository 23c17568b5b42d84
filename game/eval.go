package game

import "fmt"

// Evaluate scores a state from a team's point of view; higher is better.
type Evaluate func(gs *GameState, team int) int

// EvaluateOwned counts the cells held by team across the whole cube.
func EvaluateOwned(gs *GameState, team int) int {
	return gs.Field.Owned(team)
}

// EvaluateMargin is the team's area minus the strongest opponent's area.
func EvaluateMargin(gs *GameState, team int) int {
	best := 0
	for t := 0; t < Teams; t++ {
		if t != team && gs.Field.Area(t) > best {
			best = gs.Field.Area(t)
		}
	}
	return gs.Field.Area(team) - best
}

// EvaluationByName maps a configured evaluation name to its function.
func EvaluationByName(name string) (Evaluate, error) {
	switch name {
	case "owned", "":
		return EvaluateOwned, nil
	case "margin":
		return EvaluateMargin, nil
	}
	return nil, fmt.Errorf("unknown evaluation %q", name)
}
