package searcher

import (
	"cubepaint/experiments/metrics"
	"cubepaint/game"

	"golang.org/x/exp/rand"
)

// Searcher picks the next decisions for one team.
type Searcher interface {
	FindMove(state *game.GameState) (Pair, metrics.SearchMetric)
}

// Rand is the only source of nondeterminism in move selection.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

func NewRand(seed uint64) Rand {
	return rand.New(rand.NewSource(seed))
}

// Pair holds the decisions for a team's front and back agent.
type Pair struct {
	Front game.Decision
	Back  game.Decision
}

// Batch returns a six-slot move batch, indexed by agent id, in which only the
// team's two agents act. It is meant for Progress with team index 0.
func (p Pair) Batch(team int) []int {
	b := []int{game.NoMove, game.NoMove, game.NoMove, game.NoMove, game.NoMove, game.NoMove}
	front, back := game.Members(team)
	b[front] = p.Front.Code(team)
	b[back] = p.Back.Code(team)
	return b
}
