package searcher

import (
	"sync"
	"time"

	"cubepaint/experiments/metrics"
	"cubepaint/game"

	"github.com/rs/zerolog/log"
)

type Option func(l *Lookahead)

// Lookahead simulates every basic move pair of its team one turn ahead and
// keeps the pairs that leave the team with the best evaluation. A Lookahead is
// used by one goroutine at a time; candidates fan out internally.
type Lookahead struct {
	goroutines  int
	team        int
	specialRate float64
	evaluate    game.Evaluate
	rand        Rand
	metrics     metrics.Collector
}

func WithTeam(team int) Option {
	return func(l *Lookahead) {
		if team >= 0 && team < game.Teams {
			l.team = team
		}
	}
}

func WithSpecialRate(rate float64) Option {
	return func(l *Lookahead) {
		if rate >= 0 && rate <= 1 {
			l.specialRate = rate
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(l *Lookahead) {
		if evaluate != nil {
			l.evaluate = evaluate
		}
	}
}

func WithRand(r Rand) Option {
	return func(l *Lookahead) {
		if r != nil {
			l.rand = r
		}
	}
}

func WithMetrics() Option {
	return func(l *Lookahead) {
		l.metrics = metrics.NewCollector()
	}
}

func NewLookahead(goroutines int, options ...Option) *Lookahead {
	if goroutines < 1 {
		panic("need at least one goroutine")
	}
	l := &Lookahead{ // Default values
		goroutines:  goroutines,
		specialRate: DefaultSpecialRate,
		evaluate:    game.EvaluateOwned,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(l)
	}
	if l.rand == nil {
		l.rand = NewRand(uint64(time.Now().UnixNano()))
	}
	return l
}

func (l *Lookahead) Team() int {
	return l.team
}

// FindMove returns the decisions for the next turn. The state is not modified.
func (l *Lookahead) FindMove(state *game.GameState) (Pair, metrics.SearchMetric) {
	l.metrics.Start(l.goroutines)

	values := l.simulate(state)

	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	var ties []int
	for i, v := range values {
		if v == best {
			ties = append(ties, i)
		}
	}
	l.metrics.SetBest(best, len(ties))

	pick := ties[l.rand.Intn(len(ties))]
	pair := Pair{
		Front: game.BasicMove(pick / 4),
		Back:  game.BasicMove(pick % 4),
	}

	front, back := game.Members(l.team)
	pair.Front = l.maybeSpecial(state, front, pair.Front)
	pair.Back = l.maybeSpecial(state, back, pair.Back)

	log.Debug().Msgf("team %d turn %d: best %d shared by %d candidates, playing %s %s",
		l.team, state.Turn, best, len(ties), pair.Front, pair.Back)

	return pair, l.metrics.Complete()
}

// simulate evaluates the 16 basic pairs, indexed front*4+back.
func (l *Lookahead) simulate(state *game.GameState) [16]int {
	var values [16]int

	task := make(chan int, len(values))
	for i := range values {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < l.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for c := range task {
				pair := Pair{Front: game.BasicMove(c / 4), Back: game.BasicMove(c % 4)}
				clone := state.Copy()
				clone.Progress(0, pair.Batch(l.team))
				values[c] = l.evaluate(clone, l.team)
				l.metrics.AddCandidate()
			}
		}()
	}

	wg.Wait()
	return values
}

// maybeSpecial swaps a charged agent's basic move for a dash in the same
// direction or a teleport to a random cell, at the configured rate.
func (l *Lookahead) maybeSpecial(state *game.GameState, agent int, d game.Decision) game.Decision {
	if state.Special[agent] == 0 || l.specialRate == 0 || l.rand.Float64() >= l.specialRate {
		return d
	}
	l.metrics.AddSpecial()
	if l.rand.Float64() < DashShare {
		return game.DashMove(d.Dir)
	}
	return game.TeleportMove(l.rand.Intn(game.Faces), l.rand.Intn(game.N), l.rand.Intn(game.N))
}
