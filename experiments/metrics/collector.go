package metrics

import (
	"sync/atomic"
	"time"

	"cubepaint/game"
)

type AgentConfig struct {
	ID          int
	Goroutines  int
	SpecialRate float64
	Evaluation  string // "owned" or "margin"
}

type SearchMetric struct {
	Goroutines int
	Duration   time.Duration
	Candidates int // Candidate move pairs simulated
	Best       int // Evaluation of the best candidates
	Ties       int // Candidates sharing the best evaluation
	Specials   int // Agents switched to a special move
}

type MoveMetric struct {
	Turn  int
	Team  int
	Front string
	Back  string
	Score [game.Teams]int
	SearchMetric
}

type GameMetric struct {
	GameID    int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Turns     int
	Score     [game.Teams]int
	Winner    int // Team with the highest score, -1 on a tie
}

type Collector interface {
	Start(goroutines int)
	AddCandidate()
	SetBest(best, ties int)
	AddSpecial()
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	startTime  time.Time
	candidates atomic.Int32
	best       atomic.Int32
	ties       atomic.Int32
	specials   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.candidates.Store(0)
	m.best.Store(0)
	m.ties.Store(0)
	m.specials.Store(0)
}

func (m *collector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *collector) SetBest(best, ties int) {
	m.best.Store(int32(best))
	m.ties.Store(int32(ties))
}

func (m *collector) AddSpecial() {
	m.specials.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Candidates: int(m.candidates.Load()),
		Best:       int(m.best.Load()),
		Ties:       int(m.ties.Load()),
		Specials:   int(m.specials.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines int)   {}
func (m *dummyCollector) AddCandidate()          {}
func (m *dummyCollector) SetBest(best, ties int) {}
func (m *dummyCollector) AddSpecial()            {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }

// Winner returns the team with the strictly highest score, or -1.
func Winner(score [game.Teams]int) int {
	winner, best, tied := -1, -1, false
	for t, s := range score {
		switch {
		case s > best:
			winner, best, tied = t, s, false
		case s == best:
			tied = true
		}
	}
	if tied {
		return -1
	}
	return winner
}
