package gamemaster

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cubepaint/communication"
	"cubepaint/game"
	"cubepaint/searcher"
)

var ErrUnknownGame = errors.New("unknown game")

// Opponent chooses moves for a team other than the client's.
type Opponent interface {
	searcher.Searcher
	Team() int
}

// Local is an in-process match server. The client plays team 0 and each
// opponent plays its own team; teams without an opponent stay idle.
type Local struct {
	mu        sync.Mutex
	specials  int
	opponents []Opponent
	state     *game.GameState
	gameID    int
}

func NewLocal(specials int, opponents ...Opponent) *Local {
	for _, o := range opponents {
		if o.Team() == 0 {
			panic("team 0 is reserved for the client")
		}
	}
	return &Local{
		specials:  specials,
		opponents: opponents,
	}
}

// Start begins a fresh match; mode and delay are accepted for API parity.
func (l *Local) Start(ctx context.Context, mode, delay int) (communication.StartResponse, error) {
	if err := ctx.Err(); err != nil {
		return communication.StartResponse{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.gameID++
	l.state = game.NewGameState(l.specials)
	return communication.StartResponse{
		Status: communication.StatusOK,
		Start:  time.Now().UnixMilli(),
		GameID: l.gameID,
	}, nil
}

// Move resolves one turn with the client's decisions and the opponents' own.
func (l *Local) Move(ctx context.Context, gameID int, front, back string) (communication.MoveResponse, error) {
	if err := ctx.Err(); err != nil {
		return communication.MoveResponse{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == nil || gameID != l.gameID {
		return communication.MoveResponse{}, fmt.Errorf("%w: %d", ErrUnknownGame, gameID)
	}
	if l.state.Finished() {
		return l.response(communication.StatusGameFinished), nil
	}

	pair, err := parsePair(front, back)
	if err != nil {
		return communication.MoveResponse{}, err
	}
	if err := l.checkCharges(0, pair); err != nil {
		return communication.MoveResponse{}, err
	}

	batch := pair.Batch(0)
	for _, o := range l.opponents {
		p, _ := o.FindMove(l.state)
		if err := l.checkCharges(o.Team(), p); err != nil {
			return communication.MoveResponse{}, fmt.Errorf("team %d: %w", o.Team(), err)
		}
		f, b := game.Members(o.Team())
		codes := p.Batch(o.Team())
		batch[f], batch[b] = codes[f], codes[b]
	}

	l.state.Progress(0, batch)
	return l.response(communication.StatusOK), nil
}

// State returns a copy of the current match state.
func (l *Local) State() *game.GameState {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == nil {
		return nil
	}
	return l.state.Copy()
}

func (l *Local) response(status string) communication.MoveResponse {
	return communication.MoveResponse{
		Status:   status,
		Now:      time.Now().UnixMilli(),
		Snapshot: l.state.Snapshot(),
	}
}

func (l *Local) checkCharges(team int, p searcher.Pair) error {
	front, back := game.Members(team)
	if p.Front.Kind != game.Basic && l.state.Special[front] <= 0 {
		return fmt.Errorf("%w: agent %d has no special charges", game.ErrInvalidDecision, front)
	}
	if p.Back.Kind != game.Basic && l.state.Special[back] <= 0 {
		return fmt.Errorf("%w: agent %d has no special charges", game.ErrInvalidDecision, back)
	}
	return nil
}

func parsePair(front, back string) (searcher.Pair, error) {
	f, err := game.ParseDecision(front)
	if err != nil {
		return searcher.Pair{}, err
	}
	b, err := game.ParseDecision(back)
	if err != nil {
		return searcher.Pair{}, err
	}
	return searcher.Pair{Front: f, Back: b}, nil
}
