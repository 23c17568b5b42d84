package communication

import (
	"context"

	"cubepaint/game"
)

// Response statuses used by the match server.
const (
	StatusOK           = "ok"
	StatusStarted      = "started"
	StatusAlreadyMoved = "already_moved"
	StatusGameFinished = "game_finished"
)

type StartResponse struct {
	Status string `json:"status"`
	Start  int64  `json:"start"`
	GameID int    `json:"game_id"`
}

type MoveResponse struct {
	Status string `json:"status"`
	Now    int64  `json:"now"`
	game.Snapshot
}

// Server abstracts the match server, remote or in-process.
type Server interface {
	// Start requests a practice match and returns its game id.
	Start(ctx context.Context, mode, delay int) (StartResponse, error)
	// Move submits the decisions for the controlled team's front and back agent
	// and returns the state after the turn resolves.
	Move(ctx context.Context, gameID int, front, back string) (MoveResponse, error)
}
