package engine

import (
	"context"

	"cubepaint/experiments/metrics"
)

type Engine interface {
	// Run plays one match until the server reports it finished
	Run(ctx context.Context) (Result, error)
}

// Result summarises a played match. Moves holds one entry per decided turn.
type Result struct {
	Game  metrics.GameMetric
	Moves []metrics.MoveMetric
}
