package engine

import (
	"tablut/experiments/metrics"
	"tablut/game"
)

type Engine interface {
	// Run plays a game until there is a winner or a player fails.
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// View is told about the board after the game starts and after every applied
// move. It must not modify the board.
type View interface {
	Update(b *game.Board)
}

// ViewFunc adapts a function to a View.
type ViewFunc func(b *game.Board)

func (f ViewFunc) Update(b *game.Board) { f(b) }
