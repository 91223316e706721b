package engine

import (
	"alphabeta/experiments/metrics"
	"alphabeta/game/tictactoe"
)

// MaxMoves bounds a game: every move fills a cell.
const MaxMoves = tictactoe.Size * tictactoe.Size

type Engine interface {
	// Run plays a game till it is decided and returns the winning mark, Empty for a draw
	Run() (winner tictactoe.Mark, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
