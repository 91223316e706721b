package agent

import (
	"alphabeta/game/tictactoe"
	"alphabeta/searcher"
)

// Choice is the move an agent settled on. Value is the move's score for the
// board's maximizer and is only meaningful when Scored is set.
type Choice struct {
	Move   tictactoe.Move
	Value  searcher.Value
	Scored bool
	searcher.SearchMetric
}

type Agent interface {
	// FindMove returns the move to play for side along with its score and the metrics of the search behind it (if any)
	FindMove(board *tictactoe.Board, side searcher.Perspective) (Choice, error)
}
