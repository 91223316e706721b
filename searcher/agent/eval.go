package agent

import (
	"alphabeta/game/tictactoe"
	"alphabeta/searcher"
)

type searchAgent struct {
	options []searcher.Option
}

// NewSearchAgent returns an agent playing the alpha-beta best move.
func NewSearchAgent(options ...searcher.Option) Agent {
	return searchAgent{options: options}
}

func (a searchAgent) FindMove(board *tictactoe.Board, side searcher.Perspective) (Choice, error) {
	d, err := board.Decide(side, a.options...)
	if err != nil {
		return Choice{}, err
	}
	return Choice{Move: d.Move, Value: d.Value, Scored: true, SearchMetric: d.SearchMetric}, nil
}
