package agent

import (
	"alphabeta/game/tictactoe"
	"alphabeta/searcher"
	"fmt"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent playing a uniformly random legal move. It is
// not safe for concurrent use.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board *tictactoe.Board, _ searcher.Perspective) (Choice, error) {
	if _, over := board.TerminalValue(); over {
		return Choice{}, fmt.Errorf("game is over: %w", tictactoe.ErrInvalidState)
	}
	moves := board.LegalMoves()
	return Choice{
		Move:         moves[a.rng.Intn(len(moves))],
		SearchMetric: searcher.SearchMetric{Candidates: len(moves)},
	}, nil
}
