package engine

import (
	"alphabeta/experiments/metrics"
	"alphabeta/game/tictactoe"
	"alphabeta/searcher/agent"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Observer is told about every move once it is on the board.
type Observer func(step int, mark tictactoe.Mark, move tictactoe.Move, board *tictactoe.Board)

type Option func(e *LocalEngine)

type LocalEngine struct {
	Board    *tictactoe.Board
	agents   map[tictactoe.Mark]agent.Agent
	starting tictactoe.Mark
	observer Observer
}

// WithStartingMark lets O move first.
func WithStartingMark(mark tictactoe.Mark) Option {
	return func(e *LocalEngine) {
		if mark == tictactoe.X || mark == tictactoe.O {
			e.starting = mark
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(e *LocalEngine) {
		e.observer = observer
	}
}

// WithBoard starts from a position other than the empty board.
func WithBoard(board *tictactoe.Board) Option {
	return func(e *LocalEngine) {
		if board != nil {
			e.Board = board
		}
	}
}

// NewLocalEngine sets up a game where agentX places X, the maximizer, and
// agentO places O.
func NewLocalEngine(agentX, agentO agent.Agent, options ...Option) *LocalEngine {
	if agentX == nil || agentO == nil {
		panic("need an agent for each mark")
	}

	e := &LocalEngine{
		Board: tictactoe.NewBoard(),
		agents: map[tictactoe.Mark]agent.Agent{
			tictactoe.X: agentX,
			tictactoe.O: agentO,
		},
		starting: tictactoe.X,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

var _ Engine = (*LocalEngine)(nil)

// Run executes the game loop until the board is decided.
func (e *LocalEngine) Run() (tictactoe.Mark, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.starting.String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s is starting", e.starting)

	// Loop until the board is decided
	mark := e.starting
	for step := 1; step <= MaxMoves; step++ {
		if _, over := e.Board.TerminalValue(); over {
			break
		}

		// Ask the agent on a copy so it cannot touch the real board
		side := e.Board.SideOf(mark)
		choice, err := e.agents[mark].FindMove(e.Board.Copy(), side)
		if err != nil {
			return tictactoe.Empty, gameMetric, moveMetrics, fmt.Errorf("%s failed to find a move at step %d: %w", mark, step, err)
		}

		// Place the move, falling back to the first legal one
		move := choice.Move
		err = e.Board.Place(move, mark)
		if errors.Is(err, tictactoe.ErrInvalidState) {
			fallback := e.Board.LegalMoves()[0]
			log.Warn().Err(err).Msgf("%s returned an invalid move %v, playing %v instead", mark, move, fallback)
			move = fallback
			err = e.Board.Place(move, mark)
		}
		if err != nil {
			return tictactoe.Empty, gameMetric, moveMetrics, err
		}

		// Record the move
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mark.String(),
			Row:          move.Row,
			Col:          move.Col,
			SearchMetric: choice.SearchMetric,
		})
		log.Debug().Msgf("step %d: %s plays %v after %d nodes", step, mark, move, choice.NodesVisited)
		if e.observer != nil {
			e.observer(step, mark, move, e.Board)
		}

		// Switch to the next player
		mark = mark.Opponent()
	}

	// Game over, fill in the game metrics
	winner := e.Board.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner != tictactoe.Empty {
		gameMetric.Winner = winner.String()
		log.Debug().Msgf("game ended with a winner: %s", winner)
	} else {
		log.Debug().Msg("game ended in a draw")
	}

	return winner, gameMetric, moveMetrics, nil
}
