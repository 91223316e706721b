package searcher

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

type Option func(r *rootSearch)

type rootSearch struct {
	goroutines int
}

// WithGoroutines evaluates root moves on n goroutines, each working on its
// own copy of the game.
func WithGoroutines(n int) Option {
	return func(r *rootSearch) {
		if n > 0 {
			r.goroutines = n
		}
	}
}

// BestMove scores every legal move of the position for side with a fresh
// search rooted after that move, and returns the first move with the best
// score in enumeration order.
func BestMove[M any](game Game[M], side Perspective, options ...Option) (Decision[M], error) {
	r := &rootSearch{goroutines: 1}
	for _, option := range options {
		option(r)
	}

	var none Decision[M]
	if v, ok := game.Terminal(0); ok {
		return none, fmt.Errorf("position is terminal with value %v: %w", v, ErrInvalidState)
	}
	moves := game.LegalMoves()
	if len(moves) == 0 {
		return none, fmt.Errorf("no legal moves: %w", ErrInvalidState)
	}

	metrics := NewCollector()

	var scores []Value
	if r.goroutines > 1 {
		cloner, ok := game.(Cloner[M])
		if !ok {
			return none, fmt.Errorf("parallel search needs a game that can be cloned: %w", ErrInvalidState)
		}
		// No more workers than there are moves to score
		workers := min(r.goroutines, len(moves))
		metrics.Start(workers)
		scores = scoreParallel(cloner, moves, side, workers, metrics)
	} else {
		metrics.Start(1)
		scores = scoreSequential(game, moves, side, metrics)
	}

	// Keep the first move with the best score
	best := 0
	for i := 1; i < len(scores); i++ {
		if side.improves(scores[i], scores[best]) {
			best = i
		}
	}

	decision := Decision[M]{
		Move:         moves[best],
		Value:        scores[best],
		SearchMetric: metrics.Complete(),
	}
	log.Debug().Msgf("%s picked %v with value %v after %d nodes", side, decision.Move, decision.Value, decision.NodesVisited)
	return decision, nil
}

// scoreMove plays move for side and searches the reply with a full window.
func scoreMove[M any](game Game[M], move M, side Perspective) Result {
	game.Apply(move, side)
	defer game.Undo(move)

	return AlphaBeta(game, 1, side.Opponent(), NegInf, Inf)
}

func scoreSequential[M any](game Game[M], moves []M, side Perspective, metrics Collector) []Value {
	scores := make([]Value, len(moves))
	for i, move := range moves {
		result := scoreMove(game, move, side)
		metrics.AddResult(result)
		scores[i] = result.Value
	}
	return scores
}

func scoreParallel[M any](game Cloner[M], moves []M, side Perspective, workers int, metrics Collector) []Value {
	// Queue every move index up front
	task := make(chan int, len(moves))
	for i := range moves {
		task <- i
	}
	close(task)

	// Each slot is written by exactly one worker.
	scores := make([]Value, len(moves))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(local Game[M]) {
			defer wg.Done()

			for i := range task {
				result := scoreMove(local, moves[i], side)
				metrics.AddResult(result)
				scores[i] = result.Value
			}
		}(game.Clone())
	}

	wg.Wait()
	return scores
}
