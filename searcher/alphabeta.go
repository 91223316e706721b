package searcher

// counter is the per-run instrumentation threaded through a search.
type counter struct {
	nodes   int
	cutoffs int
}

// AlphaBeta returns the minimax value of the game's current position with
// alpha-beta pruning. depth is the number of plies already played from the
// search root. The game is restored to its original position on return.
func AlphaBeta[M any](game Game[M], depth int, side Perspective, alpha, beta Value) Result {
	c := &counter{}
	v := alphaBeta(game, c, depth, side, alpha, beta)
	return Result{Value: v, NodesVisited: c.nodes, Cutoffs: c.cutoffs}
}

// Search runs AlphaBeta from the root with an unbounded window.
func Search[M any](game Game[M], side Perspective) Result {
	return AlphaBeta(game, 0, side, NegInf, Inf)
}

func alphaBeta[M any](game Game[M], c *counter, depth int, side Perspective, alpha, beta Value) Value {
	c.nodes++

	if v, ok := game.Terminal(depth); ok {
		return v
	}

	best := side.worst()
	for _, move := range game.LegalMoves() {
		v := descend(game, c, move, depth, side, alpha, beta)

		if side == Maximizing {
			best = max(best, v)
			alpha = max(alpha, v)
		} else {
			best = min(best, v)
			beta = min(beta, v)
		}
		if beta <= alpha {
			c.cutoffs++
			break
		}
	}
	return best
}

// descend plays move for side, searches the child and takes the move back.
func descend[M any](game Game[M], c *counter, move M, depth int, side Perspective, alpha, beta Value) Value {
	game.Apply(move, side)
	defer game.Undo(move)

	return alphaBeta(game, c, depth+1, side.Opponent(), alpha, beta)
}

// Minimax returns the value of the game's current position without pruning.
// It visits every node of the game tree and serves as a reference for
// AlphaBeta.
func Minimax[M any](game Game[M], side Perspective) Result {
	c := &counter{}
	v := minimax(game, c, 0, side)
	return Result{Value: v, NodesVisited: c.nodes}
}

func minimax[M any](game Game[M], c *counter, depth int, side Perspective) Value {
	c.nodes++

	if v, ok := game.Terminal(depth); ok {
		return v
	}

	best := side.worst()
	for _, move := range game.LegalMoves() {
		game.Apply(move, side)
		v := minimax(game, c, depth+1, side.Opponent())
		game.Undo(move)

		if side.improves(v, best) {
			best = v
		}
	}
	return best
}
