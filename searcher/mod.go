package searcher

import (
	"errors"
	"math"
)

// ErrInvalidState is returned when a search is requested on a position that
// has nothing left to decide.
var ErrInvalidState = errors.New("invalid state")

// Value is a position's score from the maximizing side's point of view.
type Value = float64

var (
	Inf    Value = math.Inf(1)
	NegInf Value = math.Inf(-1)
)

// Perspective is the side to move.
type Perspective int

const (
	Maximizing Perspective = iota
	Minimizing
)

func (p Perspective) Opponent() Perspective {
	if p == Maximizing {
		return Minimizing
	}
	return Maximizing
}

func (p Perspective) String() string {
	switch p {
	case Maximizing:
		return "max"
	case Minimizing:
		return "min"
	default:
		return "unknown"
	}
}

// worst is the initial best value for a side before any move is scored.
func (p Perspective) worst() Value {
	if p == Maximizing {
		return NegInf
	}
	return Inf
}

// improves reports whether v is strictly better than best for the side.
func (p Perspective) improves(v, best Value) bool {
	if p == Maximizing {
		return v > best
	}
	return v < best
}

// Game binds the search to a game's rules. Positions are mutated in place:
// every Apply is paired with an Undo of the same move before the caller
// returns, so a Game is never shared between concurrent searches.
type Game[M any] interface {
	// Terminal reports the value of the position when no further search is
	// needed, either because the game is decided or because depth reached the
	// game's bound.
	Terminal(depth int) (Value, bool)
	// LegalMoves returns the moves out of the position in a fixed order.
	LegalMoves() []M
	Apply(move M, side Perspective)
	Undo(move M)
}

// Cloner is implemented by games that can hand out independent copies,
// required to evaluate root moves concurrently.
type Cloner[M any] interface {
	Game[M]
	Clone() Game[M]
}

// Result is the outcome of a single search run.
type Result struct {
	Value        Value
	NodesVisited int
	Cutoffs      int
}

// Decision is a root move picked by BestMove along with its score.
type Decision[M any] struct {
	Move  M
	Value Value
	SearchMetric
}
