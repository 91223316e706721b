// Package tree is a complete binary game tree of fixed depth whose leaf
// values are given up front. Positions are addressed by index: the children
// of node i at one level are nodes 2i and 2i+1 at the next.
package tree

import (
	"alphabeta/searcher"
	"fmt"

	"golang.org/x/exp/rand"
)

const (
	Depth     = 3
	Branching = 2
	Leaves    = 1 << Depth
)

var ErrInvalidState = fmt.Errorf("invalid tree: %w", searcher.ErrInvalidState)

// Child is the index of a child among its siblings, 0 or 1.
type Child int

// Tree is a cursor over the leaf values. Apply and Undo move the cursor down
// and back up one level.
type Tree struct {
	values []searcher.Value
	index  int
}

func New(values []searcher.Value) (*Tree, error) {
	if len(values) != Leaves {
		return nil, fmt.Errorf("tree needs %d leaf values, got %d: %w", Leaves, len(values), ErrInvalidState)
	}
	v := make([]searcher.Value, Leaves)
	copy(v, values)
	return &Tree{values: v}, nil
}

// Random returns a tree with leaf values drawn uniformly from [lo, hi).
func Random(rng *rand.Rand, lo, hi searcher.Value) *Tree {
	values := make([]searcher.Value, Leaves)
	for i := range values {
		values[i] = lo + rng.Float64()*(hi-lo)
	}
	return &Tree{values: values}
}

// Leaf returns the value of the leaf at index.
func (t *Tree) Leaf(index int) (searcher.Value, error) {
	if index < 0 || index >= len(t.values) {
		return 0, fmt.Errorf("leaf %d out of range [0, %d): %w", index, len(t.values), ErrInvalidState)
	}
	return t.values[index], nil
}

// Index is the position of the cursor within its level.
func (t *Tree) Index() int {
	return t.index
}

func (t *Tree) Terminal(depth int) (searcher.Value, bool) {
	if depth < Depth {
		return 0, false
	}
	v, err := t.Leaf(t.index)
	if err != nil {
		panic(err)
	}
	return v, true
}

func (t *Tree) LegalMoves() []Child {
	return []Child{0, 1}
}

func (t *Tree) Apply(move Child, _ searcher.Perspective) {
	t.index = t.index*Branching + int(move)
}

func (t *Tree) Undo(move Child) {
	t.index = (t.index - int(move)) / Branching
}

func (t *Tree) Clone() searcher.Game[Child] {
	return &Tree{values: t.values, index: t.index}
}
