package searcher

import "golang.org/x/exp/rand"

// mockNode is an explicit game tree: leaves carry values, inner nodes carry
// children addressed by index.
type mockNode struct {
	value    Value
	children []*mockNode
}

func leaf(v Value) *mockNode {
	return &mockNode{value: v}
}

func inner(children ...*mockNode) *mockNode {
	return &mockNode{children: children}
}

// mockGame walks a mockNode tree, keeping the path from the root as a stack.
type mockGame struct {
	root    *mockNode
	path    []*mockNode
	applied []Perspective
	undone  int
}

func newMockGame(root *mockNode) *mockGame {
	return &mockGame{root: root, path: []*mockNode{root}}
}

func (m *mockGame) current() *mockNode {
	return m.path[len(m.path)-1]
}

func (m *mockGame) Terminal(depth int) (Value, bool) {
	node := m.current()
	if len(node.children) == 0 {
		return node.value, true
	}
	return 0, false
}

func (m *mockGame) LegalMoves() []int {
	moves := make([]int, len(m.current().children))
	for i := range moves {
		moves[i] = i
	}
	return moves
}

func (m *mockGame) Apply(move int, side Perspective) {
	m.path = append(m.path, m.current().children[move])
	m.applied = append(m.applied, side)
}

func (m *mockGame) Undo(move int) {
	m.path = m.path[:len(m.path)-1]
	m.undone++
}

// clonableGame is a mockGame that can be copied for parallel root search.
type clonableGame struct {
	*mockGame
}

func (c clonableGame) Clone() Game[int] {
	path := make([]*mockNode, len(c.path))
	copy(path, c.path)
	return clonableGame{&mockGame{root: c.root, path: path}}
}

// binaryTree builds a complete binary tree over the given leaves, whose
// length must be a power of two.
func binaryTree(values ...Value) *mockNode {
	level := make([]*mockNode, len(values))
	for i, v := range values {
		level[i] = leaf(v)
	}
	for len(level) > 1 {
		next := make([]*mockNode, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			next = append(next, inner(level[i], level[i+1]))
		}
		level = next
	}
	return level[0]
}

// randomTree builds a tree up to depth levels deep with 1 to 3 children per
// inner node and small integer leaf values, so that ties are frequent.
func randomTree(rng *rand.Rand, depth int) *mockNode {
	if depth == 0 || (depth < 3 && rng.Intn(4) == 0) {
		return leaf(Value(rng.Intn(11) - 5))
	}
	children := make([]*mockNode, 1+rng.Intn(3))
	for i := range children {
		children[i] = randomTree(rng, depth-1)
	}
	return inner(children...)
}

func countNodes(node *mockNode) int {
	n := 1
	for _, child := range node.children {
		n += countNodes(child)
	}
	return n
}
