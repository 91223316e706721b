package tictactoe

import (
	"alphabeta/searcher"
	"fmt"
	"strings"
)

const Size = 3

var ErrInvalidState = fmt.Errorf("invalid board: %w", searcher.ErrInvalidState)

type Mark int

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Move is a cell on the board.
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

func (m Move) inBounds() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

// Board is a tic-tac-toe position. Values are reported from the point of view
// of the maximizer's mark: a win scores 1, a loss -1 and a draw 0.
type Board struct {
	cells     [Size][Size]Mark
	maximizer Mark
}

// NewBoard returns an empty board on which X maximizes.
func NewBoard() *Board {
	return &Board{maximizer: X}
}

// NewBoardFor returns an empty board on which mark maximizes.
func NewBoardFor(mark Mark) (*Board, error) {
	if mark != X && mark != O {
		return nil, fmt.Errorf("maximizer must be X or O, got %v: %w", mark, ErrInvalidState)
	}
	return &Board{maximizer: mark}, nil
}

// ParseMark reads "X" or "O", case-insensitively.
func ParseMark(s string) (Mark, error) {
	switch s {
	case "X", "x":
		return X, nil
	case "O", "o":
		return O, nil
	default:
		return Empty, fmt.Errorf("unknown mark %q: %w", s, ErrInvalidState)
	}
}

// Parse reads a board on which X maximizes, see ParseFor.
func Parse(layout string) (*Board, error) {
	return ParseFor(layout, X)
}

// ParseFor reads a board on which maximizer maximizes from nine cells in
// row-major order, using X, O and '.' for empty. Whitespace and '|'
// separators are ignored.
func ParseFor(layout string, maximizer Mark) (*Board, error) {
	b, err := NewBoardFor(maximizer)
	if err != nil {
		return nil, err
	}
	i := 0
	for _, r := range layout {
		var m Mark
		switch r {
		case 'X', 'x':
			m = X
		case 'O', 'o':
			m = O
		case '.', '_', '-':
			m = Empty
		case '\n', '\t', '|', ' ':
			continue
		default:
			return nil, fmt.Errorf("unexpected cell %q: %w", r, ErrInvalidState)
		}
		if i >= Size*Size {
			return nil, fmt.Errorf("more than %d cells: %w", Size*Size, ErrInvalidState)
		}
		b.cells[i/Size][i%Size] = m
		i++
	}
	if i != Size*Size {
		return nil, fmt.Errorf("expected %d cells, got %d: %w", Size*Size, i, ErrInvalidState)
	}
	return b, nil
}

func (b *Board) Maximizer() Mark {
	return b.maximizer
}

// MarkFor is the mark placed by side.
func (b *Board) MarkFor(side searcher.Perspective) Mark {
	if side == searcher.Maximizing {
		return b.maximizer
	}
	return b.maximizer.Opponent()
}

// SideOf is the side that places mark.
func (b *Board) SideOf(mark Mark) searcher.Perspective {
	if mark == b.maximizer {
		return searcher.Maximizing
	}
	return searcher.Minimizing
}

func (b *Board) At(move Move) Mark {
	return b.cells[move.Row][move.Col]
}

// LegalMoves returns the empty cells in row-major order.
func (b *Board) LegalMoves() []Move {
	moves := make([]Move, 0, Size*Size)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b.cells[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// Occupied counts the non-empty cells.
func (b *Board) Occupied() int {
	n := 0
	for _, row := range b.cells {
		for _, m := range row {
			if m != Empty {
				n++
			}
		}
	}
	return n
}

func (b *Board) Full() bool {
	return b.Occupied() == Size*Size
}

// Place puts mark on an empty cell of an undecided board.
func (b *Board) Place(move Move, mark Mark) error {
	if !move.inBounds() {
		return fmt.Errorf("move %v is off the board: %w", move, ErrInvalidState)
	}
	if mark == Empty {
		return fmt.Errorf("cannot place an empty mark: %w", ErrInvalidState)
	}
	if b.cells[move.Row][move.Col] != Empty {
		return fmt.Errorf("cell %v is taken by %v: %w", move, b.cells[move.Row][move.Col], ErrInvalidState)
	}
	if _, over := b.TerminalValue(); over {
		return fmt.Errorf("game is over: %w", ErrInvalidState)
	}
	b.cells[move.Row][move.Col] = mark
	return nil
}

// Clear empties a cell, taking back a Place.
func (b *Board) Clear(move Move) {
	b.cells[move.Row][move.Col] = Empty
}

// Winner returns the mark holding a full row, column or diagonal, or Empty.
func (b *Board) Winner() Mark {
	c := &b.cells
	for i := 0; i < Size; i++ {
		if c[i][0] != Empty && c[i][0] == c[i][1] && c[i][1] == c[i][2] {
			return c[i][0]
		}
		if c[0][i] != Empty && c[0][i] == c[1][i] && c[1][i] == c[2][i] {
			return c[0][i]
		}
	}
	if c[1][1] != Empty {
		if c[0][0] == c[1][1] && c[1][1] == c[2][2] {
			return c[1][1]
		}
		if c[0][2] == c[1][1] && c[1][1] == c[2][0] {
			return c[1][1]
		}
	}
	return Empty
}

// TerminalValue scores a decided board. ok is false while the game goes on.
func (b *Board) TerminalValue() (v searcher.Value, ok bool) {
	switch winner := b.Winner(); {
	case winner == b.maximizer:
		return 1, true
	case winner != Empty:
		return -1, true
	case b.Full():
		return 0, true
	default:
		return 0, false
	}
}

func (b *Board) Terminal(_ int) (searcher.Value, bool) {
	return b.TerminalValue()
}

func (b *Board) Apply(move Move, side searcher.Perspective) {
	b.cells[move.Row][move.Col] = b.MarkFor(side)
}

func (b *Board) Undo(move Move) {
	b.Clear(move)
}

func (b *Board) Clone() searcher.Game[Move] {
	return b.Copy()
}

func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// BestMove picks the maximizer's move.
func (b *Board) BestMove(options ...searcher.Option) (Move, error) {
	d, err := b.Decide(searcher.Maximizing, options...)
	if err != nil {
		return Move{}, err
	}
	return d.Move, nil
}

// Decide picks the move for side along with its score and search metrics.
func (b *Board) Decide(side searcher.Perspective, options ...searcher.Option) (searcher.Decision[Move], error) {
	d, err := searcher.BestMove[Move](b, side, options...)
	if err != nil {
		return d, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	return d, nil
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sb.WriteString(b.cells[row][col].String())
		}
		if row < Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
