package tictactoe

import (
	"alphabeta/searcher"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustParse(t *testing.T, layout string) *Board {
	t.Helper()
	b, err := Parse(layout)
	require.NoError(t, err)
	return b
}

func TestParse(t *testing.T) {
	t.Run("reading rows with separators", func(t *testing.T) {
		b := mustParse(t, "X.O|.X.|..O")

		require.Equal(t, X, b.At(Move{0, 0}))
		require.Equal(t, O, b.At(Move{0, 2}))
		require.Equal(t, X, b.At(Move{1, 1}))
		require.Equal(t, O, b.At(Move{2, 2}))
		require.Equal(t, "X.O\n.X.\n..O", b.String())
	})

	t.Run("rejecting malformed layouts", func(t *testing.T) {
		for _, layout := range []string{"", "XXO", "X.O.X.O.X.", "X.O.Z.O.X"} {
			_, err := Parse(layout)
			require.ErrorIs(t, err, ErrInvalidState, "layout %q", layout)
		}
	})

	t.Run("keeping the given maximizer", func(t *testing.T) {
		b, err := ParseFor("OO.|XX.|X..", O)
		require.NoError(t, err)

		require.Equal(t, O, b.Maximizer())
		require.Equal(t, searcher.Maximizing, b.SideOf(O))

		_, err = ParseFor(".........", Empty)
		require.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestParseMark(t *testing.T) {
	for s, want := range map[string]Mark{"X": X, "x": X, "O": O, "o": O} {
		got, err := ParseMark(s)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	for _, s := range []string{"", ".", "XO", "Z"} {
		_, err := ParseMark(s)
		require.ErrorIs(t, err, ErrInvalidState, "mark %q", s)
	}
}

func TestTerminalValue(t *testing.T) {
	lines := map[string][3]Move{
		"row 0":    {{0, 0}, {0, 1}, {0, 2}},
		"row 1":    {{1, 0}, {1, 1}, {1, 2}},
		"row 2":    {{2, 0}, {2, 1}, {2, 2}},
		"col 0":    {{0, 0}, {1, 0}, {2, 0}},
		"col 1":    {{0, 1}, {1, 1}, {2, 1}},
		"col 2":    {{0, 2}, {1, 2}, {2, 2}},
		"diagonal": {{0, 0}, {1, 1}, {2, 2}},
		"antidiag": {{0, 2}, {1, 1}, {2, 0}},
	}

	for name, line := range lines {
		for _, mark := range []Mark{X, O} {
			t.Run(name+" held by "+mark.String(), func(t *testing.T) {
				b := NewBoard()
				for _, m := range line {
					b.cells[m.Row][m.Col] = mark
				}

				v, ok := b.TerminalValue()

				require.True(t, ok, "Should be terminal")
				require.Equal(t, mark, b.Winner())
				if mark == X {
					require.Equal(t, 1.0, v, "Should be a win for the maximizer")
				} else {
					require.Equal(t, -1.0, v, "Should be a loss for the maximizer")
				}
			})
		}
	}

	t.Run("full board without a line", func(t *testing.T) {
		b := mustParse(t, "XOX|XOO|OXX")

		v, ok := b.TerminalValue()

		require.True(t, ok)
		require.Equal(t, 0.0, v, "Should be a draw")
		require.Equal(t, Empty, b.Winner())
	})

	t.Run("open board without a line", func(t *testing.T) {
		for _, layout := range []string{".........", "XOX|XOO|OX.", "XX.|OO.|..."} {
			_, ok := mustParse(t, layout).TerminalValue()
			require.False(t, ok, "layout %q should not be terminal", layout)
		}
	})

	t.Run("scoring from the maximizer's mark", func(t *testing.T) {
		b, err := NewBoardFor(O)
		require.NoError(t, err)
		for _, m := range []Move{{0, 0}, {1, 1}, {2, 2}} {
			b.cells[m.Row][m.Col] = O
		}

		v, ok := b.TerminalValue()

		require.True(t, ok)
		require.Equal(t, 1.0, v)
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("scanning empty cells in row-major order", func(t *testing.T) {
		b := mustParse(t, "X.O|.X.|O..")

		require.Equal(t, []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}, b.LegalMoves())
	})

	t.Run("never returning an occupied cell", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 200; i++ {
			b := NewBoard()
			for row := 0; row < Size; row++ {
				for col := 0; col < Size; col++ {
					b.cells[row][col] = Mark(rng.Intn(3))
				}
			}

			moves := b.LegalMoves()

			for _, m := range moves {
				require.Equal(t, Empty, b.At(m))
			}
			require.Equal(t, Size*Size, len(moves)+b.Occupied())
		}
	})
}

func TestPlaceAndClear(t *testing.T) {
	t.Run("restoring the exact board after undo", func(t *testing.T) {
		for _, layout := range []string{".........", "X.O|.X.|O..", "XOX|XOO|OX."} {
			b := mustParse(t, layout)
			for _, m := range b.LegalMoves() {
				for _, side := range []searcher.Perspective{searcher.Maximizing, searcher.Minimizing} {
					before := *b

					b.Apply(m, side)
					require.NotEqual(t, before, *b)
					b.Undo(m)

					require.Equal(t, before, *b, "layout %q move %v", layout, m)
				}
			}
		}
	})

	t.Run("placing a mark on an empty cell", func(t *testing.T) {
		b := NewBoard()

		require.NoError(t, b.Place(Move{1, 2}, O))
		require.Equal(t, O, b.At(Move{1, 2}))

		b.Clear(Move{1, 2})
		require.Equal(t, *NewBoard(), *b)
	})

	t.Run("rejecting invalid placements", func(t *testing.T) {
		b := mustParse(t, "X..|...|...")

		require.ErrorIs(t, b.Place(Move{0, 0}, O), ErrInvalidState, "occupied cell")
		require.ErrorIs(t, b.Place(Move{3, 0}, O), ErrInvalidState, "off the board")
		require.ErrorIs(t, b.Place(Move{0, -1}, O), ErrInvalidState, "off the board")
		require.ErrorIs(t, b.Place(Move{1, 1}, Empty), ErrInvalidState, "empty mark")
		require.ErrorIs(t, b.Place(Move{0, 0}, O), searcher.ErrInvalidState, "Should share the engine's error kind")

		won := mustParse(t, "XXX|OO.|...")
		require.ErrorIs(t, won.Place(Move{1, 2}, O), ErrInvalidState, "finished game")
	})
}

func TestBestMove(t *testing.T) {
	t.Run("picking the corner on an empty board", func(t *testing.T) {
		got, err := NewBoard().BestMove()

		require.NoError(t, err)
		require.Equal(t, Move{0, 0}, got, "Every move draws so the first one wins the tie")
	})

	t.Run("preferring the first forced win over a later immediate win", func(t *testing.T) {
		b := mustParse(t, ".OO|XX.|OX.")

		got, err := b.Decide(searcher.Maximizing)

		require.NoError(t, err)
		require.Equal(t, Move{0, 0}, got.Move)
		require.Equal(t, 1.0, got.Value)
		require.Equal(t, ".OO\nXX.\nOX.", b.String(), "Should leave the board untouched")
	})

	t.Run("returning the first best move by unpruned scores", func(t *testing.T) {
		layouts := []string{
			".........",
			"X........",
			"....X....",
			"O.X|.X.|...",
			"OO.|XX.|...",
			"...|OO.|X.X",
			"X.O|...|..X",
		}
		for _, layout := range layouts {
			b := mustParse(t, layout)
			for _, side := range []searcher.Perspective{searcher.Maximizing, searcher.Minimizing} {
				var want Move
				wantValue := 0.0
				for i, m := range b.LegalMoves() {
					b.Apply(m, side)
					v := searcher.Minimax[Move](b, side.Opponent()).Value
					b.Undo(m)
					if i == 0 || (side == searcher.Maximizing && v > wantValue) || (side == searcher.Minimizing && v < wantValue) {
						want, wantValue = m, v
					}
				}

				got, err := b.Decide(side)

				require.NoError(t, err)
				require.Equal(t, want, got.Move, "layout %q side %s", layout, side)
				require.Equal(t, wantValue, got.Value, "layout %q side %s", layout, side)
			}
		}
	})

	t.Run("deciding the same move on repeated and parallel calls", func(t *testing.T) {
		b := mustParse(t, "X.O|...|..X")
		first, err := b.BestMove()
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			got, err := b.BestMove()
			require.NoError(t, err)
			require.Equal(t, first, got)

			got, err = b.BestMove(searcher.WithGoroutines(4))
			require.NoError(t, err)
			require.Equal(t, first, got)
		}
	})

	t.Run("taking the win that also blocks the diagonal", func(t *testing.T) {
		b := mustParse(t, "X..|.X.|OO.")

		got, err := b.Decide(searcher.Minimizing)

		require.NoError(t, err)
		require.Equal(t, Move{2, 2}, got.Move, "O should win on the bottom row")
		require.Equal(t, -1.0, got.Value)
	})

	t.Run("rejecting a finished game", func(t *testing.T) {
		for _, layout := range []string{"XOX|XOO|OXX", "XXX|OO.|..."} {
			_, err := mustParse(t, layout).BestMove()
			require.ErrorIs(t, err, ErrInvalidState, "layout %q", layout)
			require.ErrorIs(t, err, searcher.ErrInvalidState, "layout %q", layout)
		}
	})
}
