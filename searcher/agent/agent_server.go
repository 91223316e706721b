package agent

import (
	"alphabeta/game/tictactoe"
	"alphabeta/searcher"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// MoveRequest asks for the move of side on a board given as nine cells in
// row-major order (see tictactoe.ParseFor). Maximizer names the mark that
// maximizes, X when empty.
type MoveRequest struct {
	Board     string `json:"board"`
	Side      string `json:"side"`
	Maximizer string `json:"maximizer,omitempty"`
}

// MoveResponse carries the move's value only when the agent scored it.
type MoveResponse struct {
	Row          int      `json:"row"`
	Col          int      `json:"col"`
	Value        *float64 `json:"value,omitempty"`
	NodesVisited int      `json:"nodes_visited"`
}

type TerminalRequest struct {
	Board     string `json:"board"`
	Maximizer string `json:"maximizer,omitempty"`
}

type TerminalResponse struct {
	Terminal bool    `json:"terminal"`
	Value    float64 `json:"value"`
	Winner   string  `json:"winner"`
}

// NewServer exposes the agent's move search and the board's terminal test to
// an external game loop.
func NewServer(a Agent) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /findmove", func(w http.ResponseWriter, r *http.Request) {
		handleFindMove(w, r, a)
	})
	mux.HandleFunc("POST /terminal", handleTerminal)
	return mux
}

// StartAgentServer serves the agent on addr until the server fails.
func StartAgentServer(addr string, a Agent) error {
	log.Info().Msgf("starting agent server on %s...", addr)
	return http.ListenAndServe(addr, NewServer(a))
}

func handleFindMove(w http.ResponseWriter, r *http.Request, a Agent) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	board, err := parseBoard(req.Board, req.Maximizer)
	if err != nil {
		http.Error(w, "bad board: "+err.Error(), http.StatusBadRequest)
		return
	}
	side, err := ParseSide(req.Side)
	if err != nil {
		http.Error(w, "bad side: "+err.Error(), http.StatusBadRequest)
		return
	}

	choice, err := a.FindMove(board, side)
	if errors.Is(err, tictactoe.ErrInvalidState) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to find move")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := MoveResponse{Row: choice.Move.Row, Col: choice.Move.Col, NodesVisited: choice.NodesVisited}
	if choice.Scored {
		resp.Value = &choice.Value
	}
	writeJSON(w, resp)
}

func handleTerminal(w http.ResponseWriter, r *http.Request) {
	var req TerminalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	board, err := parseBoard(req.Board, req.Maximizer)
	if err != nil {
		http.Error(w, "bad board: "+err.Error(), http.StatusBadRequest)
		return
	}

	value, terminal := board.TerminalValue()
	resp := TerminalResponse{Terminal: terminal, Value: value}
	if winner := board.Winner(); winner != tictactoe.Empty {
		resp.Winner = winner.String()
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "failed to encode response: "+err.Error(), http.StatusInternalServerError)
	}
}

// parseBoard reads layout as a board on which maximizer maximizes, X when
// maximizer is empty.
func parseBoard(layout, maximizer string) (*tictactoe.Board, error) {
	mark := tictactoe.X
	if maximizer != "" {
		var err error
		if mark, err = tictactoe.ParseMark(maximizer); err != nil {
			return nil, err
		}
	}
	return tictactoe.ParseFor(layout, mark)
}

// ParseSide reads "max" or "min", defaulting to max when empty.
func ParseSide(s string) (searcher.Perspective, error) {
	switch s {
	case "", searcher.Maximizing.String():
		return searcher.Maximizing, nil
	case searcher.Minimizing.String():
		return searcher.Minimizing, nil
	default:
		return 0, fmt.Errorf("unknown side %q", s)
	}
}
