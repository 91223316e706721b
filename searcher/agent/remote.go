package agent

import (
	"alphabeta/game/tictactoe"
	"alphabeta/searcher"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type remoteAgent struct {
	url    string
	client *http.Client
}

// NewRemoteAgent returns an agent asking an agent server at url for its moves.
func NewRemoteAgent(url string, client *http.Client) Agent {
	if client == nil {
		client = http.DefaultClient
	}
	return remoteAgent{url: strings.TrimSuffix(url, "/"), client: client}
}

func (a remoteAgent) FindMove(board *tictactoe.Board, side searcher.Perspective) (Choice, error) {
	// Side only means something next to the mark that maximizes
	body, err := json.Marshal(MoveRequest{
		Board:     board.String(),
		Side:      side.String(),
		Maximizer: board.Maximizer().String(),
	})
	if err != nil {
		return Choice{}, fmt.Errorf("failed to encode move request: %w", err)
	}

	resp, err := a.client.Post(a.url+"/findmove", "application/json", bytes.NewReader(body))
	if err != nil {
		return Choice{}, fmt.Errorf("failed to request move: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
		if resp.StatusCode == http.StatusUnprocessableEntity {
			err = fmt.Errorf("%w: %w", tictactoe.ErrInvalidState, err)
		}
		return Choice{}, err
	}

	var mr MoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return Choice{}, fmt.Errorf("failed to decode move: %w", err)
	}

	choice := Choice{
		Move:         tictactoe.Move{Row: mr.Row, Col: mr.Col},
		SearchMetric: searcher.SearchMetric{NodesVisited: mr.NodesVisited},
	}
	if mr.Value != nil {
		choice.Value, choice.Scored = *mr.Value, true
	}
	return choice, nil
}
