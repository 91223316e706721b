package metrics

import (
	"alphabeta/searcher"
	"time"
)

type AgentConfig struct {
	ID         int
	Kind       string // "search", "random" or "remote"
	Goroutines int
	Seed       uint64
	URL        string // Agent server for "remote"
}

type MoveMetric struct {
	Step   int
	Player string // Mark placed
	Row    int
	Col    int
	searcher.SearchMetric
}

type GameMetric struct {
	StartingPlayer string // Mark placed first
	Winner         string // Winning mark, "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}
