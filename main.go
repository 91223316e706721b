package main

import (
	"alphabeta/config"
	"alphabeta/engine"
	"alphabeta/experiments"
	"alphabeta/game/tictactoe"
	"alphabeta/game/tree"
	"alphabeta/searcher"
	"alphabeta/searcher/agent"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "tree", "One of tree, play, experiment, serve")
	values := flag.String("values", "7,5,6,9,2,4,3,1", "Comma-separated leaf values of the depth-3 tree")
	randomMark := flag.String("random", "O", "Mark played by the random opponent in play mode")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(cfg.Level())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	switch *mode {
	case "tree":
		err = runTree(*values)
	case "play":
		err = runPlay(cfg, *randomMark)
	case "experiment":
		err = runExperiment(cfg)
	case "serve":
		err = agent.StartAgentServer(cfg.AgentAddr, agent.NewSearchAgent(searcher.WithGoroutines(cfg.Goroutines)))
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func parseValues(s string) ([]searcher.Value, error) {
	fields := strings.Split(s, ",")
	values := make([]searcher.Value, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("bad leaf value %q: %w", f, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func runTree(s string) error {
	values, err := parseValues(s)
	if err != nil {
		return err
	}
	t, err := tree.New(values)
	if err != nil {
		return err
	}

	start := time.Now()
	pruned := searcher.Search[tree.Child](t, searcher.Maximizing)
	elapsed := time.Since(start)
	full := searcher.Minimax[tree.Child](t, searcher.Maximizing)

	fmt.Printf("Optimal Value: %v\n", pruned.Value)
	fmt.Printf("Time taken: %s\n", elapsed)
	fmt.Printf("Number of nodes visited: %d (cutoffs: %d, without pruning: %d)\n", pruned.NodesVisited, pruned.Cutoffs, full.NodesVisited)
	return nil
}

func runPlay(cfg *config.Config, randomMark string) error {
	ai := agent.NewSearchAgent(searcher.WithGoroutines(cfg.Goroutines))
	opponent := agent.NewRandomAgent(cfg.Seed)

	agentX, agentO := ai, opponent
	starting := tictactoe.O
	if strings.EqualFold(randomMark, "X") {
		agentX, agentO = opponent, ai
		starting = tictactoe.X
	}

	e := engine.NewLocalEngine(agentX, agentO,
		engine.WithStartingMark(starting),
		engine.WithObserver(func(step int, mark tictactoe.Mark, move tictactoe.Move, board *tictactoe.Board) {
			fmt.Printf("%d. %s %v\n%s\n\n", step, mark, move, board)
		}))

	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}
	if winner == tictactoe.Empty {
		fmt.Printf("Draw after %d moves (%s)\n", gameMetric.TotalMoves, gameMetric.Duration)
	} else {
		fmt.Printf("%s wins after %d moves (%s)\n", winner, gameMetric.TotalMoves, gameMetric.Duration)
	}
	return nil
}

func runExperiment(cfg *config.Config) error {
	configs, matchUps := experiments.Matchups(cfg.Goroutines, cfg.Seed, cfg.AgentURL)
	summaries, err := experiments.Run("matchups", cfg.OutputDir, cfg.Games, configs, matchUps)
	if err != nil {
		return err
	}
	for _, s := range summaries {
		fmt.Printf("agent %d vs agent %d: %d wins, %d losses, %d draws\n", s.Agent1, s.Agent2, s.Wins, s.Losses, s.Draws)
	}
	return nil
}
