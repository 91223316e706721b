package experiments

import (
	"alphabeta/engine"
	"alphabeta/experiments/metrics"
	"alphabeta/game/tictactoe"
	"alphabeta/searcher"
	"alphabeta/searcher/agent"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Summary counts the outcomes of a matchup from the first agent's point of view.
type Summary struct {
	Agent1 int
	Agent2 int
	Wins   int
	Losses int
	Draws  int
}

// Matchups pairs a sequential search agent against a random agent on both
// marks, against itself, and against a parallel search agent. When agentURL is
// set, the agent served there also plays the sequential search agent.
func Matchups(goroutines int, seed uint64, agentURL string) ([]metrics.AgentConfig, [][]metrics.AgentConfig) {
	search := metrics.AgentConfig{ID: 1, Kind: "search", Goroutines: 1}
	parallel := metrics.AgentConfig{ID: 2, Kind: "search", Goroutines: goroutines}
	random := metrics.AgentConfig{ID: 3, Kind: "random", Seed: seed}

	configs := []metrics.AgentConfig{search, parallel, random}
	matchUps := [][]metrics.AgentConfig{
		{search, random},
		{random, search},
		{search, search},
		{parallel, search},
	}

	if agentURL != "" {
		remote := metrics.AgentConfig{ID: 4, Kind: "remote", URL: agentURL}
		configs = append(configs, remote)
		matchUps = append(matchUps, []metrics.AgentConfig{remote, search})
	}
	return configs, matchUps
}

// Run plays games per matchup and stores the records under dir/name.
func Run(name, dir string, games int, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) ([]Summary, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := make([]Summary, 0, len(matchUps))

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]
		summary := Summary{Agent1: config1.ID, Agent2: config2.ID}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < games; i++ {
			// Random agents get a fresh stream per game so games differ.
			a1 := createAgent(config1, uint64(i))
			a2 := createAgent(config2, uint64(i))

			// Play the game
			winner, gameMetric, moveMetrics, err := engine.NewLocalEngine(a1, a2).Run()
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			// Record the game and its moves
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			// Tally the result for agent1
			switch winner {
			case tictactoe.X:
				summary.Wins++
			case tictactoe.O:
				summary.Losses++
			default:
				summary.Draws++
			}
			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, gameMetric.Winner)
		}
		summaries = append(summaries, summary)
		log.Info().Msgf("completed matchup %d of %d: %+v", mi+1, len(matchUps), summary)
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store the records
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return summaries, nil
}

func createAgent(config metrics.AgentConfig, game uint64) agent.Agent {
	switch {
	case config.Kind == "random":
		return agent.NewRandomAgent(config.Seed + game)
	case config.Kind == "remote":
		return agent.NewRemoteAgent(config.URL, nil)
	case config.Goroutines > 1:
		return agent.NewSearchAgent(searcher.WithGoroutines(config.Goroutines))
	default:
		return agent.NewSearchAgent()
	}
}
