package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hex/agent"
	"hex/engine"
	"hex/experiments/metrics"
	"hex/game"
	"hex/searcher"
)

// MatchOptions configures one matchup run.
type MatchOptions struct {
	BoardSize int
	Games     int
	Depth     int           // fixed-depth agent
	Budget    time.Duration // iterative deepening agent
}

// RunDepthVersusBudget plays a number of games between a fixed-depth agent
// and an iterative deepening agent and writes the records as CSV files.
func RunDepthVersusBudget(options MatchOptions) error {
	configs := []metrics.AgentConfig{
		{ID: 1, Name: "fixed-depth", Depth: options.Depth},
		{ID: 2, Name: "iterative", Budget: options.Budget},
	}

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	for i := 0; i < options.Games; i++ {
		log.Info().Int("game", i+1).Int("of", options.Games).Msg("starting game")

		agents := []agent.Agent{
			agent.NewMinimaxAgent(configs[0].Name, searcher.WithDepth(options.Depth)),
			agent.NewMinimaxAgent(configs[1].Name, searcher.WithDuration(options.Budget)),
		}
		// Alternate who plays PlayerA for fairness across games
		agent1, agent2 := configs[0].ID, configs[1].ID
		if i%2 == 1 {
			agents[0], agents[1] = agents[1], agents[0]
			agent1, agent2 = agent2, agent1
		}

		e := engine.LocalEngine(game.NewHexState(options.BoardSize), agents)
		_, gameMetric, moveMetrics := e.Run()

		gameRecords = append(gameRecords, metrics.GameRecord{
			Agent1:     agent1,
			Agent2:     agent2,
			GameMetric: gameMetric,
		})
		for _, m := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       gameMetric.ID,
				MoveMetric: m,
			})
		}
	}

	writer, err := metrics.NewWriter("depth_vs_budget")
	if err != nil {
		return fmt.Errorf("failed to create metrics writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}

	log.Info().Int("games", len(gameRecords)).Int("moves", len(moveRecords)).Msg("experiment records written")
	return nil
}
