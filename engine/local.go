package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hex/agent"
	"hex/experiments/metrics"
	"hex/game"
)

// Engine runs one local game between two agents on a single goroutine.
// Agents[0] plays PlayerA, Agents[1] plays PlayerB.
type Engine struct {
	State  game.State
	Agents []agent.Agent
}

func LocalEngine(state game.State, agents []agent.Agent) *Engine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	return &Engine{
		State:  state,
		Agents: agents,
	}
}

// Run executes the game loop until one side connects its edges or an agent
// reports no move, and returns the winner plus per-move telemetry.
func (e *Engine) Run() (game.CellState, metrics.GameMetric, []metrics.MoveMetric) {
	gameID := uuid.New()
	startingPlayer := e.State.Player()
	start := time.Now()
	moveMetrics := []metrics.MoveMetric{}

	log.Info().
		Str("game", gameID.String()).
		Str("player", startingPlayer.String()).
		Msg("game starting")

	step := 0
	// The board bounds the game length: one stone per cell.
	limit := e.State.Size() * e.State.Size()
	for !e.State.GameOver() && step < limit {
		current := e.State.Player()
		mover := e.Agents[agentIndex(current)]

		decisionStart := time.Now()
		decision := mover.FindMove(e.State)
		elapsed := time.Since(decisionStart)

		if !decision.HasMove {
			log.Warn().
				Str("game", gameID.String()).
				Str("player", current.String()).
				Str("agent", mover.Name()).
				Msg("agent returned no move, stopping game")
			break
		}

		e.State = e.State.Play(decision.Move)
		step++

		log.Info().
			Str("game", gameID.String()).
			Int("step", step).
			Str("player", current.String()).
			Int("x", decision.Move.X).
			Int("y", decision.Move.Y).
			Int64("nodes", decision.Nodes).
			Int("depth", decision.Depth).
			Str("search", string(decision.Type)).
			Dur("took", elapsed).
			Msg("move played")

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:     step,
			Player:   current.String(),
			X:        decision.Move.X,
			Y:        decision.Move.Y,
			Nodes:    decision.Nodes,
			Depth:    decision.Depth,
			Duration: elapsed,
			Type:     decision.Type,
		})
	}

	winner := e.State.Winner()
	log.Info().
		Str("game", gameID.String()).
		Str("winner", winner.String()).
		Int("moves", step).
		Msg("game over")

	gameMetric := metrics.GameMetric{
		ID:             gameID,
		StartingPlayer: startingPlayer.String(),
		Winner:         winner.String(),
		StartTime:      start,
		EndTime:        time.Now(),
		Duration:       time.Since(start),
		TotalMoves:     step,
	}
	return winner, gameMetric, moveMetrics
}

func agentIndex(player game.CellState) int {
	if player == game.PlayerA {
		return 0
	}
	return 1
}
