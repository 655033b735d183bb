package metrics

import (
	"time"

	"github.com/google/uuid"

	"hex/searcher"
)

// MoveMetric is the telemetry of one decision inside a game.
type MoveMetric struct {
	Step     int
	Player   string
	X        int
	Y        int
	Nodes    int64
	Depth    int
	Duration time.Duration
	Type     searcher.SearchType
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	ID             uuid.UUID
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// AgentConfig describes one agent in a matchup. Depth selects the
// fixed-depth strategy, Budget the iterative one.
type AgentConfig struct {
	ID     int
	Name   string
	Depth  int
	Budget time.Duration
}

// GameRecord ties a game summary to the configs of the agents that played it.
type GameRecord struct {
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

// MoveRecord ties a move's telemetry to the game it was played in.
type MoveRecord struct {
	Game uuid.UUID // GameMetric.ID
	MoveMetric
}
