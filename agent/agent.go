package agent

import (
	"hex/game"
	"hex/searcher"
)

// Agent decides one move per call for the player to move in the given state.
type Agent interface {
	FindMove(state game.State) searcher.Decision
	// Timeout notifies the agent that the time budget for the current
	// decision has elapsed. Acknowledgment only: an in-flight search bounds
	// itself by its own clock poll and is never interrupted.
	Timeout()
	Name() string
}

// MinimaxAgent adapts a searcher.Minimax to the Agent interface.
type MinimaxAgent struct {
	name     string
	searcher *searcher.Minimax
}

func NewMinimaxAgent(name string, options ...searcher.Option) *MinimaxAgent {
	return &MinimaxAgent{
		name:     name,
		searcher: searcher.NewMinimax(options...),
	}
}

func (a *MinimaxAgent) FindMove(state game.State) searcher.Decision {
	return a.searcher.FindMove(state)
}

// Timeout does nothing: the searcher polls its own clock.
func (a *MinimaxAgent) Timeout() {}

func (a *MinimaxAgent) Name() string {
	return a.name
}
