package agent

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hex/game"
	"hex/searcher"
)

// RandomAgent plays a uniformly random legal move. Baseline opponent for
// matchups and tests.
type RandomAgent struct {
	name string
}

func NewRandomAgent(name string) *RandomAgent {
	return &RandomAgent{name: name}
}

func (a *RandomAgent) FindMove(state game.State) searcher.Decision {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		log.Warn().Msg("no legal move found")
		return searcher.Decision{Type: searcher.SearchRandom}
	}

	return searcher.Decision{
		Move:    moves[rand.Intn(len(moves))],
		HasMove: true,
		Type:    searcher.SearchRandom,
	}
}

func (a *RandomAgent) Timeout() {}

func (a *RandomAgent) Name() string {
	return a.name
}
