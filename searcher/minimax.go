package searcher

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"hex/game"
)

type Option func(m *Minimax)

// WithDepth fixes the maximum search depth for the fixed-depth strategy.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithDuration sets a wall clock budget per decision and selects the
// iterative deepening strategy.
func WithDuration(budget time.Duration) Option {
	return func(m *Minimax) {
		if budget > 0 {
			m.budget = budget
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// Minimax implements depth-limited minimax with alpha-beta pruning and
// heuristic move ordering over a game.State. A Minimax runs one decision at a
// time on a single goroutine: each FindMove call resets the node counter and
// the clock baseline, and no knowledge carries over between calls.
type Minimax struct {
	depth      int
	budget     time.Duration
	evaluate   game.Evaluate
	rootPlayer game.CellState
	startTime  time.Time
	nodes      int64
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		evaluate: game.EvaluatePosition,
	}
	for _, option := range options {
		option(m)
	}
	if m.depth <= 0 && m.budget <= 0 {
		panic("Must specify search depth or time budget")
	}
	return m
}

// FindMove computes one decision for the player to move in state. With a
// time budget configured the search deepens iteratively until the budget
// expires; otherwise it searches once at the fixed depth.
func (m *Minimax) FindMove(state game.State) Decision {
	m.rootPlayer = state.Player()
	m.nodes = 0
	m.startTime = time.Now()

	if m.budget > 0 {
		return m.deepen(state)
	}
	return m.fixedDepth(state)
}

func (m *Minimax) fixedDepth(state game.State) Decision {
	move, ok := m.searchRoot(state, m.depth)
	if !ok {
		log.Warn().Msg("no legal move found")
	}
	return Decision{
		Move:    move,
		HasMove: ok,
		Nodes:   m.nodes,
		Depth:   m.depth,
		Type:    SearchFixedDepth,
	}
}

// deepen repeats full root searches at depth 1, 2, 3, ... until the wall
// clock budget runs out. A deeper result always supersedes a shallower one,
// even when the clock truncated the deeper search mid-tree: no signal
// distinguishes a complete depth-d result from a truncated one, so the
// reported depth stays one less than the last depth searched.
func (m *Minimax) deepen(state game.State) Decision {
	var best game.Move
	found := false
	depth := 1

	for {
		move, ok := m.searchRoot(state, depth)
		if ok {
			best = move
			found = true
		}
		if time.Since(m.startTime) >= m.budget {
			break
		}
		depth++
	}

	if !found {
		log.Warn().Msg("no legal move found")
	}
	return Decision{
		Move:    best,
		HasMove: found,
		Nodes:   m.nodes,
		Depth:   depth - 1,
		Type:    SearchIterative,
	}
}

// searchRoot is one maximizing level of the search that also retains which
// move produced the best value; deeper levels only need the value. A
// position without legal moves yields no move.
func (m *Minimax) searchRoot(state game.State, depth int) (game.Move, bool) {
	alpha := int64(math.MinInt64)
	beta := int64(math.MaxInt64)
	var bestMove game.Move
	var bestValue int64
	found := false

	for _, candidate := range orderedMoves(state, m.rootPlayer, m.evaluate) {
		child := state.Play(candidate.move)
		value := m.search(child, depth-1, alpha, beta, false)

		if !found || value > bestValue {
			bestValue = value
			bestMove = candidate.move
			found = true
		}
		if bestValue > alpha {
			alpha = bestValue
		}
	}
	return bestMove, found
}

// search returns the minimax value of state. Alpha and beta travel by value
// and are tightened locally per node; once beta <= alpha the remaining
// siblings are never expanded. Every call counts one node on entry, before
// any cutoff check. Leaves are always evaluated from the root player's
// perspective, whoever is to move.
func (m *Minimax) search(state game.State, depth int, alpha, beta int64, maximizing bool) int64 {
	m.nodes++

	if depth == 0 || state.GameOver() || m.expired() {
		return m.evaluate(state, m.rootPlayer)
	}

	value := int64(math.MinInt64)
	if !maximizing {
		value = int64(math.MaxInt64)
	}

	for _, candidate := range orderedMoves(state, m.rootPlayer, m.evaluate) {
		child := state.Play(candidate.move)
		eval := m.search(child, depth-1, alpha, beta, !maximizing)

		if maximizing {
			if eval > value {
				value = eval
			}
			if value > alpha {
				alpha = value
			}
		} else {
			if eval < value {
				value = eval
			}
			if value < beta {
				beta = value
			}
		}

		if beta <= alpha {
			break // prune remaining siblings
		}
	}
	return value
}

// expired reports whether the wall clock budget has run out. This poll, made
// at the same point as the depth cutoff, is the only cancellation point: a
// deep unpruned branch between polls can overrun the nominal budget.
func (m *Minimax) expired() bool {
	return m.budget > 0 && time.Since(m.startTime) >= m.budget
}
