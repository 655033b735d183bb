package searcher

import "hex/game"

// treeState is a synthetic position with a fixed branching factor: every
// non-terminal node offers the same number of moves, forever. It gives the
// search a complete, unbounded game tree with a known shape.
type treeState struct {
	branching int
	player    game.CellState
	over      bool
}

func (s treeState) Size() int {
	return s.branching
}

func (s treeState) Cell(game.Move) game.CellState {
	return game.Empty
}

func (s treeState) LegalMoves() []game.Move {
	if s.over {
		return nil
	}
	moves := make([]game.Move, s.branching)
	for i := range moves {
		moves[i] = game.Move{X: i}
	}
	return moves
}

func (s treeState) Play(game.Move) game.State {
	return treeState{branching: s.branching, player: s.player.Opponent()}
}

func (s treeState) Neighbors(game.Move) []game.Move {
	return nil
}

func (s treeState) Player() game.CellState {
	return s.player
}

func (s treeState) GameOver() bool {
	return s.over
}

func (s treeState) Winner() game.CellState {
	return game.Empty
}

// sequenceEval returns a leaf evaluation that yields a new value on every
// call. Strictly increasing values defeat every alpha-beta cutoff, so the
// search expands the complete tree; strictly decreasing values trigger
// cutoffs early.
func sequenceEval(step int64) game.Evaluate {
	var calls int64
	return func(game.State, game.CellState) int64 {
		calls++
		return calls * step
	}
}

// fullMinimax is the no-pruning reference implementation the pruning search
// must agree with. It counts one node per call, like the real search.
func fullMinimax(state game.State, depth int, maximizing bool, rootPlayer game.CellState, evaluate game.Evaluate, nodes *int64) int64 {
	*nodes++

	if depth == 0 || state.GameOver() {
		return evaluate(state, rootPlayer)
	}

	var value int64
	first := true
	for _, move := range state.LegalMoves() {
		eval := fullMinimax(state.Play(move), depth-1, !maximizing, rootPlayer, evaluate, nodes)
		if first {
			value = eval
			first = false
			continue
		}
		if maximizing && eval > value {
			value = eval
		}
		if !maximizing && eval < value {
			value = eval
		}
	}
	if first { // no moves, value falls back to the static evaluation
		return evaluate(state, rootPlayer)
	}
	return value
}
