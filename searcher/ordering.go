package searcher

import (
	"sort"

	"hex/game"
)

type scoredMove struct {
	move  game.Move
	score int64
}

// orderedMoves ranks every legal move by the value of the position it
// produces, best first, ties kept in enumeration order. The one-ply scores
// only drive ordering for better pruning; they are recomputed at every node
// rather than cached, so pruned node counts stay reproducible.
func orderedMoves(state game.State, perspective game.CellState, evaluate game.Evaluate) []scoredMove {
	moves := state.LegalMoves()
	scored := make([]scoredMove, 0, len(moves))
	for _, move := range moves {
		child := state.Play(move)
		scored = append(scored, scoredMove{move: move, score: evaluate(child, perspective)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	return scored
}
