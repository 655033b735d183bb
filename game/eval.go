package game

// Heuristic weights
const (
	centerBase  = 5000 // value of a stone on the central cell
	centerDecay = 500  // falloff per ring of Chebyshev distance

	openNeighborBonus  = 10 // per empty cell next to an own stone
	blockNeighborBonus = 15 // per empty cell next to an opponent stone
)

// EvaluatePosition scores a position from the given player's perspective as
// the sum of three terms: central control, the openness of the player's own
// stones, and the openness of the opponent's stones. Pure function of the
// position, no side effects.
func EvaluatePosition(s State, player CellState) int64 {
	return evaluateCentralControl(s, player) +
		evaluateDistributedPlacement(s, player) +
		evaluateBlockingMoves(s, player.Opponent())
}

// evaluateCentralControl rewards stones near the board's center. Each own
// stone contributes centerBase minus centerDecay per ring of Chebyshev
// distance, floored at zero.
func evaluateCentralControl(s State, player CellState) int64 {
	size := s.Size()
	centerX := size / 2
	centerY := size / 2

	var score int64
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			if s.Cell(Move{X: x, Y: y}) != player {
				continue
			}
			distance := max(abs(x-centerX), abs(y-centerY))
			stoneScore := int64(centerBase - distance*centerDecay)
			if stoneScore > 0 {
				score += stoneScore
			}
		}
	}
	return score
}

// evaluateDistributedPlacement rewards stones with room to grow: each empty
// cell adjacent to an own stone is worth a fixed bonus.
func evaluateDistributedPlacement(s State, player CellState) int64 {
	return openNeighborScore(s, player, openNeighborBonus)
}

// evaluateBlockingMoves tallies the empty cells around the given opponent's
// stones. The term is added to the scoring player's total, not subtracted
// from the opponent's; the established move ranking depends on this additive
// shape, so it must stay as is.
func evaluateBlockingMoves(s State, opponent CellState) int64 {
	return openNeighborScore(s, opponent, blockNeighborBonus)
}

func openNeighborScore(s State, owner CellState, bonus int64) int64 {
	var score int64
	for _, stone := range stones(s, owner) {
		for _, neighbor := range s.Neighbors(stone) {
			if s.Cell(neighbor) == Empty {
				score += bonus
			}
		}
	}
	return score
}

func stones(s State, owner CellState) []Move {
	if hs, ok := s.(*HexState); ok {
		return hs.Stones(owner)
	}

	found := []Move{}
	size := s.Size()
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			if s.Cell(Move{X: x, Y: y}) == owner {
				found = append(found, Move{X: x, Y: y})
			}
		}
	}
	return found
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
