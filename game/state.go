package game

// The six hexagonal neighbors of a cell on the rhombus board.
var neighborOffsets = [6]Move{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, -1}, {-1, 1}}

// HexState is the dynamic state of one Hex game: cell occupancy on an NxN
// rhombus, the player to move, and the winner once one side has connected its
// edges.
type HexState struct {
	size   int
	cells  []CellState
	player CellState
	winner CellState
}

// NewHexState returns an empty board of the given size with PlayerA to move.
func NewHexState(size int) *HexState {
	if size < 2 {
		panic("board size must be at least 2")
	}
	return &HexState{
		size:   size,
		cells:  make([]CellState, size*size),
		player: PlayerA,
	}
}

func (s *HexState) Copy() *HexState {
	cellsCopy := make([]CellState, len(s.cells))
	copy(cellsCopy, s.cells)

	return &HexState{
		size:   s.size,
		cells:  cellsCopy,
		player: s.player,
		winner: s.winner,
	}
}

func (s *HexState) Size() int {
	return s.size
}

func (s *HexState) Cell(m Move) CellState {
	return s.cells[m.X*s.size+m.Y]
}

func (s *HexState) Player() CellState {
	return s.player
}

func (s *HexState) Winner() CellState {
	return s.winner
}

func (s *HexState) GameOver() bool {
	return s.winner != Empty
}

// LegalMoves enumerates every empty cell in column-major order. A decided
// game has no legal moves.
func (s *HexState) LegalMoves() []Move {
	if s.winner != Empty {
		return nil
	}

	moves := make([]Move, 0, len(s.cells))
	for x := 0; x < s.size; x++ {
		for y := 0; y < s.size; y++ {
			if s.cells[x*s.size+y] == Empty {
				moves = append(moves, Move{X: x, Y: y})
			}
		}
	}
	return moves
}

// Play places the mover's stone and returns the resulting position. The
// receiver is left untouched. Placing on an occupied cell or after the game
// is over breaks the State contract.
func (s *HexState) Play(m Move) State {
	if s.winner != Empty {
		panic("cannot play on a decided game")
	}
	if s.Cell(m) != Empty {
		panic("cannot play on an occupied cell")
	}

	next := s.Copy()
	next.cells[m.X*next.size+m.Y] = s.player
	if next.connectsEdges(s.player) {
		next.winner = s.player
	}
	next.player = s.player.Opponent()
	return next
}

// Neighbors returns the in-range hexagonal neighbors of a cell.
func (s *HexState) Neighbors(m Move) []Move {
	neighbors := make([]Move, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		n := Move{X: m.X + offset.X, Y: m.Y + offset.Y}
		if n.X >= 0 && n.X < s.size && n.Y >= 0 && n.Y < s.size {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Stones lists every cell occupied by the given player.
func (s *HexState) Stones(player CellState) []Move {
	stones := []Move{}
	for x := 0; x < s.size; x++ {
		for y := 0; y < s.size; y++ {
			if s.cells[x*s.size+y] == player {
				stones = append(stones, Move{X: x, Y: y})
			}
		}
	}
	return stones
}

// connectsEdges reports whether the player's stones form a chain between the
// player's two board edges: left to right for PlayerA, top to bottom for
// PlayerB. Flood fill from the starting edge.
func (s *HexState) connectsEdges(player CellState) bool {
	visited := make([]bool, len(s.cells))
	frontier := []Move{}

	for i := 0; i < s.size; i++ {
		start := Move{X: 0, Y: i}
		if player == PlayerB {
			start = Move{X: i, Y: 0}
		}
		if s.Cell(start) == player {
			visited[start.X*s.size+start.Y] = true
			frontier = append(frontier, start)
		}
	}

	for len(frontier) > 0 {
		cell := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if player == PlayerA && cell.X == s.size-1 {
			return true
		}
		if player == PlayerB && cell.Y == s.size-1 {
			return true
		}

		for _, n := range s.Neighbors(cell) {
			index := n.X*s.size + n.Y
			if !visited[index] && s.cells[index] == player {
				visited[index] = true
				frontier = append(frontier, n)
			}
		}
	}
	return false
}
