package game

// CellState is the occupancy of one board cell. The two occupied states double
// as player identities: PlayerA connects the left and right edges, PlayerB the
// top and bottom edges.
type CellState int

const (
	Empty CellState = iota
	PlayerA
	PlayerB
)

func (c CellState) Opponent() CellState {
	switch c {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

func (c CellState) String() string {
	switch c {
	case PlayerA:
		return "playerA"
	case PlayerB:
		return "playerB"
	default:
		return "empty"
	}
}

// Move is a stone placement on an empty cell.
type Move struct {
	X int
	Y int
}

// State should be immutable from the searcher's point of view - Play always
// returns a new copy, the receiver is never modified.
type State interface {
	Size() int
	Cell(Move) CellState
	LegalMoves() []Move
	Play(Move) State
	Neighbors(Move) []Move
	Player() CellState
	GameOver() bool
	Winner() CellState
}

// Evaluate scores a position from the given player's perspective; a higher
// score means a more favorable position for that player.
type Evaluate func(State, CellState) int64
