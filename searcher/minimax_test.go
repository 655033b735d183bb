package searcher

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hex/game"
)

func TestNewMinimax(t *testing.T) {
	require.Panics(t, func() { NewMinimax() }, "must specify depth or budget")
	require.NotPanics(t, func() { NewMinimax(WithDepth(3)) })
	require.NotPanics(t, func() { NewMinimax(WithDuration(time.Second)) })
}

func TestNodeCounting(t *testing.T) {
	t.Run("a leaf call counts exactly one node", func(t *testing.T) {
		m := NewMinimax(WithDepth(1))
		m.rootPlayer = game.PlayerA

		m.search(treeState{branching: 3, player: game.PlayerA}, 0, math.MinInt64, math.MaxInt64, true)

		require.EqualValues(t, 1, m.nodes)
	})

	t.Run("an unpruned complete tree counts sum of b^i nodes", func(t *testing.T) {
		// Strictly increasing leaf values defeat every cutoff.
		for _, tc := range []struct {
			branching, depth int
			want             int64
		}{
			{branching: 3, depth: 1, want: 4},  // 1 + 3
			{branching: 2, depth: 2, want: 7},  // 1 + 2 + 4
			{branching: 3, depth: 2, want: 13}, // 1 + 3 + 9
			{branching: 4, depth: 2, want: 21}, // 1 + 4 + 16
		} {
			m := NewMinimax(WithDepth(tc.depth), WithEvaluationFn(sequenceEval(1)))
			m.rootPlayer = game.PlayerA

			m.search(treeState{branching: tc.branching, player: game.PlayerA}, tc.depth, math.MinInt64, math.MaxInt64, true)

			require.Equal(t, tc.want, m.nodes,
				"branching %d depth %d", tc.branching, tc.depth)
		}
	})

	t.Run("pruning only ever decreases the count", func(t *testing.T) {
		// Strictly decreasing leaf values cut off siblings early.
		m := NewMinimax(WithDepth(2), WithEvaluationFn(sequenceEval(-1)))
		m.rootPlayer = game.PlayerA

		m.search(treeState{branching: 3, player: game.PlayerA}, 2, math.MinInt64, math.MaxInt64, true)

		require.Less(t, m.nodes, int64(13), "cutoffs must skip siblings")
		require.GreaterOrEqual(t, m.nodes, int64(1))
	})

	t.Run("the counter resets per decision", func(t *testing.T) {
		m := NewMinimax(WithDepth(2))
		s := game.NewHexState(3)

		first := m.FindMove(s)
		second := m.FindMove(s)

		require.Equal(t, first.Nodes, second.Nodes)
		require.Equal(t, first.Move, second.Move, "the search is deterministic")
	})
}

func TestAlphaBetaMatchesFullMinimax(t *testing.T) {
	positions := map[string]game.State{
		"empty 3x3": game.NewHexState(3),
		"empty 4x4 after two moves": game.NewHexState(4).
			Play(game.Move{X: 1, Y: 1}).
			Play(game.Move{X: 2, Y: 2}),
		"contested 5x5": game.NewHexState(5).
			Play(game.Move{X: 2, Y: 2}).
			Play(game.Move{X: 2, Y: 1}).
			Play(game.Move{X: 1, Y: 2}).
			Play(game.Move{X: 3, Y: 2}),
	}

	for name, s := range positions {
		for depth := 1; depth <= 2; depth++ {
			m := NewMinimax(WithDepth(depth))
			m.rootPlayer = s.Player()

			pruned := m.search(s, depth, math.MinInt64, math.MaxInt64, true)

			var nodes int64
			unpruned := fullMinimax(s, depth, true, s.Player(), game.EvaluatePosition, &nodes)

			require.Equal(t, unpruned, pruned, "%s at depth %d", name, depth)
			require.LessOrEqual(t, m.nodes, nodes,
				"%s at depth %d: pruning must never expand more nodes", name, depth)
		}
	}
}

func TestFindMoveFixedDepth(t *testing.T) {
	t.Run("returns a legal move with telemetry", func(t *testing.T) {
		m := NewMinimax(WithDepth(2))
		s := game.NewHexState(3)

		decision := m.FindMove(s)

		require.True(t, decision.HasMove)
		require.Equal(t, game.Empty, s.Cell(decision.Move))
		require.Equal(t, 2, decision.Depth)
		require.Equal(t, SearchFixedDepth, decision.Type)
		require.Greater(t, decision.Nodes, int64(0))
	})

	t.Run("a single empty cell is the only candidate", func(t *testing.T) {
		// Eight stones, no connection yet, (1,1) left open.
		s := playSequence(game.NewHexState(3), []game.Move{
			{X: 0, Y: 0}, // A
			{X: 1, Y: 0}, // B
			{X: 2, Y: 0}, // A
			{X: 0, Y: 1}, // B
			{X: 0, Y: 2}, // A
			{X: 2, Y: 1}, // B
			{X: 2, Y: 2}, // A
			{X: 1, Y: 2}, // B
		})
		require.False(t, s.GameOver())

		decision := NewMinimax(WithDepth(1)).FindMove(s)

		require.True(t, decision.HasMove)
		require.Equal(t, game.Move{X: 1, Y: 1}, decision.Move)
	})

	t.Run("a decided game yields no move, not a panic", func(t *testing.T) {
		s := playSequence(game.NewHexState(2), []game.Move{
			{X: 0, Y: 0}, // A
			{X: 0, Y: 1}, // B
			{X: 1, Y: 0}, // A connects left to right
		})
		require.True(t, s.GameOver())

		var decision Decision
		require.NotPanics(t, func() {
			decision = NewMinimax(WithDepth(3)).FindMove(s)
		})

		require.False(t, decision.HasMove)
		require.Zero(t, decision.Nodes)
		require.Equal(t, SearchFixedDepth, decision.Type)
	})
}

func TestFindMoveIterativeDeepening(t *testing.T) {
	t.Run("returns the depth-1 pick even on an instantly expired budget", func(t *testing.T) {
		// The first root search runs to completion regardless of the clock,
		// so a legal position always yields a decision.
		m := NewMinimax(WithDuration(time.Nanosecond))
		s := game.NewHexState(5)

		decision := m.FindMove(s)

		require.True(t, decision.HasMove)
		require.Equal(t, game.Empty, s.Cell(decision.Move))
		require.Equal(t, SearchIterative, decision.Type)
		require.Equal(t, 0, decision.Depth,
			"reported depth stays one less than the last depth searched")
	})

	t.Run("a generous budget deepens beyond depth one", func(t *testing.T) {
		m := NewMinimax(WithDuration(500 * time.Millisecond))
		s := game.NewHexState(3)

		decision := m.FindMove(s)

		require.True(t, decision.HasMove)
		require.GreaterOrEqual(t, decision.Depth, 1)
	})

	t.Run("a decided game yields no move once the budget expires", func(t *testing.T) {
		s := playSequence(game.NewHexState(2), []game.Move{
			{X: 0, Y: 0}, // A
			{X: 0, Y: 1}, // B
			{X: 1, Y: 0}, // A connects left to right
		})

		decision := NewMinimax(WithDuration(time.Millisecond)).FindMove(s)

		require.False(t, decision.HasMove)
		require.Equal(t, SearchIterative, decision.Type)
	})
}

func playSequence(s game.State, moves []game.Move) game.State {
	for _, m := range moves {
		s = s.Play(m)
	}
	return s
}
