package searcher

import "hex/game"

// SearchType tags which search family produced a decision.
type SearchType string

const (
	SearchFixedDepth SearchType = "fixed-depth"
	SearchIterative  SearchType = "iterative-deepening"
	SearchRandom     SearchType = "random"
)

// Decision is the outcome of one top-level move computation: the chosen move
// if one exists, node count telemetry, and the depth the search reached.
// HasMove is false when the position offers no legal move; callers must treat
// that as "no decision available", not as an error.
type Decision struct {
	Move    game.Move
	HasMove bool
	Nodes   int64
	Depth   int
	Type    SearchType
}
