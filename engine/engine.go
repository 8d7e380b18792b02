package engine

import (
	"manhunt/game"

	"github.com/google/uuid"
)

// Result summarises a finished (or abandoned) game.
type Result struct {
	ID        uuid.UUID
	Winners   []game.Colour // Empty if the rotation cap was reached first
	Rounds    int
	Rotations int
	Fallbacks int // Illegal strategy answers replaced by a legal move
}

// Finished reports whether the game reached a winner.
func (r Result) Finished() bool {
	return len(r.Winners) > 0
}

// Runner plays a game to the end.
type Runner interface {
	// Run drives the game until there's a winner or the rotation cap is reached
	Run() (Result, error)
}
