package player

import (
	"manhunt/game"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal moves. Two players built with the
// same seed make the same choices.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ChooseMove(view game.View, location int, moves []game.Move) game.Move {
	return moves[r.rng.Intn(len(moves))]
}
