package player

import "manhunt/game"

// Scripted replays a fixed list of moves, one per turn, regardless of what
// is legal. Once the script runs out it answers with the zero Move, which
// the game rejects.
type Scripted struct {
	moves []game.Move
	next  int
}

func NewScripted(moves ...game.Move) *Scripted {
	return &Scripted{moves: moves}
}

func (s *Scripted) ChooseMove(view game.View, location int, moves []game.Move) game.Move {
	if s.next >= len(s.moves) {
		return game.Move{}
	}
	move := s.moves[s.next]
	s.next++
	return move
}

// Remaining returns how many scripted moves have not been played yet.
func (s *Scripted) Remaining() int {
	return len(s.moves) - s.next
}
