package game

import (
	"fmt"
	"reflect"

	"manhunt/utils"
)

// Spectator observes a game. Callbacks run synchronously, after the state
// change they report and before the next move is requested.
type Spectator interface {
	// OnMoveMade reports a hunter move, a pass, or a fugitive double move as
	// a whole (with each leg concealed as spectators are allowed to see it).
	OnMoveMade(view View, move Move)
	// OnRoundStarted reports a fugitive ticket move that started round.
	OnRoundStarted(view View, round int, move Move)
	OnRotationComplete(view View)
	OnGameOver(view View, winners []Colour)
}

// spectators dispatches notifications in registration order.
type spectators struct {
	list []Spectator
}

func (s *spectators) register(spectator Spectator) error {
	if spectator == nil {
		return ErrNilSpectator
	}
	if !identifiable(spectator) {
		return fmt.Errorf("%w: %T", ErrSpectatorNotComparable, spectator)
	}
	if utils.FindIndex(s.list, spectator) >= 0 {
		return fmt.Errorf("%w: %T", ErrSpectatorRegistered, spectator)
	}
	s.list = append(s.list, spectator)
	return nil
}

func (s *spectators) unregister(spectator Spectator) error {
	if spectator == nil {
		return ErrNilSpectator
	}
	if !identifiable(spectator) {
		return fmt.Errorf("%w: %T", ErrSpectatorNotRegistered, spectator)
	}
	i := utils.FindIndex(s.list, spectator)
	if i < 0 {
		return fmt.Errorf("%w: %T", ErrSpectatorNotRegistered, spectator)
	}
	// Keep the order of the remaining spectators
	s.list = append(s.list[:i:i], s.list[i+1:]...)
	return nil
}

// identifiable reports whether spectator can be looked up by identity. Values
// of struct types holding maps, slices or funcs panic when compared.
func identifiable(spectator Spectator) bool {
	return reflect.TypeOf(spectator).Comparable()
}

func (s *spectators) all() []Spectator {
	out := make([]Spectator, len(s.list))
	copy(out, s.list)
	return out
}

func (s *spectators) moveMade(view View, move Move) {
	for _, sp := range s.all() {
		sp.OnMoveMade(view, move)
	}
}

func (s *spectators) roundStarted(view View, round int, move Move) {
	for _, sp := range s.all() {
		sp.OnRoundStarted(view, round, move)
	}
}

func (s *spectators) rotationComplete(view View) {
	for _, sp := range s.all() {
		sp.OnRotationComplete(view)
	}
}

func (s *spectators) gameOver(view View, winners []Colour) {
	for _, sp := range s.all() {
		sp.OnGameOver(view, winners)
	}
}
