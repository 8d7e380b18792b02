package game

import (
	"cmp"
	"fmt"
)

// MoveKind discriminates the variants of Move.
type MoveKind int

const (
	TicketMove MoveKind = iota + 1 // A single step paid with one ticket
	DoubleMove                     // Two ticket moves in one turn, fugitive only
	PassMove                       // Only legal when nothing else is
)

func (k MoveKind) String() string {
	switch k {
	case TicketMove:
		return "Ticket"
	case DoubleMove:
		return "Double"
	case PassMove:
		return "Pass"
	default:
		return fmt.Sprintf("MoveKind(%d)", int(k))
	}
}

// Step is one ticket spent to travel to a destination.
type Step struct {
	Ticket      Ticket
	Destination int
}

// Move represents a move in the game. It is comparable, so two moves are
// equal exactly when they describe the same action.
//   - TicketMove uses First.
//   - DoubleMove uses First and Second.
//   - PassMove uses neither.
//
// The zero Move is not a valid move.
type Move struct {
	Kind   MoveKind
	Colour Colour
	First  Step
	Second Step
}

func NewTicketMove(colour Colour, ticket Ticket, destination int) Move {
	return Move{
		Kind:   TicketMove,
		Colour: colour,
		First:  Step{Ticket: ticket, Destination: destination},
	}
}

// NewDoubleMove combines two ticket moves. Both must be TicketMoves.
func NewDoubleMove(colour Colour, first, second Move) Move {
	if first.Kind != TicketMove || second.Kind != TicketMove {
		panic(fmt.Sprintf("double move legs must be ticket moves, got %s and %s", first.Kind, second.Kind))
	}
	return Move{
		Kind:   DoubleMove,
		Colour: colour,
		First:  first.First,
		Second: second.First,
	}
}

func NewPassMove(colour Colour) Move {
	return Move{Kind: PassMove, Colour: colour}
}

// FirstMove returns the first leg of a double move as a ticket move.
func (m Move) FirstMove() Move {
	return NewTicketMove(m.Colour, m.First.Ticket, m.First.Destination)
}

// SecondMove returns the second leg of a double move as a ticket move.
func (m Move) SecondMove() Move {
	return NewTicketMove(m.Colour, m.Second.Ticket, m.Second.Destination)
}

// Destinations lists every node the move visits, in order.
func (m Move) Destinations() []int {
	switch m.Kind {
	case TicketMove:
		return []int{m.First.Destination}
	case DoubleMove:
		return []int{m.First.Destination, m.Second.Destination}
	case PassMove:
		return nil
	default:
		panic(fmt.Sprintf("unknown move kind %d", int(m.Kind)))
	}
}

func (m Move) String() string {
	switch m.Kind {
	case TicketMove:
		return fmt.Sprintf("%s-%s-%d", m.Colour, m.First.Ticket, m.First.Destination)
	case DoubleMove:
		return fmt.Sprintf("%s-Double[%s-%d,%s-%d]", m.Colour,
			m.First.Ticket, m.First.Destination, m.Second.Ticket, m.Second.Destination)
	case PassMove:
		return fmt.Sprintf("%s-Pass", m.Colour)
	default:
		return fmt.Sprintf("%s-Invalid(%d)", m.Colour, int(m.Kind))
	}
}

// compareMoves orders moves by kind, then destinations, then tickets.
func compareMoves(a, b Move) int {
	return cmp.Or(
		cmp.Compare(a.Kind, b.Kind),
		cmp.Compare(a.First.Destination, b.First.Destination),
		cmp.Compare(a.First.Ticket, b.First.Ticket),
		cmp.Compare(a.Second.Destination, b.Second.Destination),
		cmp.Compare(a.Second.Ticket, b.Second.Ticket),
	)
}
