package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func tickets(taxi, bus, underground, secret, double int) Tickets {
	return Tickets{Taxi: taxi, Bus: bus, Underground: underground, Secret: secret, Double: double}
}

// recorder is a spectator that writes every notification down in order.
type recorder struct {
	events []string
}

func (r *recorder) OnMoveMade(view View, move Move) {
	r.events = append(r.events, "move:"+move.String())
}

func (r *recorder) OnRoundStarted(view View, round int, move Move) {
	r.events = append(r.events, fmt.Sprintf("round%d:%s", round, move))
}

func (r *recorder) OnRotationComplete(view View) {
	r.events = append(r.events, "rotation")
}

func (r *recorder) OnGameOver(view View, winners []Colour) {
	r.events = append(r.events, fmt.Sprintf("over:%v", winners))
}

// firstMove always picks the first legal move.
type firstMove struct {
	calls int
}

func (f *firstMove) ChooseMove(view View, location int, moves []Move) Move {
	f.calls++
	return moves[0]
}

// fixedMove always answers with the same move, legal or not.
type fixedMove struct {
	move Move
}

func (f fixedMove) ChooseMove(view View, location int, moves []Move) Move {
	return f.move
}

// line returns a board 1-2-...-n joined by the given transport.
func line(n int, transport Transport) *Board {
	b := NewBoard()
	for i := 1; i < n; i++ {
		b.AddEdge(i, i+1, transport)
	}
	return b
}

// strategyFunc adapts a function to a Strategy.
type strategyFunc func(view View, location int, moves []Move) Move

func (f strategyFunc) ChooseMove(view View, location int, moves []Move) Move {
	return f(view, location, moves)
}

// newDuel sets up Black on 1 and Blue on 6 of a six node taxi line.
func newDuel(t *testing.T, rounds []bool, black, blue Strategy) *Game {
	t.Helper()
	g, err := NewGame(rounds, line(6, TaxiTransport),
		PlayerConfig{Colour: Black, Location: 1, Tickets: tickets(4, 0, 0, 1, 1), Strategy: black},
		PlayerConfig{Colour: Blue, Location: 6, Tickets: tickets(3, 0, 0, 0, 0), Strategy: blue},
	)
	require.NoError(t, err)
	return g
}
