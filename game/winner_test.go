package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHuntersOutOfTickets(t *testing.T) {
	t.Run("at construction", func(t *testing.T) {
		g, err := NewGame([]bool{false, true}, line(6, TaxiTransport),
			PlayerConfig{Colour: Black, Location: 1, Tickets: tickets(4, 0, 0, 0, 0)},
			PlayerConfig{Colour: Blue, Location: 6, Tickets: tickets(0, 0, 0, 0, 0)},
		)
		require.NoError(t, err)

		require.True(t, g.IsGameOver())
		require.Equal(t, []Colour{Black}, g.WinningPlayers())
		require.Nil(t, g.LegalMoves())
		require.ErrorIs(t, g.Play(NewTicketMove(Black, Taxi, 2)), ErrGameOver)
		require.ErrorIs(t, g.StartRotate(), ErrGameOver)
	})

	t.Run("on another hunter's turn", func(t *testing.T) {
		g, err := NewGame([]bool{false, false, false}, line(6, TaxiTransport),
			PlayerConfig{Colour: Black, Location: 1, Tickets: tickets(4, 0, 0, 0, 0)},
			PlayerConfig{Colour: Blue, Location: 6, Tickets: tickets(1, 0, 0, 0, 0)},
			PlayerConfig{Colour: Red, Location: 4, Tickets: tickets(0, 0, 0, 0, 0)},
		)
		require.NoError(t, err)
		rec := &recorder{}
		require.NoError(t, g.RegisterSpectator(rec))

		require.NoError(t, g.Play(NewTicketMove(Black, Taxi, 2)))
		require.False(t, g.IsGameOver())
		require.NoError(t, g.Play(NewTicketMove(Blue, Taxi, 5)))

		require.Equal(t, Red, g.CurrentPlayer())
		require.Equal(t, []Colour{Black}, g.WinningPlayers())
		require.Equal(t, []string{"round1:Black-Taxi-0", "move:Blue-Taxi-5", "over:[Black]"}, rec.events)
	})

	t.Run("secret and double tickets do not count", func(t *testing.T) {
		require.True(t, tickets(0, 0, 0, 3, 2).immobile())
		require.False(t, tickets(0, 0, 1, 0, 0).immobile())
	})
}

func TestFugitiveTrapped(t *testing.T) {
	t.Run("hunters close the last exits", func(t *testing.T) {
		b := NewBoard()
		b.AddEdge(1, 3, TaxiTransport)
		b.AddEdge(3, 4, TaxiTransport)
		b.AddEdge(5, 4, BusTransport)
		b.AddEdge(6, 1, BusTransport)
		g, err := NewGame([]bool{false, false, false}, b,
			PlayerConfig{Colour: Black, Location: 1, Tickets: tickets(5, 0, 0, 0, 0)},
			PlayerConfig{Colour: Blue, Location: 5, Tickets: tickets(1, 2, 0, 0, 0)},
			PlayerConfig{Colour: Red, Location: 6, Tickets: tickets(1, 2, 0, 0, 0)},
		)
		require.NoError(t, err)
		rec := &recorder{}
		require.NoError(t, g.RegisterSpectator(rec))

		require.NoError(t, g.Play(NewTicketMove(Black, Taxi, 3)))
		require.NoError(t, g.Play(NewTicketMove(Blue, Bus, 4)))
		require.False(t, g.IsGameOver(), "Trap is only checked on the fugitive's turn")
		require.NoError(t, g.Play(NewTicketMove(Red, Bus, 1)))

		require.True(t, g.IsGameOver())
		require.Equal(t, []Colour{Blue, Red}, g.WinningPlayers())
		require.Equal(t, []string{
			"round1:Black-Taxi-0",
			"move:Blue-Bus-4",
			"move:Red-Bus-1",
			"over:[Blue Red]",
		}, rec.events)
	})

	t.Run("at construction", func(t *testing.T) {
		g, err := NewGame([]bool{false}, line(2, TaxiTransport),
			PlayerConfig{Colour: Black, Location: 1, Tickets: tickets(4, 0, 0, 0, 0)},
			PlayerConfig{Colour: Blue, Location: 2, Tickets: tickets(4, 0, 0, 0, 0)},
		)
		require.NoError(t, err)

		require.Equal(t, []Colour{Blue}, g.WinningPlayers())
	})

	t.Run("pass only counts as trapped", func(t *testing.T) {
		require.True(t, trapped([]Move{NewPassMove(Black)}, nil))
		require.False(t, trapped([]Move{NewTicketMove(Black, Taxi, 2)}, map[int]bool{3: true}))
		require.True(t, trapped([]Move{NewTicketMove(Black, Taxi, 2)}, map[int]bool{2: true}))
	})
}

func TestFugitiveEvades(t *testing.T) {
	g := newDuel(t, []bool{false, false}, nil, nil)

	require.NoError(t, g.Play(NewTicketMove(Black, Taxi, 2)))
	require.NoError(t, g.Play(NewTicketMove(Blue, Taxi, 5)))
	require.False(t, g.IsGameOver(), "One round is still left")
	require.NoError(t, g.Play(NewTicketMove(Black, Taxi, 3)))
	require.False(t, g.IsGameOver(), "Hunters still get their last turn")
	require.NoError(t, g.Play(NewTicketMove(Blue, Taxi, 6)))

	require.Equal(t, []Colour{Black}, g.WinningPlayers())
}

func TestCaptureBeatsEvasion(t *testing.T) {
	g := newDuel(t, []bool{false}, nil, nil)

	require.NoError(t, g.Play(NewTicketMove(Black, Taxi, 2)))
	require.NoError(t, g.Play(NewTicketMove(Blue, Taxi, 5)))
	require.Equal(t, []Colour{Black}, g.WinningPlayers())

	b := NewBoard()
	b.AddEdge(1, 2, TaxiTransport)
	b.AddEdge(2, 3, TaxiTransport)
	g, err := NewGame([]bool{false}, b,
		PlayerConfig{Colour: Black, Location: 1, Tickets: tickets(1, 0, 0, 0, 0)},
		PlayerConfig{Colour: Blue, Location: 3, Tickets: tickets(2, 0, 0, 0, 0)},
	)
	require.NoError(t, err)

	require.NoError(t, g.Play(NewTicketMove(Black, Taxi, 2)))
	require.NoError(t, g.Play(NewTicketMove(Blue, Taxi, 2)))

	require.Equal(t, []Colour{Blue}, g.WinningPlayers(), "Capture on the last round should still win for the hunters")
}
