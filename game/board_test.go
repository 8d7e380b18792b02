package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	b := NewBoard()
	b.AddNode(7)
	b.AddEdge(1, 2, TaxiTransport)
	b.AddEdge(1, 2, BusTransport)
	b.AddEdge(2, 1, TaxiTransport)

	require.Equal(t, 3, b.Len())
	require.True(t, b.HasNode(7))
	require.False(t, b.HasNode(3))
	require.Empty(t, b.EdgesFrom(7))
	require.Nil(t, b.EdgesFrom(3))
	require.Equal(t, []Edge{
		{Destination: 2, Transport: TaxiTransport},
		{Destination: 2, Transport: BusTransport},
	}, b.EdgesFrom(1), "Edges should be deduplicated")
	require.Equal(t, []Edge{
		{Destination: 1, Transport: TaxiTransport},
		{Destination: 1, Transport: BusTransport},
	}, b.EdgesFrom(2), "Edges should run both ways")

	b.EdgesFrom(1)[0].Destination = 9
	require.Equal(t, 2, b.EdgesFrom(1)[0].Destination, "Callers should get a copy")
}

func TestRounds(t *testing.T) {
	rounds := StandardRounds()
	require.Len(t, rounds, StandardRoundCount)
	for _, r := range StandardRevealRounds {
		require.True(t, rounds[r-1], "Round %d should reveal", r)
	}
	require.False(t, rounds[0])

	_, err := NewRounds(0)
	require.Error(t, err)
	_, err = NewRounds(3, 4)
	require.Error(t, err)
	_, err = NewRounds(3, 0)
	require.Error(t, err)

	rounds, err = NewRounds(3, 2)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, false}, rounds)
}

func TestParsing(t *testing.T) {
	c, err := ParseColour(" blue ")
	require.NoError(t, err)
	require.Equal(t, Blue, c)
	_, err = ParseColour("purple")
	require.Error(t, err)

	tk, err := ParseTicket("underground")
	require.NoError(t, err)
	require.Equal(t, Underground, tk)

	tr, err := ParseTransport("Ferry")
	require.NoError(t, err)
	require.Equal(t, Secret, tr.Ticket())
}
