package game

import "golang.org/x/exp/slices"

// singleMoves returns every ticket move out of from that avoids blocked nodes.
// A destination reachable by transport t yields a move with t's ticket and,
// independently, a move with a secret ticket.
func singleMoves(graph Graph, colour Colour, tickets Tickets, blocked map[int]bool, from int) []Move {
	var moves []Move
	for _, edge := range graph.EdgesFrom(from) {
		if blocked[edge.Destination] {
			continue
		}
		ticket := edge.Transport.Ticket()
		if tickets.Has(ticket, 1) {
			moves = append(moves, NewTicketMove(colour, ticket, edge.Destination))
		}
		if ticket != Secret && tickets.Has(Secret, 1) {
			moves = append(moves, NewTicketMove(colour, Secret, edge.Destination))
		}
	}
	return moves
}

// generateMoves computes the legal move set for a player standing on from.
// allowDouble is only set for the fugitive while at least one round remains
// after the current one. The result is never empty: with nothing else
// available the only legal move is a pass.
func generateMoves(graph Graph, colour Colour, tickets Tickets, blocked map[int]bool, from int, allowDouble bool) []Move {
	set := make(map[Move]struct{})
	singles := singleMoves(graph, colour, tickets, blocked, from)
	for _, m := range singles {
		set[m] = struct{}{}
	}

	if allowDouble && colour.IsFugitive() && tickets.Has(Double, 1) {
		// The fugitive leaves from, so the second leg may return there
		remaining := make(map[int]bool, len(blocked))
		for node, b := range blocked {
			if node != from {
				remaining[node] = b
			}
		}

		for _, first := range singles {
			for _, second := range singleMoves(graph, colour, tickets, remaining, first.First.Destination) {
				if canAffordBoth(tickets, first.First.Ticket, second.First.Ticket) {
					set[NewDoubleMove(colour, first, second)] = struct{}{}
				}
			}
		}
	}

	if len(set) == 0 {
		return []Move{NewPassMove(colour)}
	}

	moves := make([]Move, 0, len(set))
	for m := range set {
		moves = append(moves, m)
	}
	slices.SortFunc(moves, compareMoves)
	return moves
}

// canAffordBoth checks the two legs of a double move can be paid for together.
func canAffordBoth(tickets Tickets, first, second Ticket) bool {
	if first == second {
		return tickets.Has(first, 2)
	}
	return tickets.Has(first, 1) && tickets.Has(second, 1)
}
