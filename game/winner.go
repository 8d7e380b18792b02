package game

// evaluate checks the win conditions in order and returns the winning
// colours, or nil while the game goes on.
func (g *Game) evaluate() []Colour {
	fugitive := g.fugitive()
	occupied := g.hunterLocations()

	// All hunters out of transport tickets
	stuck := true
	for _, p := range g.hunters() {
		if !p.tickets.immobile() {
			stuck = false
			break
		}
	}
	if stuck {
		return []Colour{fugitive.colour}
	}

	// Fugitive captured
	if occupied[g.hidden.location] {
		return g.hunterColours()
	}

	if !g.CurrentPlayer().IsFugitive() {
		return nil
	}

	// Fugitive survived every round
	if g.round >= len(g.rounds) {
		return []Colour{fugitive.colour}
	}

	// Fugitive has nowhere left to go
	if trapped(g.legalMoves(fugitive), occupied) {
		return g.hunterColours()
	}

	return nil
}

// trapped reports whether every move ends up on an occupied node. A pass
// goes nowhere, so a pass-only set counts as trapped.
func trapped(moves []Move, occupied map[int]bool) bool {
	for _, m := range moves {
		switch m.Kind {
		case PassMove:
			continue
		case TicketMove, DoubleMove:
			for _, d := range m.Destinations() {
				if !occupied[d] {
					return false
				}
			}
		default:
			panic("unknown move kind")
		}
	}
	return true
}

func (g *Game) hunterColours() []Colour {
	var colours []Colour
	for _, p := range g.hunters() {
		colours = append(colours, p.colour)
	}
	return colours
}
