package game

// UnknownLocation is reported for the fugitive until the first reveal.
const UnknownLocation = 0

// concealment tracks where the fugitive really is and where spectators were
// last told it is.
type concealment struct {
	location  int // True location, always current
	disclosed int // Last location shown to spectators
}

func newConcealment(start int) concealment {
	return concealment{location: start, disclosed: UnknownLocation}
}

// resolve records a fugitive ticket move and returns the move spectators see.
// On a reveal round the real move is published and becomes the disclosed
// location; otherwise the destination is replaced by the last disclosed one.
func (c *concealment) resolve(move Move, reveal bool) Move {
	c.location = move.First.Destination
	if reveal {
		c.disclosed = c.location
		return move
	}
	return NewTicketMove(move.Colour, move.First.Ticket, c.disclosed)
}

// resolveDouble resolves both legs of a double move in order, each against
// its own round's reveal flag, and returns the published legs.
func (c *concealment) resolveDouble(move Move, revealFirst, revealSecond bool) (first, second Move) {
	first = c.resolve(move.FirstMove(), revealFirst)
	second = c.resolve(move.SecondMove(), revealSecond)
	return first, second
}
