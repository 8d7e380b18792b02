package game

// View is the read-only projection of a game handed to strategies and
// spectators. The fugitive's location is only ever reported as disclosed.
type View interface {
	Players() []Colour
	CurrentPlayer() Colour
	CurrentRound() int
	Rounds() []bool
	// PlayerLocation returns the location of a player, or false for an
	// unknown colour. For the fugitive it is the last disclosed location.
	PlayerLocation(colour Colour) (int, bool)
	PlayerTickets(colour Colour, ticket Ticket) (int, bool)
	// LegalMoves returns the moves the current player may submit.
	LegalMoves() []Move
	IsGameOver() bool
	WinningPlayers() []Colour
	Graph() Graph
}

// view wraps a game so callers cannot reach its mutating methods.
type view struct {
	g *Game
}

func (v view) Players() []Colour                            { return v.g.Players() }
func (v view) CurrentPlayer() Colour                        { return v.g.CurrentPlayer() }
func (v view) CurrentRound() int                            { return v.g.CurrentRound() }
func (v view) Rounds() []bool                               { return v.g.Rounds() }
func (v view) PlayerLocation(c Colour) (int, bool)          { return v.g.PlayerLocation(c) }
func (v view) PlayerTickets(c Colour, t Ticket) (int, bool) { return v.g.PlayerTickets(c, t) }
func (v view) LegalMoves() []Move                           { return v.g.LegalMoves() }
func (v view) IsGameOver() bool                             { return v.g.IsGameOver() }
func (v view) WinningPlayers() []Colour                     { return v.g.WinningPlayers() }
func (v view) Graph() Graph                                 { return v.g.Graph() }
