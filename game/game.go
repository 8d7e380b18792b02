package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Game is the rules authority of one match. It owns all mutable state;
// strategies and spectators only ever see it through a View.
type Game struct {
	rounds     []bool      // Reveal schedule, one flag per round
	graph      Graph       // Static topology
	players    []*player   // Fugitive first, then hunters in configuration order
	current    int         // Index into players of whose turn it is
	round      int         // Rounds started by the fugitive so far
	hidden     concealment // Fugitive's true and disclosed location
	spectators spectators
	winners    []Colour // Set once the game is over
	busy       bool     // A move is being requested or applied
}

// NewGame validates the configuration and returns a game awaiting the
// fugitive's first move. No game is returned if anything is inconsistent.
func NewGame(rounds []bool, graph Graph, fugitive PlayerConfig, hunters ...PlayerConfig) (*Game, error) {
	if len(rounds) == 0 {
		return nil, fmt.Errorf("%w: empty rounds", ErrInvalidConfig)
	}
	if graph == nil || graph.Len() == 0 {
		return nil, fmt.Errorf("%w: empty graph", ErrInvalidConfig)
	}
	if graph.HasNode(UnknownLocation) {
		return nil, fmt.Errorf("%w: node %d is reserved for an undisclosed fugitive", ErrInvalidConfig, UnknownLocation)
	}
	if !fugitive.Colour.IsFugitive() {
		return nil, fmt.Errorf("%w: fugitive must be %s, got %q", ErrInvalidConfig, Black, fugitive.Colour)
	}
	if len(hunters) == 0 {
		return nil, fmt.Errorf("%w: need at least one hunter", ErrInvalidConfig)
	}

	configs := append([]PlayerConfig{fugitive}, hunters...)
	colours := make(map[Colour]bool, len(configs))
	locations := make(map[int]bool, len(configs))
	for _, cfg := range configs {
		if !slices.Contains(Colours, cfg.Colour) {
			return nil, fmt.Errorf("%w: unknown colour %q", ErrInvalidConfig, cfg.Colour)
		}
		if colours[cfg.Colour] {
			return nil, fmt.Errorf("%w: duplicate colour %s", ErrInvalidConfig, cfg.Colour)
		}
		colours[cfg.Colour] = true

		if locations[cfg.Location] {
			return nil, fmt.Errorf("%w: duplicate location %d", ErrInvalidConfig, cfg.Location)
		}
		locations[cfg.Location] = true

		if !graph.HasNode(cfg.Location) {
			return nil, fmt.Errorf("%w: %s starts on unknown node %d", ErrInvalidConfig, cfg.Colour, cfg.Location)
		}
		if err := validateTickets(cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	g := &Game{
		rounds: slices.Clone(rounds),
		graph:  graph,
		hidden: newConcealment(fugitive.Location),
	}
	for _, cfg := range configs {
		g.players = append(g.players, newPlayer(cfg))
	}
	return g, nil
}

// Play submits a move for the current player. A move outside the legal set
// is rejected with ErrIllegalMove and leaves the game untouched.
func (g *Game) Play(move Move) error {
	if g.busy {
		return ErrReentrant
	}
	if g.IsGameOver() {
		return ErrGameOver
	}
	p := g.players[g.current]
	return g.play(p, g.legalMoves(p), move)
}

// StartRotate asks each player's strategy for a move in turn and plays it,
// until control is back with the fugitive or the game ends. If a strategy
// answers with an illegal move the error is returned and the rotation can
// be resumed with another call.
func (g *Game) StartRotate() error {
	if g.busy {
		return ErrReentrant
	}
	if g.IsGameOver() {
		return ErrGameOver
	}
	for {
		p := g.players[g.current]
		if p.strategy == nil {
			return fmt.Errorf("%w: %s", ErrNoStrategy, p.colour)
		}
		moves := g.legalMoves(p)
		move := g.request(p, moves)
		if err := g.play(p, moves, move); err != nil {
			return err
		}
		if g.IsGameOver() || g.CurrentPlayer().IsFugitive() {
			return nil
		}
	}
}

// request blocks on the player's strategy.
func (g *Game) request(p *player, moves []Move) Move {
	g.busy = true
	defer func() { g.busy = false }()
	return p.strategy.ChooseMove(g.view(), p.location, slices.Clone(moves))
}

func (g *Game) play(p *player, legal []Move, move Move) error {
	if !slices.Contains(legal, move) {
		return fmt.Errorf("%w: %s on %s's turn", ErrIllegalMove, move, p.colour)
	}

	g.busy = true
	defer func() { g.busy = false }()

	g.apply(p, move)

	if winners := g.evaluate(); winners != nil {
		g.winners = winners
		g.spectators.gameOver(g.view(), g.WinningPlayers())
		return nil
	}
	if g.CurrentPlayer().IsFugitive() {
		g.spectators.rotationComplete(g.view())
	}
	return nil
}

// apply moves the game on by one validated move and publishes it.
func (g *Game) apply(p *player, move Move) {
	g.current = (g.current + 1) % len(g.players)

	switch move.Kind {
	case PassMove:
		g.spectators.moveMade(g.view(), move)

	case TicketMove:
		g.travel(p, move)
		if !p.isFugitive() {
			g.spectators.moveMade(g.view(), move)
			return
		}
		published := g.hidden.resolve(move, g.rounds[g.round])
		g.round++
		g.spectators.roundStarted(g.view(), g.round, published)

	case DoubleMove:
		p.tickets.consume(Double)

		// Resolve on a copy to publish the combined move up front
		preview := g.hidden
		first, second := preview.resolveDouble(move, g.rounds[g.round], g.rounds[g.round+1])
		g.spectators.moveMade(g.view(), NewDoubleMove(p.colour, first, second))

		for _, leg := range []Move{move.FirstMove(), move.SecondMove()} {
			g.travel(p, leg)
			published := g.hidden.resolve(leg, g.rounds[g.round])
			g.round++
			g.spectators.roundStarted(g.view(), g.round, published)
		}

	default:
		panic(fmt.Sprintf("unknown move kind %d", int(move.Kind)))
	}
}

// travel spends the ticket and relocates the player. Hunters hand their
// spent tickets to the fugitive.
func (g *Game) travel(p *player, move Move) {
	p.tickets.consume(move.First.Ticket)
	p.location = move.First.Destination
	if !p.isFugitive() {
		g.fugitive().tickets.grant(move.First.Ticket)
	}
}

func (g *Game) legalMoves(p *player) []Move {
	allowDouble := p.isFugitive() && g.round < len(g.rounds)-1
	return generateMoves(g.graph, p.colour, p.tickets, g.hunterLocations(), p.location, allowDouble)
}

func (g *Game) fugitive() *player {
	return g.players[0]
}

func (g *Game) hunters() []*player {
	return g.players[1:]
}

func (g *Game) hunterLocations() map[int]bool {
	locations := make(map[int]bool, len(g.players)-1)
	for _, p := range g.hunters() {
		locations[p.location] = true
	}
	return locations
}

func (g *Game) find(colour Colour) *player {
	for _, p := range g.players {
		if p.colour == colour {
			return p
		}
	}
	return nil
}

func (g *Game) view() View {
	return view{g: g}
}

// RegisterSpectator adds a spectator to the end of the notification order.
func (g *Game) RegisterSpectator(spectator Spectator) error {
	return g.spectators.register(spectator)
}

func (g *Game) UnregisterSpectator(spectator Spectator) error {
	return g.spectators.unregister(spectator)
}

func (g *Game) Spectators() []Spectator {
	return g.spectators.all()
}

func (g *Game) Players() []Colour {
	colours := make([]Colour, len(g.players))
	for i, p := range g.players {
		colours[i] = p.colour
	}
	return colours
}

func (g *Game) CurrentPlayer() Colour {
	return g.players[g.current].colour
}

// CurrentRound is the number of rounds the fugitive has started, 0 before
// its first move.
func (g *Game) CurrentRound() int {
	return g.round
}

func (g *Game) Rounds() []bool {
	return slices.Clone(g.rounds)
}

func (g *Game) Graph() Graph {
	return readOnlyGraph{g.graph}
}

// PlayerLocation never reveals more of the fugitive than spectators have
// been shown: it returns the last disclosed location, or UnknownLocation.
func (g *Game) PlayerLocation(colour Colour) (int, bool) {
	p := g.find(colour)
	if p == nil {
		return 0, false
	}
	if p.isFugitive() {
		return g.hidden.disclosed, true
	}
	return p.location, true
}

func (g *Game) PlayerTickets(colour Colour, ticket Ticket) (int, bool) {
	p := g.find(colour)
	if p == nil {
		return 0, false
	}
	n, ok := p.tickets[ticket]
	return n, ok
}

// LegalMoves returns the moves the current player may play, nil once the
// game is over.
func (g *Game) LegalMoves() []Move {
	if g.IsGameOver() {
		return nil
	}
	return g.legalMoves(g.players[g.current])
}

func (g *Game) IsGameOver() bool {
	return len(g.WinningPlayers()) > 0
}

// WinningPlayers returns the winners, empty while the game goes on.
func (g *Game) WinningPlayers() []Colour {
	if g.winners != nil {
		return slices.Clone(g.winners)
	}
	return g.evaluate()
}

// readOnlyGraph hides the concrete graph type from callers.
type readOnlyGraph struct {
	Graph
}
