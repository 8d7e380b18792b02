package game

import "fmt"

// Strategy picks a move for a player. It is called once per turn and must
// return one of moves; location is the player's true location.
type Strategy interface {
	ChooseMove(view View, location int, moves []Move) Move
}

// PlayerConfig is the starting setup of one player.
type PlayerConfig struct {
	Colour   Colour
	Location int
	Tickets  Tickets
	Strategy Strategy // May be nil when moves are submitted through Game.Play
}

type player struct {
	colour   Colour
	location int
	tickets  Tickets
	strategy Strategy
}

func newPlayer(cfg PlayerConfig) *player {
	return &player{
		colour:   cfg.Colour,
		location: cfg.Location,
		tickets:  cfg.Tickets.Copy(),
		strategy: cfg.Strategy,
	}
}

func (p *player) isFugitive() bool {
	return p.colour.IsFugitive()
}

// validateTickets checks a configuration declares exactly the five ticket
// kinds with non-negative counts, and that hunters hold no fugitive tickets.
func validateTickets(cfg PlayerConfig) error {
	if len(cfg.Tickets) != len(AllTickets) {
		return fmt.Errorf("%s declares %d ticket kinds, want %d", cfg.Colour, len(cfg.Tickets), len(AllTickets))
	}
	for _, t := range AllTickets {
		n, ok := cfg.Tickets[t]
		if !ok {
			return fmt.Errorf("%s is missing %s tickets", cfg.Colour, t)
		}
		if n < 0 {
			return fmt.Errorf("%s has a negative %s count", cfg.Colour, t)
		}
		if cfg.Colour.IsHunter() && t.FugitiveOnly() && n > 0 {
			return fmt.Errorf("hunter %s holds %s tickets", cfg.Colour, t)
		}
	}
	return nil
}
