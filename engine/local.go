package engine

import (
	"fmt"

	"manhunt/config"
	"manhunt/game"
	"manhunt/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var _ Runner = (*Engine)(nil)

type Engine struct {
	ID           uuid.UUID
	Game         *game.Game
	maxRotations int
	spectators   []game.Spectator
	guards       []*guardedStrategy
}

type Option func(*Engine)

// WithMaxRotations caps how many rotations Run plays before giving up.
func WithMaxRotations(n int) Option {
	return func(e *Engine) {
		e.maxRotations = n
	}
}

// WithSpectators registers extra spectators after the engine's logger.
func WithSpectators(spectators ...game.Spectator) Option {
	return func(e *Engine) {
		e.spectators = append(e.spectators, spectators...)
	}
}

func WithID(id uuid.UUID) Option {
	return func(e *Engine) {
		e.ID = id
	}
}

// LocalEngine sets up a game on setup where every colour is played by the
// strategy registered for it.
func LocalEngine(setup config.Setup, strategies map[game.Colour]game.Strategy, opts ...Option) (*Engine, error) {
	e := &Engine{
		ID:           uuid.New(),
		maxRotations: meta.MAX_ROTATIONS,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.maxRotations <= 0 {
		return nil, fmt.Errorf("max rotations must be positive, got %d", e.maxRotations)
	}

	guarded := make(map[game.Colour]game.Strategy, len(strategies))
	for _, colour := range setup.Colours() {
		s, ok := strategies[colour]
		if !ok || s == nil {
			return nil, fmt.Errorf("no strategy for %s", colour)
		}
		g := &guardedStrategy{colour: colour, inner: s}
		e.guards = append(e.guards, g)
		guarded[colour] = g
	}

	g, err := setup.NewGame(guarded)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	e.Game = g

	if err := g.RegisterSpectator(newLogSpectator(e.ID)); err != nil {
		return nil, err
	}
	for _, s := range e.spectators {
		if err := g.RegisterSpectator(s); err != nil {
			return nil, fmt.Errorf("register spectator: %w", err)
		}
	}
	return e, nil
}

// Run executes rotations until there's a winner or the cap is reached.
func (e *Engine) Run() (Result, error) {
	log.Info().Str("game", e.ID.String()).Msgf("%s is starting", e.Game.CurrentPlayer())

	rotations := 0
	for !e.Game.IsGameOver() && rotations < e.maxRotations {
		if err := e.Game.StartRotate(); err != nil {
			return e.result(rotations), fmt.Errorf("rotation %d: %w", rotations+1, err)
		}
		rotations++
	}

	if !e.Game.IsGameOver() {
		log.Warn().Str("game", e.ID.String()).Msgf("stopped after %d rotations (no winner yet)", rotations)
	}
	return e.result(rotations), nil
}

func (e *Engine) result(rotations int) Result {
	fallbacks := 0
	for _, g := range e.guards {
		fallbacks += g.fallbacks
	}
	return Result{
		ID:        e.ID,
		Winners:   e.Game.WinningPlayers(),
		Rounds:    e.Game.CurrentRound(),
		Rotations: rotations,
		Fallbacks: fallbacks,
	}
}

// guardedStrategy replaces an illegal answer with the first legal move so
// a misbehaving strategy cannot stall the game.
type guardedStrategy struct {
	colour    game.Colour
	inner     game.Strategy
	fallbacks int
}

func (s *guardedStrategy) ChooseMove(view game.View, location int, moves []game.Move) game.Move {
	candidate := s.inner.ChooseMove(view, location, slices.Clone(moves))

	if !slices.Contains(moves, candidate) {
		log.Warn().
			Str("player", s.colour.String()).
			Stringer("move", candidate).
			Msg("strategy returned an illegal move, falling back to the first legal move")
		s.fallbacks++
		return moves[0]
	}

	return candidate
}
