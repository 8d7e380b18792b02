package engine

import (
	"manhunt/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logSpectator writes the progress of one game to the global logger.
type logSpectator struct {
	logger zerolog.Logger
}

func newLogSpectator(id uuid.UUID) *logSpectator {
	return &logSpectator{logger: log.With().Str("game", id.String()).Logger()}
}

func (l *logSpectator) OnMoveMade(view game.View, move game.Move) {
	l.logger.Debug().Int("round", view.CurrentRound()).Stringer("move", move).Msg("move made")
}

func (l *logSpectator) OnRoundStarted(view game.View, round int, move game.Move) {
	l.logger.Debug().Int("round", round).Stringer("move", move).Msg("round started")
}

func (l *logSpectator) OnRotationComplete(view game.View) {
	l.logger.Trace().Int("round", view.CurrentRound()).Msg("rotation complete")
}

func (l *logSpectator) OnGameOver(view game.View, winners []game.Colour) {
	l.logger.Info().Msgf("game over after %d rounds, winners: %v", view.CurrentRound(), winners)
}
