package game

import "errors"

var (
	// ErrInvalidConfig rejects a game at construction.
	ErrInvalidConfig = errors.New("invalid game configuration")

	// ErrIllegalMove rejects a move that is not in the current legal set.
	// The game is left exactly as it was before the attempt.
	ErrIllegalMove = errors.New("illegal move")

	ErrGameOver               = errors.New("game is over - no moves allowed")
	ErrNilSpectator           = errors.New("spectator is nil")
	ErrSpectatorRegistered    = errors.New("spectator already registered")
	ErrSpectatorNotRegistered = errors.New("spectator not registered")
	ErrSpectatorNotComparable = errors.New("spectator cannot be compared by identity")
	ErrReentrant              = errors.New("game is busy applying a move")
	ErrNoStrategy             = errors.New("player has no strategy")
)
