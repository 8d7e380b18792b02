// meta/meta.go
package meta

// DEFAULT_GAMES defines the number of games to play per matchup.
const DEFAULT_GAMES = 30

// MAX_ROTATIONS caps how many rotations a single game may run before it is
// abandoned without a winner.
const MAX_ROTATIONS = 300

// DEFAULT_TEMPERATURE is the sampling temperature of weighted strategies.
const DEFAULT_TEMPERATURE = 0.5

// DOUBLE_PENALTY discounts double moves for the evading fugitive.
const DOUBLE_PENALTY = 1.0
