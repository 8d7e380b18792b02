package metrics

import (
	"strings"
	"time"

	"manhunt/game"
	"manhunt/utils"

	"github.com/google/uuid"
)

// StrategyConfig describes how one side of a matchup picks its moves.
type StrategyConfig struct {
	ID          int
	Kind        string // "random", "chase", "evade" or "greedy"
	Temperature float64
}

type MoveMetric struct {
	Step   int
	Player game.Colour
	Round  int    // Rounds started when the move was made
	Kind   string // Ticket, Double or Pass
	Move   string // As published to spectators
}

type GameMetric struct {
	ID         uuid.UUID
	Winner     string // Winning colours joined by "+", empty if abandoned
	Rounds     int
	TotalMoves int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

// Collector is a spectator that turns one game into metrics.
type Collector interface {
	game.Spectator
	Start()
	Complete() (GameMetric, []MoveMetric)
}

type collector struct {
	id          uuid.UUID
	startTime   time.Time
	moves       []MoveMetric
	winners     []game.Colour
	rounds      int
	pendingLegs int // Per-leg round notifications still due for a double move
}

func NewCollector(id uuid.UUID) Collector {
	return &collector{id: id}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) OnMoveMade(view game.View, move game.Move) {
	if move.Kind == game.DoubleMove {
		m.pendingLegs = 2
	}
	m.record(view, move)
}

func (m *collector) OnRoundStarted(view game.View, round int, move game.Move) {
	m.rounds = round
	if m.pendingLegs > 0 {
		m.pendingLegs--
		return
	}
	m.record(view, move)
}

func (m *collector) OnRotationComplete(view game.View) {}

func (m *collector) OnGameOver(view game.View, winners []game.Colour) {
	m.winners = winners
}

func (m *collector) record(view game.View, move game.Move) {
	m.moves = append(m.moves, MoveMetric{
		Step:   len(m.moves) + 1,
		Player: move.Colour,
		Round:  view.CurrentRound(),
		Kind:   move.Kind.String(),
		Move:   move.String(),
	})
}

func (m *collector) Complete() (GameMetric, []MoveMetric) {
	end := time.Now()
	names := utils.Map(m.winners, game.Colour.String)
	return GameMetric{
		ID:         m.id,
		Winner:     strings.Join(names, "+"),
		Rounds:     m.rounds,
		TotalMoves: len(m.moves),
		StartTime:  m.startTime,
		EndTime:    end,
		Duration:   end.Sub(m.startTime),
	}, m.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                                                   {}
func (m *dummyCollector) OnMoveMade(view game.View, move game.Move)                {}
func (m *dummyCollector) OnRoundStarted(view game.View, round int, move game.Move) {}
func (m *dummyCollector) OnRotationComplete(view game.View)                        {}
func (m *dummyCollector) OnGameOver(view game.View, winners []game.Colour)         {}
func (m *dummyCollector) Complete() (GameMetric, []MoveMetric)                     { return GameMetric{}, nil }
