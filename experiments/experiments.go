package experiments

import (
	"fmt"
	"strings"

	"manhunt/config"
	"manhunt/engine"
	"manhunt/experiments/metrics"
	"manhunt/game"
	"manhunt/meta"
	"manhunt/player"
	"manhunt/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	Random = metrics.StrategyConfig{ID: 1, Kind: "random"}
	Chase  = metrics.StrategyConfig{ID: 2, Kind: "chase", Temperature: meta.DEFAULT_TEMPERATURE}
	Evade  = metrics.StrategyConfig{ID: 3, Kind: "evade", Temperature: meta.DEFAULT_TEMPERATURE}
	// Greedy chases or evades depending on the side, always taking the best move
	Greedy = metrics.StrategyConfig{ID: 4, Kind: "greedy"}
)

// MatchUp pairs the fugitive's strategy with the one shared by all hunters.
type MatchUp struct {
	Fugitive metrics.StrategyConfig `json:"fugitive"`
	Hunters  metrics.StrategyConfig `json:"hunters"`
}

// DefaultMatchUps pits every fugitive strategy against every hunter strategy.
func DefaultMatchUps() []MatchUp {
	matchUps := []MatchUp{}
	for _, f := range []metrics.StrategyConfig{Random, Evade, Greedy} {
		for _, h := range []metrics.StrategyConfig{Random, Chase, Greedy} {
			matchUps = append(matchUps, MatchUp{Fugitive: f, Hunters: h})
		}
	}
	return matchUps
}

type Options struct {
	Name         string
	Setup        config.Setup
	Games        int // Per match up
	Seed         uint64
	MaxRotations int
	OutputDir    string // Records are only written when set
}

// Summary tallies the outcome of an experiment.
type Summary struct {
	Games         int
	FugitiveWins  int
	HunterWins    int
	Abandoned     int
	Fallbacks     int
	GameRecords   []metrics.GameRecord
	MoveRecords   []metrics.MoveRecord
	RecordsWriter *metrics.Writer // Nil unless OutputDir was set
}

// Run plays opts.Games games for each matchup and stores the records.
func Run(opts Options, matchUps []MatchUp) (Summary, error) {
	summary := Summary{}

	log.Info().Msgf("starting %s experiment on %s...", opts.Name, opts.Setup.Describe())

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between fugitive=%+v and hunters=%+v...",
			mi+1, len(matchUps), matchup.Fugitive, matchup.Hunters)

		for i := 0; i < opts.Games; i++ {
			seed := opts.Seed + uint64(mi*opts.Games+i)*uint64(len(game.Colours))
			result, gameMetric, moveMetrics, err := runGame(opts, matchup, seed)
			if err != nil {
				return summary, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			summary.Games++
			summary.Fallbacks += result.Fallbacks
			switch {
			case !result.Finished():
				summary.Abandoned++
			case result.Winners[0].IsFugitive():
				summary.FugitiveWins++
			default:
				summary.HunterWins++
			}

			summary.GameRecords = append(summary.GameRecords, metrics.GameRecord{
				Matchup:    mi + 1,
				Fugitive:   matchup.Fugitive.ID,
				Hunters:    matchup.Hunters.ID,
				Rotations:  result.Rotations,
				Fallbacks:  result.Fallbacks,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				summary.MoveRecords = append(summary.MoveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d of %d game %d with winner: %s",
				mi+1, len(matchUps), i+1, gameMetric.Winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment: %d games, fugitive %d, hunters %d, abandoned %d",
		opts.Name, summary.Games, summary.FugitiveWins, summary.HunterWins, summary.Abandoned)

	if opts.OutputDir == "" {
		return summary, nil
	}
	writer, err := store(opts, matchUps, summary)
	if err != nil {
		return summary, err
	}
	summary.RecordsWriter = writer
	return summary, nil
}

type experimentSetup struct {
	Name         string    `json:"name"`
	Games        int       `json:"games"`
	Seed         uint64    `json:"seed"`
	MaxRotations int       `json:"max_rotations"`
	Nodes        int       `json:"nodes"`
	Rounds       []bool    `json:"rounds"`
	Players      []string  `json:"players"`
	MatchUps     []MatchUp `json:"matchups"`
}

func store(opts Options, matchUps []MatchUp, summary Summary) (*metrics.Writer, error) {
	writer, err := metrics.NewWriter(opts.OutputDir, opts.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteSetup(experimentSetup{
		Name:         opts.Name,
		Games:        opts.Games,
		Seed:         opts.Seed,
		MaxRotations: opts.MaxRotations,
		Nodes:        opts.Setup.Board.Len(),
		Rounds:       opts.Setup.Rounds,
		Players:      utils.Map(opts.Setup.Colours(), game.Colour.String),
		MatchUps:     matchUps,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store setup: %w", err)
	}

	configs := []metrics.StrategyConfig{}
	seen := map[int]bool{}
	for _, m := range matchUps {
		for _, c := range []metrics.StrategyConfig{m.Fugitive, m.Hunters} {
			if !seen[c.ID] {
				seen[c.ID] = true
				configs = append(configs, c)
			}
		}
	}
	err = writer.WriteStrategyConfigs(configs)
	if err != nil {
		return nil, fmt.Errorf("failed to store strategy configs: %w", err)
	}
	log.Info().Msg("stored strategy configs")

	err = writer.WriteGameRecords(summary.GameRecords)
	if err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(summary.MoveRecords)
	if err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return writer, nil
}

// runGame plays a single game of a matchup.
func runGame(opts Options, matchup MatchUp, seed uint64) (engine.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	strategies := map[game.Colour]game.Strategy{}
	for i, colour := range opts.Setup.Colours() {
		cfg := matchup.Hunters
		if colour.IsFugitive() {
			cfg = matchup.Fugitive
		}
		s, err := createStrategy(cfg, colour, seed+uint64(i))
		if err != nil {
			return engine.Result{}, metrics.GameMetric{}, nil, err
		}
		strategies[colour] = s
	}

	id := uuid.New()
	collector := metrics.NewCollector(id)
	options := []engine.Option{engine.WithID(id), engine.WithSpectators(collector)}
	if opts.MaxRotations > 0 {
		options = append(options, engine.WithMaxRotations(opts.MaxRotations))
	}
	e, err := engine.LocalEngine(opts.Setup, strategies, options...)
	if err != nil {
		return engine.Result{}, metrics.GameMetric{}, nil, err
	}

	collector.Start()
	result, err := e.Run()
	if err != nil {
		return engine.Result{}, metrics.GameMetric{}, nil, err
	}
	gameMetric, moveMetrics := collector.Complete()
	return result, gameMetric, moveMetrics, nil
}

func createStrategy(config metrics.StrategyConfig, colour game.Colour, seed uint64) (game.Strategy, error) {
	switch strings.ToLower(config.Kind) {
	case "random":
		return player.NewRandom(seed), nil
	case "chase":
		return player.NewWeighted(player.Chase{}, config.Temperature, seed), nil
	case "evade":
		return player.NewWeighted(player.Evade{DoublePenalty: meta.DOUBLE_PENALTY}, config.Temperature, seed), nil
	case "greedy":
		if colour.IsFugitive() {
			return player.NewWeighted(player.Evade{DoublePenalty: meta.DOUBLE_PENALTY}, 0, seed), nil
		}
		return player.NewWeighted(player.Chase{}, 0, seed), nil
	default:
		return nil, fmt.Errorf("unknown strategy kind %q", config.Kind)
	}
}
