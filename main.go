package main

import (
	"flag"
	"os"

	"manhunt/config"
	"manhunt/experiments"

	"github.com/rs/zerolog/log"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment")
	}

	setupPath := flag.String("setup", env.Setup, "Game setup file (built-in setup if empty)")
	games := flag.Int("games", env.Games, "Number of games per matchup")
	seed := flag.Uint64("seed", env.Seed, "Seed for the strategies")
	maxRotations := flag.Int("max-rotations", env.MaxRotations, "Rotations before a game is abandoned")
	outputDir := flag.String("out", env.OutputDir, "Directory for experiment records (none if empty)")
	name := flag.String("name", "matchups", "Experiment name")
	logLevel := flag.String("log-level", env.LogLevel, "Log level")
	flag.Parse()

	if err := config.ConfigureLogging(*logLevel, env.LogPretty); err != nil {
		log.Fatal().Err(err).Msg("failed to configure logging")
	}

	setup, err := config.LoadSetup(*setupPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load setup")
	}

	summary, err := experiments.Run(experiments.Options{
		Name:         *name,
		Setup:        setup,
		Games:        *games,
		Seed:         *seed,
		MaxRotations: *maxRotations,
		OutputDir:    *outputDir,
	}, experiments.DefaultMatchUps())
	if err != nil {
		log.Error().Err(err).Msg("experiment failed")
		os.Exit(1)
	}

	log.Info().
		Int("games", summary.Games).
		Int("fugitive_wins", summary.FugitiveWins).
		Int("hunter_wins", summary.HunterWins).
		Int("abandoned", summary.Abandoned).
		Msg("done")
}
