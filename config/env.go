package config

import (
	"errors"
	"fmt"
	"io/fs"

	"manhunt/meta"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env holds the runtime settings read from the environment.
type Env struct {
	Setup        string `env:"MANHUNT_SETUP"` // Empty means the built-in setup
	Games        int    `env:"MANHUNT_GAMES"`
	Seed         uint64 `env:"MANHUNT_SEED" envDefault:"1"`
	MaxRotations int    `env:"MANHUNT_MAX_ROTATIONS"`
	OutputDir    string `env:"MANHUNT_OUTPUT_DIR" envDefault:"experiments"`
	LogLevel     string `env:"MANHUNT_LOG_LEVEL" envDefault:"info"`
	LogPretty    bool   `env:"MANHUNT_LOG_PRETTY" envDefault:"true"`
}

// LoadEnv loads the given dotenv files (".env" if none are named) into the
// process environment, then parses Env from it. Missing files are ignored;
// variables already set take precedence over the files.
func LoadEnv(files ...string) (Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("load dotenv: %w", err)
	}

	cfg := Env{
		Games:        meta.DEFAULT_GAMES,
		MaxRotations: meta.MAX_ROTATIONS,
	}
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Games <= 0 {
		return Env{}, fmt.Errorf("parse env: MANHUNT_GAMES must be positive, got %d", cfg.Games)
	}
	if cfg.MaxRotations <= 0 {
		return Env{}, fmt.Errorf("parse env: MANHUNT_MAX_ROTATIONS must be positive, got %d", cfg.MaxRotations)
	}
	return cfg, nil
}
