// Package config loads HelpMate's runtime settings from the environment.
//
// Precedence, highest first: command-line flags (applied by cmd), process
// environment, an optional .env file, then the defaults in the struct tags.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when present in the working directory.
const DefaultEnvFile = ".env"

// Config holds the host shell settings. None of it is onboarding state.
type Config struct {
	// Language selects the content catalog, e.g. "en" or "es".
	Language string `env:"HELPMATE_LANG" envDefault:"en"`

	// LogFile is where diagnostic logs are written. Empty disables logging,
	// since the terminal UI owns stdout.
	LogFile  string `env:"HELPMATE_LOG_FILE"`
	LogLevel string `env:"HELPMATE_LOG_LEVEL" envDefault:"info"`

	// ReducedMotion renders slide transitions instantly.
	ReducedMotion bool `env:"HELPMATE_REDUCED_MOTION" envDefault:"false"`
}

// Load reads the given env files (missing files are skipped) and parses the
// environment into a Config.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
