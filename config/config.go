// Package config reads runtime settings from the environment.
// Every knob has a working default so `shmoopland <dir>` just runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings, filled from SHMOOPLAND_* variables.
type Config struct {
	DataDir   string `env:"DATA_DIR"`
	HTTPAddr  string `env:"HTTP_ADDR" envDefault:":8080"`
	Seed      int64  `env:"SEED" envDefault:"0"`
	CacheSize int    `env:"CACHE_SIZE" envDefault:"256"`
	SaveDir   string `env:"SAVE_DIR"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "SHMOOPLAND_"}); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.SaveDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("resolving save directory: %w", err)
		}
		cfg.SaveDir = filepath.Join(home, ".shmoopland", "saves")
	}
	return cfg, nil
}
