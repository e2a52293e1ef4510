// Package config loads namegen settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds namegen settings.
type Config struct {
	RulesPath  string `env:"NAMEGEN_RULES" envDefault:"data/names.yaml"`
	DBPath     string `env:"NAMEGEN_DB" envDefault:"data/names.db"`
	Definition string `env:"NAMEGEN_DEFINITION" envDefault:"settler"`
	Count      uint32 `env:"NAMEGEN_COUNT" envDefault:"25"`
	Seed       int64  `env:"NAMEGEN_SEED"` // 0 = unseeded
	CacheSize  int    `env:"NAMEGEN_CACHE_SIZE" envDefault:"4096"`

	Minions            uint32  `env:"NAMEGEN_MINIONS" envDefault:"3"` // Familiars bound to the first agents
	CreatureDefinition string  `env:"NAMEGEN_CREATURE_DEFINITION" envDefault:"beast"`
	CreatureShare      float32 `env:"NAMEGEN_CREATURE_SHARE" envDefault:"0.1"`
	KnownShare         float32 `env:"NAMEGEN_KNOWN_SHARE" envDefault:"0.5"`

	Enabled       bool              `env:"NAMEGEN_ENABLED" envDefault:"true"`
	Obscurity     bool              `env:"NAMEGEN_OBSCURITY" envDefault:"false"`
	Obscure       string            `env:"NAMEGEN_OBSCURE" envDefault:"???"`
	DisplayFormat string            `env:"NAMEGEN_DISPLAY_FORMAT" envDefault:"{name} the {title}"`
	Styles        map[string]string `env:"NAMEGEN_STYLES" envSeparator:"," envKeyValSeparator:"="` // context=style overrides

	LogLevel string `env:"NAMEGEN_LOG_LEVEL" envDefault:"info"`
}

// Load reads the given .env files (missing files are ignored) and parses
// the environment into a Config.
func Load(envFiles ...string) (Config, error) {
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.CacheSize <= 0 {
		return Config{}, fmt.Errorf("NAMEGEN_CACHE_SIZE must be positive, got %d", cfg.CacheSize)
	}
	if cfg.CreatureShare < 0 || cfg.CreatureShare > 1 || cfg.KnownShare < 0 || cfg.KnownShare > 1 {
		return Config{}, errors.New("NAMEGEN_CREATURE_SHARE and NAMEGEN_KNOWN_SHARE must be within 0..1")
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
