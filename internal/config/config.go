// internal/config/config.go
package config

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jason-s-yu/monopoly/engine"
	_ "github.com/joho/godotenv/autoload" // .env in the working directory, if present
)

// Config holds every setting read from the environment.
type Config struct {
	// Game
	Players            []string `env:"MONOPOLY_PLAYERS" envSeparator:","`
	StartingCash       int      `env:"MONOPOLY_STARTING_CASH" envDefault:"1500"`
	Interactive        bool     `env:"MONOPOLY_INTERACTIVE" envDefault:"true"`
	Seed               uint64   `env:"MONOPOLY_SEED"` // 0 picks a time based seed.
	LastPlayerStanding bool     `env:"MONOPOLY_LAST_PLAYER_STANDING" envDefault:"false"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // text or json

	// Daemon
	HTTPAddr           string `env:"HTTP_ADDR" envDefault:":8000"`
	RedisURL           string `env:"REDIS_URL"`    // Empty disables the action log.
	DatabaseURL        string `env:"DATABASE_URL"` // Empty disables snapshot persistence.
	JWTSecret          string `env:"JWT_SECRET"`
	BankerPasswordHash string `env:"BANKER_PASSWORD_HASH"` // bcrypt; empty leaves /roll-dice open.

	// Publishing
	PublishPath string `env:"PUBLISH_PATH"` // HTML summary written after every turn.
}

// Load parses the environment.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.StartingCash <= 0 {
		return nil, fmt.Errorf("MONOPOLY_STARTING_CASH must be positive, got %d", cfg.StartingCash)
	}
	if cfg.BankerPasswordHash != "" && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required when BANKER_PASSWORD_HASH is set")
	}
	return &cfg, nil
}

// Rules returns the house rules selected by the environment.
func (c *Config) Rules() engine.HouseRules {
	r := engine.DefaultHouseRules()
	r.StartingCash = c.StartingCash
	r.Interactive = c.Interactive
	r.LastPlayerStanding = c.LastPlayerStanding
	return r
}

// Rand returns the deck shuffling source and the seed it was built from.
// An unset seed is taken from the clock.
func (c *Config) Rand() (*rand.Rand, uint64) {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}
