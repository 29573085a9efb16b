package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/KirkDiggler/pig/internal/services/messaging"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is loaded when present and -env-file is not given
const DefaultEnvFile = ".env"

var (
	// ErrInvalidPlayerCount is returned when fewer than one player is configured
	ErrInvalidPlayerCount = errors.New("number of players must be at least 1")

	// ErrInvalidTone is returned for an unknown message tone
	ErrInvalidTone = errors.New("tone must be neutral or funny")
)

// Config holds the game configuration
type Config struct {
	NumPlayers int    `env:"PIG_NUM_PLAYERS" envDefault:"2"`
	Seed       int64  `env:"PIG_SEED"`
	Tone       string `env:"PIG_TONE"        envDefault:"neutral"`

	// Redis ledger, the in-memory ledger is used when RedisAddr is empty
	RedisAddr     string `env:"PIG_REDIS_ADDR"`
	RedisPassword string `env:"PIG_REDIS_PASSWORD"`
	RedisDB       int    `env:"PIG_REDIS_DB"`

	// EnvFile is the env file that was read, set from the -env-file flag
	EnvFile string
}

// Parse builds a Config from an optional env file, the environment and
// flags, in increasing order of precedence.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	envFile := fs.String("env-file", DefaultEnvFile, "file of KEY=value pairs loaded into the environment")
	numPlayers := fs.Int("numPlayers", 2, "number of players")
	seed := fs.Int64("seed", 0, "dice seed, 0 seeds from the clock")
	tone := fs.String("tone", string(messaging.ToneNeutral), "message tone: neutral or funny")
	redisAddr := fs.String("redis-addr", "", "redis address for the results ledger")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	if err := loadEnvFile(*envFile, set["env-file"]); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.EnvFile = *envFile

	if set["numPlayers"] {
		cfg.NumPlayers = *numPlayers
	}
	if set["seed"] {
		cfg.Seed = *seed
	}
	if set["tone"] {
		cfg.Tone = *tone
	}
	if set["redis-addr"] {
		cfg.RedisAddr = *redisAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadEnvFile loads the file into the environment without overriding
// variables that are already set. A missing default file is not an error.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) && !explicit {
		return nil
	}

	return fmt.Errorf("load env file %s: %w", path, err)
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if c.NumPlayers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, c.NumPlayers)
	}

	if !messaging.MessageTone(c.Tone).IsValid() {
		return fmt.Errorf("%w: got %q", ErrInvalidTone, c.Tone)
	}

	return nil
}

// UseRedis reports whether the results ledger should be stored in Redis
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}
