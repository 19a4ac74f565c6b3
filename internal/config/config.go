package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, read from the environment at
// startup and passed down explicitly; nothing reads the environment later.
type Config struct {
	Host            string        `env:"GAMEHUB_HOST"            envDefault:""`
	Port            int           `env:"GAMEHUB_PORT"            envDefault:"8080"`
	StorageType     string        `env:"GAMEHUB_STORAGE"         envDefault:"memory"`
	RedisURL        string        `env:"GAMEHUB_REDIS_URL"       envDefault:"redis://localhost:6379"`
	SessionDuration time.Duration `env:"GAMEHUB_SESSION_TTL"     envDefault:"168h"`
	StaticDir       string        `env:"GAMEHUB_STATIC_DIR"      envDefault:"internal/web/static"`
	LogLevel        string        `env:"GAMEHUB_LOG_LEVEL"       envDefault:"info"`
}

// Load parses configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
