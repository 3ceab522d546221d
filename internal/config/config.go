package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	ListenAddress    string        `env:"LISTEN_ADDRESS, default=:8080"`
	LogLevel         string        `env:"LOG_LEVEL, default=info"`
	LogFormat        string        `env:"LOG_FORMAT, default=text"`
	GinMode          string        `env:"GIN_MODE, default=release"`
	RedisAddr        string        `env:"REDIS_ADDR"`
	RedisPassword    string        `env:"REDIS_PASSWORD"`
	RedisDB          int           `env:"REDIS_DB, default=0"`
	EventsStream     string        `env:"EVENTS_STREAM, default=shop.events"`
	ValidateOnUpdate bool          `env:"VALIDATE_ON_UPDATE, default=false"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`
}

// EventsEnabled reports whether shop events go to Redis.
func (c *Config) EventsEnabled() bool {
	return c.RedisAddr != ""
}

func LoadConfig(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to parse configuration from environment: %w", err)
	}

	return &cfg, nil
}
