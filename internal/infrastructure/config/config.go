package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port         string        `env:"PORT,          default=8080"`
	Env          string        `env:"ENV,           default=development"`
	LogLevel     string        `env:"LOG_LEVEL,     default=info"`
	CookieSecret string        `env:"COOKIE_SECRET"`
	SessionTTL   time.Duration `env:"SESSION_TTL,   default=24h"`

	Upstream UpstreamConfig
	Redis    RedisConfig
}

type UpstreamConfig struct {
	BaseURL    string        `env:"UPSTREAM_URL,         default=http://localhost:4000"`
	Timeout    time.Duration `env:"UPSTREAM_TIMEOUT,     default=10s"`
	MaxRetries int           `env:"UPSTREAM_MAX_RETRIES, default=2"`
	RetryDelay time.Duration `env:"UPSTREAM_RETRY_DELAY, default=2s"`
}

// RedisConfig configures the session store. An empty Addr selects the
// in-memory store instead.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
