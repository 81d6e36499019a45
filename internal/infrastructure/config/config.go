// Package config loads all runtime configuration from the environment once at
// startup. Components receive the values they need through constructors;
// nothing reads the environment ad hoc.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	JWTSecret string `env:"JWT_SECRET"`

	// TokenTTL is the single source of truth for session lifetime: both the
	// token expiry and the cookie Max-Age derive from it.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=1h"`

	Login LoginConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// LoginConfig bounds login attempts per account within a fixed window.
// Only enforced when Redis is configured.
type LoginConfig struct {
	MaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS,   default=10"`
	Window      time.Duration `env:"LOGIN_ATTEMPT_WINDOW, default=1m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=wild_wall"`
}

// RedisConfig configures the optional login limiter backend. An empty Addr
// disables Redis entirely.
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
