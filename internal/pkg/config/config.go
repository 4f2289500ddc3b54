package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,default=8080"`
	Env      string `env:"ENV,default=development"`
	LogLevel string `env:"LOG_LEVEL,default=info"`

	Mongo MongoConfig
}

// MongoConfig has no URI default on purpose: an unset MONGO_URI means the
// API starts in degraded mode instead of failing.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB,default=pastel_landing"`
}

// Load reads configuration from the environment, with an optional .env file
// merged in first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
