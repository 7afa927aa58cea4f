package config

import (
	"fmt"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting. Values come from the environment, with
// an optional .env file loaded first for local development.
type Config struct {
	Port          string   `env:"PORT" envDefault:"3001"`
	GinMode       string   `env:"GIN_MODE" envDefault:"debug"`
	LogLevel      string   `env:"LOG_LEVEL" envDefault:"info"`
	MongoURI      string   `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string   `env:"MONGO_DATABASE" envDefault:"lumenlearn"`
	AdminAPIKeys  []string `env:"ADMIN_API_KEYS" envSeparator:","`
	DataRoot      string   `env:"DATA_ROOT" envDefault:"./data"`
	// CascadeFailFast aborts a challenge delete on the first failing child
	// step instead of logging and continuing.
	CascadeFailFast bool `env:"CASCADE_FAIL_FAST" envDefault:"false"`
}

// Load reads the optional .env file and parses the environment.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
