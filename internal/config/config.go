package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	AdminAPIKey string `env:"ADMIN_API_KEY"`
	CORSOrigins string `env:"CORS_ORIGINS" envDefault:"*"`
}

// Load reads a .env file when present, then parses configuration from the
// environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	return &cfg, nil
}
