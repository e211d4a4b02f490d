package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/verte-zerg/wordrush/internal/model"
)

// LoadServerConfig reads server settings from the environment, after loading
// an optional .env file from the working directory.
func LoadServerConfig() (model.ServerConfig, error) {
	_ = godotenv.Load()
	var cfg model.ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return model.ServerConfig{}, fmt.Errorf("failed to parse env: %w", err)
	}
	return cfg, nil
}
