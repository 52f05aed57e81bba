package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"donation-campaign/internal/config/configs"
)

// Config is the process configuration of the donation service: where to
// listen, how to log and which campaign totals to start from. Each section
// reads its own HTTP_, LOG_ or CAMPAIGN_ variables; defaults live on the
// section types in package configs.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is only
	// attached to log records.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Campaign configures the campaign totals. Environment variables
	// prefixed with CAMPAIGN_ will populate this struct.
	Campaign configs.Campaign `envPrefix:"CAMPAIGN_"`
}

// Load reads configuration from environment variables into a Config. Values
// found in .env or .env.local are applied first without overriding variables
// that are already set. All fields are loaded with their specified defaults
// when no environment variable is provided.
func Load() (Config, error) {
	// missing dotenv files are fine
	_ = godotenv.Load(".env", ".env.local")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if !finite(c.Campaign.SeedAmount) {
		return fmt.Errorf("CAMPAIGN_SEED_AMOUNT must be a finite number, got %v", c.Campaign.SeedAmount)
	}
	if !finite(c.Campaign.GoalAmount) || c.Campaign.GoalAmount <= 0 {
		return fmt.Errorf("CAMPAIGN_GOAL_AMOUNT must be positive, got %v", c.Campaign.GoalAmount)
	}
	if !finite(c.Campaign.MaxDonation) || c.Campaign.MaxDonation < 0 {
		return errors.New("CAMPAIGN_MAX_DONATION must be a finite, non-negative number")
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
