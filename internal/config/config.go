package config

import (
	"github.com/caarlos0/env/v11"

	"mesa-roi/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the dashboard API server.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Planner holds the reallocation settings.
	Planner configs.Planner `envPrefix:"PLANNER_"`

	// Model selects the click rate predictor.
	Model configs.Model `envPrefix:"MODEL_"`
}

// Load reads configuration from environment variables into a Config and
// validates the planner section.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if _, err := cfg.Planner.Options(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
