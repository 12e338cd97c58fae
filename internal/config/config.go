package config

import (
	"github.com/caarlos0/env/v11"

	"quickcamp/internal/config/configs"
)

// Config aggregates all configuration sections of the wizard service. Fields
// are populated from environment variables using the caarlos0/env library;
// nested structs are parsed with their envPrefix. See the configs package for
// defaults.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the submission ledger database (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the reference-data cache (REDIS_*).
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Remote configures the upstream campaign services (REMOTE_*).
	Remote configs.Remote `envPrefix:"REMOTE_"`

	// Wizard configures draft handling (WIZARD_*).
	Wizard configs.Wizard `envPrefix:"WIZARD_"`
}

// Load reads configuration from environment variables into a Config. All
// fields get their defaults when no environment variable is provided.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
