package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"movo-ads/internal/config/configs"
)

// Config aggregates all configuration sections of the matching service.
// Fields are populated from environment variables using the caarlos0/env
// library. The nested structs are tagged with envPrefix so their fields are
// parsed with the given prefix. See the individual types in the configs
// package for default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Redis    configs.Redis    `envPrefix:"REDIS_"`
	MQ       configs.MQ       `envPrefix:"MQ_"`
	Auth     configs.Auth     `envPrefix:"AUTH_"`
	Matching configs.Matching `envPrefix:"MATCH_"`
}

// ClientConfig is the configuration of the ride simulator.
type ClientConfig struct {
	Log     configs.Logger  `envPrefix:"LOG_"`
	Session configs.Session `envPrefix:"SESSION_"`
	RideSim configs.RideSim `envPrefix:"RIDESIM_"`

	// mint is only parsed when no RIDESIM_TOKEN is given.
	mint *configs.Auth
}

// MintAuth returns the signing settings the simulator uses to issue its own
// driver token. ok is false when a token was configured instead.
func (c ClientConfig) MintAuth() (auth configs.Auth, ok bool) {
	if c.mint == nil {
		return configs.Auth{}, false
	}
	return *c.mint, true
}

// Load reads the server configuration from environment variables. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided. The JWT
// secret has no default.
func Load() (Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	return cfg, err
}

// LoadClient reads the simulator configuration. Without RIDESIM_TOKEN the
// AUTH_ section is parsed as well, so AUTH_JWT_SECRET becomes required.
func LoadClient() (ClientConfig, error) {
	var cfg ClientConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if cfg.RideSim.Token != "" {
		return cfg, nil
	}
	var mint configs.Auth
	if err := env.ParseWithOptions(&mint, env.Options{Prefix: "AUTH_"}); err != nil {
		return cfg, fmt.Errorf("RIDESIM_TOKEN is unset: %w", err)
	}
	cfg.mint = &mint
	return cfg, nil
}
