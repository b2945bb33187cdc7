// Package config loads coinloop settings from the environment.
package config

import (
	"github.com/caarlos0/env/v11"

	"coinloop/internal/config/configs"
)

// Config is the full application configuration. Each section reads the
// variables under its envPrefix; defaults live on the section types.
type Config struct {
	Env string `env:"ENV" envDefault:"prod"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	Store   configs.Store    `envPrefix:"STORE_"`
	Auth    configs.Auth     `envPrefix:"AUTH_"`
	Economy configs.Economy  `envPrefix:"ECONOMY_"`
}

// Load parses the environment and rejects an unknown store driver.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if _, err := cfg.Store.NormalizedDriver(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
