package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds the HTTP server settings read from the environment.
type ServerConfig struct {
	Addr           string `env:"HOMECALC_ADDR" envDefault:":5000"`
	LogLevel       string `env:"HOMECALC_LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"HOMECALC_LOG_FORMAT" envDefault:"json"`
	MetricsEnabled bool   `env:"HOMECALC_METRICS" envDefault:"true"`
}

// LoadServerConfig loads server settings from environment variables.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
