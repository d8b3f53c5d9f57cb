package main

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/oriumgames/weave"
)

// serverConfig holds process settings read from the environment.
type serverConfig struct {
	ModulesConfig string     `env:"WEAVE_MODULES_CONFIG" envDefault:"config/weave/modules.json"`
	LogLevel      slog.Level `env:"WEAVE_LOG_LEVEL" envDefault:"INFO"`
	ServerName    string     `env:"WEAVE_SERVER_NAME" envDefault:"Weave Server"`
	WorldFolder   string     `env:"WEAVE_WORLD_FOLDER" envDefault:"world"`
	Address       string     `env:"WEAVE_ADDRESS" envDefault:":19132"`
}

// loadServerConfig parses the process settings.
func loadServerConfig() (serverConfig, error) {
	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return serverConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ModulesConfig == "" {
		cfg.ModulesConfig = weave.DefaultConfigPath
	}
	return cfg, nil
}
