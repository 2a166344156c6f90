package config

import (
	"go.uber.org/fx"

	"hookbot/pkg/logger"
)

// Module provides configuration for fx dependency injection, including
// the derived logger configuration.
var Module = fx.Module("config",
	fx.Provide(ProvideLoader),
	fx.Provide(ProvideConfig),
	fx.Provide(ProvideLoggerConfig),
)

// ProvideLoader provides a configuration loader.
func ProvideLoader() *Loader {
	return NewLoader()
}

// ProvideConfig loads and validates the configuration.
func ProvideConfig(loader *Loader) (*Config, error) {
	cfg, err := loader.Load("")
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProvideLoggerConfig derives the logger configuration from the log
// section.
func ProvideLoggerConfig(cfg *Config) *logger.Config {
	return cfg.LoggerConfig()
}
