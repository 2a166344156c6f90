// Package config provides configuration management for hookbot.
// It uses Viper for flexible configuration loading with support for
// multiple formats, environment variable overrides and defaults.
package config

import (
	"encoding/hex"
	"fmt"
	"strings"

	"hookbot/pkg/logger"
)

// Config is the complete hookbot configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app" json:"app"`
	Server   ServerConfig   `mapstructure:"server" json:"server"`
	Commands CommandsConfig `mapstructure:"commands" json:"commands"`
	Log      LogConfig      `mapstructure:"log" json:"log"`
}

// AppConfig identifies the Discord application the bot serves.
type AppConfig struct {
	// ID is the application (client) ID.
	ID uint64 `mapstructure:"id" json:"id"`
	// PublicKey is the hex-encoded Ed25519 key Discord signs interaction
	// requests with.
	PublicKey string `mapstructure:"public_key" json:"public_key"`
	// Token is the bot token used for outbound REST calls.
	Token string `mapstructure:"token" json:"token"`
}

// ServerConfig controls the inbound webhook endpoint.
type ServerConfig struct {
	Host string `mapstructure:"host" json:"host"`
	Port int    `mapstructure:"port" json:"port"`
	// Path is the route Discord POSTs interactions to.
	Path string `mapstructure:"path" json:"path"`
}

// CommandsConfig controls command registration behavior.
type CommandsConfig struct {
	// RegisterOnStartup pushes the full command tree to Discord when the
	// bot starts.
	RegisterOnStartup bool `mapstructure:"register_on_startup" json:"register_on_startup"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level       string `mapstructure:"level" json:"level"`
	OutputPath  string `mapstructure:"output_path" json:"output_path"`
	Development bool   `mapstructure:"development" json:"development"`
}

// DefaultConfig returns a configuration with sensible defaults. The app
// credentials have no defaults and must come from file or environment.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8330,
			Path: "/api/interactions",
		},
		Log: LogConfig{
			Level: string(logger.LevelInfo),
		},
	}
}

// Validate checks the configuration for fatal problems.
func Validate(cfg *Config) error {
	if cfg.App.ID == 0 {
		return fmt.Errorf("config: app.id is required")
	}
	key := strings.TrimSpace(cfg.App.PublicKey)
	if key == "" {
		return fmt.Errorf("config: app.public_key is required")
	}
	raw, err := hex.DecodeString(key)
	if err != nil {
		return fmt.Errorf("config: app.public_key is not valid hex: %w", err)
	}
	if len(raw) != 32 {
		return fmt.Errorf("config: app.public_key must be 32 bytes, got %d", len(raw))
	}
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range", cfg.Server.Port)
	}
	if !strings.HasPrefix(cfg.Server.Path, "/") {
		return fmt.Errorf("config: server.path must start with /")
	}
	return nil
}

// LoggerConfig converts the log section into a logger.Config.
func (c *Config) LoggerConfig() *logger.Config {
	lc := logger.DefaultConfig()
	if c.Log.Level != "" {
		lc.Level = logger.Level(c.Log.Level)
	}
	if c.Log.OutputPath != "" {
		lc.OutputPath = c.Log.OutputPath
	}
	lc.Development = c.Log.Development
	return lc
}
