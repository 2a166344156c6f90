package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigPathEnv overrides the config file location.
const ConfigPathEnv = "HOOKBOT_CONFIG_FILE"

// Loader handles configuration loading with Viper.
type Loader struct {
	viper *viper.Viper
}

// NewLoader creates a loader that searches the usual locations and maps
// HOOKBOT_* environment variables onto config keys.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("json")

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".hookbot"))
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("HOOKBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only consults the environment for keys Viper already
	// knows about, so register every key with its default. Without this
	// an env-only setup would never reach Unmarshal.
	defaults := DefaultConfig()
	v.SetDefault("app.id", defaults.App.ID)
	v.SetDefault("app.public_key", defaults.App.PublicKey)
	v.SetDefault("app.token", defaults.App.Token)
	v.SetDefault("server.host", defaults.Server.Host)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.path", defaults.Server.Path)
	v.SetDefault("commands.register_on_startup", defaults.Commands.RegisterOnStartup)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.output_path", defaults.Log.OutputPath)
	v.SetDefault("log.development", defaults.Log.Development)

	return &Loader{viper: v}
}

// Load reads configuration from file and environment. If configPath is
// empty the default search paths (and HOOKBOT_CONFIG_FILE) are used; a
// missing file is not an error since everything can come from the
// environment.
func (l *Loader) Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if strings.TrimSpace(configPath) == "" {
		configPath = strings.TrimSpace(os.Getenv(ConfigPathEnv))
	}
	if configPath != "" {
		l.viper.SetConfigFile(configPath)
	}

	if err := l.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || os.IsNotExist(err)
		if !missing || configPath != "" {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No file anywhere on the search path; env-only config.
	}

	if err := l.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}
