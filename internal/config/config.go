// Package config loads the bridge host settings for the demo binary and
// integration tooling.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base name for configuration files (without extension).
	ConfigFileName = "vision-bridge"

	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "VISIONBRIDGE"
)

// Config holds the bridge host settings.
type Config struct {
	// Endpoint is the bridge host URL (http(s):// or ws(s):// depending on
	// the transport).
	Endpoint string `mapstructure:"endpoint"`
	// Transport selects how invocations reach the host: "http" or "ws".
	Transport string `mapstructure:"transport"`
	// Timeout bounds a single invocation when the caller's context has no
	// deadline of its own.
	Timeout time.Duration `mapstructure:"timeout"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Endpoint:  "http://localhost:8090",
		Transport: "http",
		Timeout:   30 * time.Second,
	}
}

// Load reads configuration from file and environment variables, falling back
// to defaults. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/vision-bridge")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("endpoint", def.Endpoint)
	v.SetDefault("transport", def.Transport)
	v.SetDefault("timeout", def.Timeout)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint must not be empty")
	}

	if c.Transport != "http" && c.Transport != "ws" {
		return fmt.Errorf("transport must be http or ws, got %q", c.Transport)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	return nil
}
