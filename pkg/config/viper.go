package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// InitViper creates and returns a configured *viper.Viper bound to the
// Configer's .moltbook/ directory.
//
// Config precedence (highest to lowest):
//  1. Environment variables (MOLTBOOK_API_KEY, MOLTBOOK_API_BASE, ...)
//  2. config.toml file values
//  3. Defaults from NewDefaultConfig()
func (c *Configer) InitViper() (*viper.Viper, error) {
	v := viper.New()

	// 1. Register all defaults from NewDefaultConfig().
	setViperDefaults(v)

	// 2. Config file discovery in the resolved .moltbook/ directory.
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(c.targetDir)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found errors are fine, defaults will apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	// 3. Environment variables: MOLTBOOK_API_KEY, MOLTBOOK_FORMAT, etc.
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	return v, nil
}

// Effective builds the effective configuration for one CLI invocation by
// applying the env > file > default precedence chain via viper. The returned
// Config is a plain value; commands receive it explicitly rather than
// reading ambient global state.
func (c *Configer) Effective() (*Config, error) {
	v, err := c.InitViper()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Version:        v.GetInt("version"),
		APIKey:         v.GetString("api_key"),
		APIBase:        v.GetString("api_base"),
		Format:         v.GetString("format"),
		TimeoutSeconds: v.GetUint("timeout_seconds"),
	}

	if cfg.Version != 0 && cfg.Version != CurrentV {
		return nil, fmt.Errorf("unsupported config version %d (expected %d)", cfg.Version, CurrentV)
	}

	return cfg, nil
}

// Timeout returns the configured request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds == 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// setViperDefaults registers defaults from NewDefaultConfig() into viper.
// This keeps defaults.go as the single source of truth. No default is
// registered for api_key: a missing credential must stay absent.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("version", d.Version)
	v.SetDefault("api_base", d.APIBase)
	v.SetDefault("format", d.Format)
	v.SetDefault("timeout_seconds", d.TimeoutSeconds)
}
