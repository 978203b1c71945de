package config

import (
	"fmt"
	"strconv"
)

// Config represents the persistent moltbook configuration stored as
// config.toml in the .moltbook/ directory. This is the on-disk record only;
// use (*Configer).Effective to apply environment overrides.
type Config struct {
	Version        int    `toml:"version"`
	APIKey         string `toml:"api_key,omitempty"`
	APIBase        string `toml:"api_base,omitempty"`
	Format         string `toml:"format,omitempty"`
	TimeoutSeconds uint   `toml:"timeout_seconds,omitempty"`
}

// configKeyInfo maps a user-facing key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Key names match the flat TOML field names, and double as the suffix of the
// corresponding environment variable (api_key -> MOLTBOOK_API_KEY).
var configKeys = map[string]configKeyInfo{
	"api_key": {
		get: func(c *Config) string { return c.APIKey },
		set: func(c *Config, v string) error { c.APIKey = v; return nil },
	},
	"api_base": {
		get: func(c *Config) string { return c.APIBase },
		set: func(c *Config, v string) error { c.APIBase = v; return nil },
	},
	"format": {
		get: func(c *Config) string { return c.Format },
		set: func(c *Config, v string) error {
			if v != "text" && v != "json" {
				return fmt.Errorf("invalid value for format: %q (expected text or json)", v)
			}
			c.Format = v
			return nil
		},
	},
	"timeout_seconds": {
		get: func(c *Config) string {
			if c.TimeoutSeconds == 0 {
				return ""
			}
			return strconv.FormatUint(uint64(c.TimeoutSeconds), 10)
		},
		set: func(c *Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value for timeout_seconds: %w", err)
			}
			c.TimeoutSeconds = uint(n)
			return nil
		},
	},
}
