// Package config manages the persistent moltbook configuration record and
// resolves effective values from environment variables, the config file, and
// built-in defaults, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/moltbook/moltbook-cli/pkg/dotdir"
)

const (
	configFile = "config.toml"

	// EnvPrefix is the prefix for environment variable overrides
	// (MOLTBOOK_API_KEY, MOLTBOOK_API_BASE, ...).
	EnvPrefix = "MOLTBOOK"

	// v0 is the alpha version of the config
	v0 = 0

	// CurrentV is the currently supported version, points to v0
	CurrentV = v0
)

// Source identifies where a resolved config value came from.
type Source int

const (
	// SourceNone means no source provided a value; the value is absent.
	SourceNone Source = iota
	SourceEnv
	SourceFile
	SourceDefault
)

func (s Source) String() string {
	switch s {
	case SourceEnv:
		return "env"
	case SourceFile:
		return "file"
	case SourceDefault:
		return "default"
	default:
		return "none"
	}
}

type Configer struct {
	ddm        *dotdir.Manager
	targetDir  string
	targetPath string
}

// NewConfiger resolves the .moltbook/ directory (creating it if needed) and
// returns a Configer bound to the config.toml inside it. If override is
// non-empty it is used as the directory instead of the default resolution.
func NewConfiger(override string) (*Configer, error) {
	cfger := &Configer{}

	cfger.ddm = dotdir.NewManager()
	target, err := cfger.ddm.Target(override)
	if err != nil {
		return nil, err
	}

	cfger.targetDir = target
	cfger.targetPath = filepath.Join(target, configFile)

	return cfger, nil
}

// ValidConfigKeys returns the sorted list of all supported configuration key names.
func ValidConfigKeys() []string {
	keys := make([]string, 0, len(configKeys))
	for k := range configKeys {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// IsValidConfigKey returns true if the given key is a supported configuration key.
func IsValidConfigKey(key string) bool {
	_, ok := configKeys[key]
	return ok
}

// EnvVar returns the environment variable name that overrides the given
// config key (api_key -> MOLTBOOK_API_KEY).
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}

// GetTarget returns the resolved path to the config file.
func (c *Configer) GetTarget() string {
	return c.targetPath
}

// LoadConfig loads the configuration record from config.toml.
// If the file does not exist, returns NewDefaultConfig() so callers always
// receive a fully-populated Config. Fields explicitly set in the file
// override the defaults. A file that exists but cannot be parsed is a
// configuration-read error, never a silent fallback.
func (c *Configer) LoadConfig() (*Config, error) {
	data, err := os.ReadFile(c.targetPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := ParseConfigTOML(data)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

// LoadFile loads the raw configuration record without merging defaults.
// Used by "config show" to display exactly what is stored on disk.
func (c *Configer) LoadFile() (*Config, error) {
	data, err := os.ReadFile(c.targetPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{Version: CurrentV}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return ParseConfigTOML(data)
}

// applyDefaults fills zero-value fields in cfg with values from NewDefaultConfig().
// The api_key is deliberately excluded; it has no default.
func applyDefaults(cfg *Config) {
	defaults := NewDefaultConfig()

	if cfg.Version == 0 {
		cfg.Version = defaults.Version
	}
	if cfg.APIBase == "" {
		cfg.APIBase = defaults.APIBase
	}
	if cfg.Format == "" {
		cfg.Format = defaults.Format
	}
	if cfg.TimeoutSeconds == 0 {
		cfg.TimeoutSeconds = defaults.TimeoutSeconds
	}
}

// SaveConfig persists the configuration record to config.toml. The record is
// written to a temporary file in the same directory and renamed into place so
// a failed write never leaves a truncated config behind.
func (c *Configer) SaveConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("cannot save nil config")
	}

	var buf bytes.Buffer
	encoder := toml.NewEncoder(&buf)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	tmp, err := os.CreateTemp(c.targetDir, configFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp config: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing config: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("setting config permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing config: %w", err)
	}

	if err := os.Rename(tmpPath, c.targetPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing config: %w", err)
	}

	return nil
}

// SetConfigValue loads the config record, sets the given key to the given
// value, and saves it. Empty values are rejected before any write; use the
// environment or delete the file to unset keys.
func (c *Configer) SetConfigValue(key string, value string) error {
	info, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key: %q", key)
	}

	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value for %q cannot be empty", key)
	}

	cfg, err := c.LoadFile()
	if err != nil {
		return err
	}

	if err := info.set(cfg, value); err != nil {
		return err
	}

	return c.SaveConfig(cfg)
}

// GetConfigValue loads the config record and returns the string
// representation of the given key as stored on disk, without environment
// overrides. Returns an error if the key is not a valid config key.
func (c *Configer) GetConfigValue(key string) (string, error) {
	info, ok := configKeys[key]
	if !ok {
		return "", fmt.Errorf("unknown config key: %q", key)
	}

	cfg, err := c.LoadFile()
	if err != nil {
		return "", err
	}

	return info.get(cfg), nil
}

// Resolve returns the effective value for a key along with the source that
// provided it: environment variable first, then the config file, then the
// built-in default. SourceNone signals an explicitly absent value; callers
// must not treat it as an empty-but-valid setting.
func (c *Configer) Resolve(key string) (string, Source, error) {
	info, ok := configKeys[key]
	if !ok {
		return "", SourceNone, fmt.Errorf("unknown config key: %q", key)
	}

	if v := os.Getenv(EnvVar(key)); v != "" {
		return v, SourceEnv, nil
	}

	cfg, err := c.LoadFile()
	if err != nil {
		return "", SourceNone, err
	}
	if v := info.get(cfg); v != "" {
		return v, SourceFile, nil
	}

	if v := info.get(NewDefaultConfig()); v != "" {
		return v, SourceDefault, nil
	}

	return "", SourceNone, nil
}

// ParseConfigTOML parses raw TOML bytes into a Config.
// Returns an error if the version field is present and not equal to CurrentV.
func ParseConfigTOML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}

	if cfg.Version != 0 && cfg.Version != CurrentV {
		return nil, fmt.Errorf("unsupported config version %d (expected %d)", cfg.Version, CurrentV)
	}

	return cfg, nil
}
