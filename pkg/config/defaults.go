package config

const (
	defaultAPIBase        = "https://www.moltbook.com/api/v1"
	defaultFormat         = "text"
	defaultTimeoutSeconds = 30
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values. The api_key has no
// default: a missing key must surface as absent, never as a usable value.
func NewDefaultConfig() *Config {
	return &Config{
		Version:        CurrentV,
		APIBase:        defaultAPIBase,
		Format:         defaultFormat,
		TimeoutSeconds: defaultTimeoutSeconds,
	}
}
