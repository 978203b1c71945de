// Package credentials resolves and masks the Moltbook API key.
//
// The effective credential for an invocation is selected with a fixed
// precedence: the MOLTBOOK_API_KEY environment variable wins over the
// api_key stored in config.toml. A missing credential is a typed error so
// commands can refuse to touch the network without one.
package credentials

import (
	"os"
	"strings"

	"github.com/moltbook/moltbook-cli/pkg/config"
)

// EnvAPIKey is the environment variable that overrides the stored api_key.
const EnvAPIKey = "MOLTBOOK_API_KEY"

const (
	maskPrefixLen = 10
	maskSuffixLen = 4
)

// MissingKeyError signals that no source provided a non-empty API key.
type MissingKeyError struct{}

func (e *MissingKeyError) Error() string {
	return "no API key configured"
}

// Hint returns remediation text for the user.
func (e *MissingKeyError) Hint() string {
	return "Set it with: moltbook config set api_key YOUR_KEY\n" +
		"Or: export " + EnvAPIKey + "=YOUR_KEY"
}

// FromConfig returns the effective API key from an already-resolved
// effective config (which folds in the environment override), or a
// *MissingKeyError when the key is absent.
func FromConfig(cfg *config.Config) (string, error) {
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return "", &MissingKeyError{}
	}
	return key, nil
}

// Mask renders an API key safe for terminal output: a fixed-length prefix
// and suffix with the middle elided. Keys too short to elide are replaced
// entirely so the full secret never appears.
func Mask(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= maskPrefixLen+maskSuffixLen {
		return "****"
	}
	return key[:maskPrefixLen] + "..." + key[len(key)-maskSuffixLen:]
}

// Describe reports the masked effective key and the source it came from
// ("env" or "file") for display by "config show". The boolean is false when
// no key is configured anywhere.
func Describe(fileCfg *config.Config) (masked string, source string, ok bool) {
	if env := strings.TrimSpace(os.Getenv(EnvAPIKey)); env != "" {
		return Mask(env), "env", true
	}
	if key := strings.TrimSpace(fileCfg.APIKey); key != "" {
		return Mask(key), "file", true
	}
	return "", "", false
}
