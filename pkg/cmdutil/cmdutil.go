// Package cmdutil wires the shared per-invocation plumbing for moltbook
// commands: persistent flag access, effective config resolution, credential
// checks, and API client construction.
package cmdutil

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/api"
	"github.com/moltbook/moltbook-cli/pkg/config"
	"github.com/moltbook/moltbook-cli/pkg/credentials"
	"github.com/moltbook/moltbook-cli/pkg/logger"
)

// Flags reads the persistent flags registered on the root command.
func Flags(cmd *cobra.Command) (configDir string, asJSON, debug bool) {
	configDir, _ = cmd.Flags().GetString("config-dir")
	asJSON, _ = cmd.Flags().GetBool("json")
	debug, _ = cmd.Flags().GetBool("debug")
	return configDir, asJSON, debug
}

// Session bundles everything a network command needs for one invocation.
// It is constructed fresh per command run; there is no ambient global state.
type Session struct {
	Config *config.Config
	Client *api.Client
	Logger *slog.Logger

	// JSON reports whether output should be machine-parseable, either via
	// the --json flag or the configured default format.
	JSON bool
}

// NewSession resolves the effective configuration and credential and returns
// a ready API client. A missing credential fails here, before any network
// access.
func NewSession(cmd *cobra.Command) (*Session, error) {
	configDir, asJSON, debug := Flags(cmd)

	cfger, err := config.NewConfiger(configDir)
	if err != nil {
		return nil, err
	}

	cfg, err := cfger.Effective()
	if err != nil {
		return nil, err
	}

	key, err := credentials.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.WithDebug(debug), logger.WithPretty(true))

	client := api.New(key,
		api.WithBaseURL(cfg.APIBase),
		api.WithTimeout(cfg.Timeout()),
		api.WithLogger(log),
	)

	return &Session{
		Config: cfg,
		Client: client,
		Logger: log,
		JSON:   asJSON || cfg.Format == "json",
	}, nil
}
