// Package authcmder provides the auth command for storing the API key.
package authcmder

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/config"
	"github.com/moltbook/moltbook-cli/pkg/credentials"
)

const authLongDesc string = `Store the Moltbook API key.

The key is persisted as api_key in config.toml under the .moltbook
directory and sent as a bearer token on every request. The ` + credentials.EnvAPIKey + `
environment variable overrides the stored key when set.

Examples:
  moltbook auth                  Prompt for the API key (hidden input)
  echo $KEY | moltbook auth      Pipe the API key from stdin
  moltbook auth --remove         Remove the stored key`

const authShortDesc string = "Store the Moltbook API key"

func NewAuthCmd() *cobra.Command {
	var removeFlag bool

	cmd := &cobra.Command{
		Use:   "auth",
		Short: authShortDesc,
		Long:  authLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")

			if removeFlag {
				return runRemove(cmd, configDir)
			}
			return runAuth(cmd, configDir)
		},
	}

	cmd.Flags().BoolVar(&removeFlag, "remove", false, "Remove the stored API key")

	return cmd
}

func runAuth(cmd *cobra.Command, configDir string) error {
	apiKey, err := readAPIKey(cmd)
	if err != nil {
		return err
	}

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return errors.New("API key cannot be empty")
	}

	cfger, err := config.NewConfiger(configDir)
	if err != nil {
		return err
	}

	if err := cfger.SetConfigValue("api_key", apiKey); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n  %s Stored API key %s\n\n",
		cliui.SuccessMark,
		cliui.DimStyle.Render("("+credentials.Mask(apiKey)+")"),
	)

	if os.Getenv(credentials.EnvAPIKey) != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %s is set and overrides the stored key.\n\n",
			cliui.WarnStyle.Render("!"),
			credentials.EnvAPIKey,
		)
	}

	return nil
}

func runRemove(cmd *cobra.Command, configDir string) error {
	cfger, err := config.NewConfiger(configDir)
	if err != nil {
		return err
	}

	cfg, err := cfger.LoadFile()
	if err != nil {
		return err
	}

	if cfg.APIKey == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\n  %s No stored API key.\n\n", cliui.DimStyle.Render("●"))
		return nil
	}

	cfg.APIKey = ""
	if err := cfger.SaveConfig(cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n  %s Removed stored API key.\n\n", cliui.SuccessMark)

	return nil
}

// readAPIKey reads the API key from the command's input. Piped input reads
// the first line; an interactive terminal prompts with hidden input.
func readAPIKey(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()

	if f, ok := in.(*os.File); ok {
		fi, err := f.Stat()
		if err != nil {
			return "", fmt.Errorf("checking stdin: %w", err)
		}
		if (fi.Mode() & os.ModeCharDevice) != 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Enter Moltbook API key: ")
			keyBytes, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(cmd.OutOrStdout())
			if err != nil {
				return "", fmt.Errorf("reading API key: %w", err)
			}
			return string(keyBytes), nil
		}
	}

	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return "", errors.New("no input received on stdin")
}
