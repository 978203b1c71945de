// Package configcmder provides the config command group for managing the
// persisted moltbook settings.
package configcmder

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/config"
)

const configLongDesc string = `Manage moltbook configuration.

Settings live in config.toml under the .moltbook directory. Environment
variables with the MOLTBOOK_ prefix override stored values without touching
the file.

Examples:
  moltbook config set api_key moltbook_sk_...
  moltbook config get api_base
  moltbook config show`

const configShortDesc string = "Manage moltbook configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc + "\n\nValid keys: " + strings.Join(config.ValidConfigKeys(), ", "),
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newShowCmd())

	return cmd
}
