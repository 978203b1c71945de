package configcmder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/cmdutil"
	"github.com/moltbook/moltbook-cli/pkg/config"
	"github.com/moltbook/moltbook-cli/pkg/credentials"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a configuration value and persist it to config.toml.\n\n" +
			"Valid keys: " + strings.Join(config.ValidConfigKeys(), ", "),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, asJSON, _ := cmdutil.Flags(cmd)

			cfger, err := config.NewConfiger(configDir)
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			if err := cfger.SetConfigValue(key, value); err != nil {
				return err
			}

			display := value
			if key == "api_key" {
				display = credentials.Mask(value)
			}

			w := cmd.OutOrStdout()

			if asJSON {
				return cliui.MarshalJSON(w, map[string]any{
					"success": true,
					"key":     key,
					"value":   display,
				})
			}

			fmt.Fprintf(w, "%s Set %s = %s\n", cliui.SuccessMark, cliui.KeyStyle.Render(key), display)

			return nil
		},
	}
}
