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

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get an effective configuration value",
		Long: "Print the effective value for a key, resolved from the environment,\n" +
			"the config file, and built-in defaults, in that order. The api_key is\n" +
			"always masked.\n\n" +
			"Valid keys: " + strings.Join(config.ValidConfigKeys(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, asJSON, _ := cmdutil.Flags(cmd)

			cfger, err := config.NewConfiger(configDir)
			if err != nil {
				return err
			}

			key := args[0]
			value, source, err := cfger.Resolve(key)
			if err != nil {
				return err
			}

			display := value
			if key == "api_key" {
				display = credentials.Mask(value)
			}

			w := cmd.OutOrStdout()

			if asJSON {
				out := map[string]any{
					"key":    key,
					"source": source.String(),
					"set":    source != config.SourceNone,
				}
				if source != config.SourceNone {
					out["value"] = display
				}
				return cliui.MarshalJSON(w, out)
			}

			if source == config.SourceNone {
				fmt.Fprintf(w, "%s %s\n", cliui.KeyStyle.Render(key), cliui.DimStyle.Render("(not set)"))
				return nil
			}

			fmt.Fprintf(w, "%s = %s %s\n",
				cliui.KeyStyle.Render(key),
				display,
				cliui.DimStyle.Render("("+source.String()+")"),
			)

			return nil
		},
	}
}
