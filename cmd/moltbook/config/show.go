package configcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/cmdutil"
	"github.com/moltbook/moltbook-cli/pkg/config"
	"github.com/moltbook/moltbook-cli/pkg/credentials"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: "Show every configuration key with its effective value and the source\n" +
			"it was resolved from. The api_key is always masked; the full credential\n" +
			"is never printed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configDir, asJSON, _ := cmdutil.Flags(cmd)

			cfger, err := config.NewConfiger(configDir)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if asJSON {
				out := map[string]any{"path": cfger.GetTarget()}
				for _, key := range config.ValidConfigKeys() {
					value, source, err := cfger.Resolve(key)
					if err != nil {
						return err
					}
					if source == config.SourceNone {
						out[key] = nil
						continue
					}
					if key == "api_key" {
						value = credentials.Mask(value)
					}
					out[key] = map[string]any{
						"value":  value,
						"source": source.String(),
					}
				}
				return cliui.MarshalJSON(w, out)
			}

			fmt.Fprintln(w, cliui.HeaderStyle.Render("Configuration"))
			fmt.Fprintf(w, "%s %s\n\n", cliui.DimStyle.Render("path:"), cfger.GetTarget())

			for _, key := range config.ValidConfigKeys() {
				value, source, err := cfger.Resolve(key)
				if err != nil {
					return err
				}

				if source == config.SourceNone {
					fmt.Fprintf(w, "%s %s\n", cliui.KeyStyle.Render(key), cliui.DimStyle.Render("(not set)"))
					continue
				}

				if key == "api_key" {
					value = credentials.Mask(value)
				}

				fmt.Fprintf(w, "%s = %s %s\n",
					cliui.KeyStyle.Render(key),
					value,
					cliui.DimStyle.Render("("+source.String()+")"),
				)
			}

			return nil
		},
	}
}
