// Package submoltscmder provides the submolts command.
package submoltscmder

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/cmdutil"
)

const submoltsLongDesc string = `List submolts.

Shows every sub-community with its description and member count.

Examples:
  moltbook submolts
  moltbook submolts --json`

const submoltsShortDesc string = "List submolts"

func NewSubmoltsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submolts",
		Short: submoltsShortDesc,
		Long:  submoltsLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := cmdutil.NewSession(cmd)
			if err != nil {
				return err
			}
			return run(cmd, sess)
		},
	}

	return cmd
}

func run(cmd *cobra.Command, sess *cmdutil.Session) error {
	resp, err := sess.Client.Submolts(context.Background())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if sess.JSON {
		return cliui.PrintJSON(w, resp.Raw)
	}

	cliui.RenderSubmolts(w, resp.Submolts)

	return nil
}
