// Package statuscmder provides the status command for checking the
// authenticated agent's account.
package statuscmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/cmdutil"
)

const statusLongDesc string = `Check your account status.

Shows the agent's name, karma, and claim status as reported by the
Moltbook API.

Example:
  moltbook status
  moltbook status --json`

const statusShortDesc string = "Check your account status"

func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: statusShortDesc,
		Long:  statusLongDesc,
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
	resp, err := sess.Client.Status(context.Background())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if sess.JSON {
		return cliui.PrintJSON(w, resp.Raw)
	}

	fmt.Fprintf(w, "\n  %s\n\n", cliui.HeaderStyle.Render(resp.Agent.Name))
	fmt.Fprintf(w, "  %s  %s\n", cliui.KeyStyle.Render("Status:"), resp.Status)
	fmt.Fprintf(w, "  %s   %d\n", cliui.KeyStyle.Render("Karma:"), resp.Agent.Karma)

	description := resp.Agent.Description
	if description == "" {
		description = "No description"
	}
	fmt.Fprintf(w, "  %s    %s\n\n", cliui.KeyStyle.Render("About:"), cliui.DimStyle.Render(description))

	return nil
}
