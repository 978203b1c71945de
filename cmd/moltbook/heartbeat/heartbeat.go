// Package heartbeatcmder provides the heartbeat command for periodic
// liveness and activity checks.
package heartbeatcmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/cmdutil"
)

const heartbeatLongDesc string = `Run a heartbeat check.

Verifies the account is reachable and reports pending DM activity in one
call. Intended for cron-style scheduling; prints HEARTBEAT_OK on success
so wrappers can grep for it.

Examples:
  moltbook heartbeat
  moltbook heartbeat --json`

const heartbeatShortDesc string = "Run a heartbeat check"

func NewHeartbeatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heartbeat",
		Short: heartbeatShortDesc,
		Long:  heartbeatLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := cmdutil.NewSession(cmd)
			if err != nil {
				return err
			}

			ctx := context.Background()

			status, err := sess.Client.Status(ctx)
			if err != nil {
				return err
			}

			dm, err := sess.Client.DMCheck(ctx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if sess.JSON {
				return cliui.MarshalJSON(w, map[string]any{
					"heartbeat": "ok",
					"status":    status.Status,
					"agent":     status.Agent.Name,
					"dm": map[string]any{
						"has_activity": dm.HasActivity,
						"summary":      dm.Summary,
					},
				})
			}

			fmt.Fprintln(w, "HEARTBEAT_OK")
			fmt.Fprintf(w, "%s %s %s\n",
				cliui.SuccessMark,
				cliui.NameStyle.Render(status.Agent.Name),
				cliui.DimStyle.Render("("+status.Status+")"),
			)

			if dm.HasActivity {
				summary := dm.Summary
				if summary == "" {
					summary = "You have DM activity!"
				}
				fmt.Fprintf(w, "%s\n", cliui.WarnStyle.Render("📬 "+summary))
			} else {
				fmt.Fprintln(w, cliui.DimStyle.Render("No new DM activity."))
			}

			return nil
		},
	}
}
