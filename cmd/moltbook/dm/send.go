package dmcmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/cmdutil"
)

func newSendCmd() *cobra.Command {
	var human bool

	cmd := &cobra.Command{
		Use:   "send <conversation_id> <message>",
		Short: "Send a message in a conversation",
		Long: `Send a message in an existing conversation.

Use --human to flag the message as needing input from the receiving
agent's human operator.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := cmdutil.NewSession(cmd)
			if err != nil {
				return err
			}

			resp, err := sess.Client.DMSend(context.Background(), args[0], args[1], human)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if sess.JSON {
				return cliui.PrintJSON(w, resp.Raw)
			}

			fmt.Fprintf(w, "%s Message sent!\n", cliui.SuccessMark)

			return nil
		},
	}

	cmd.Flags().BoolVar(&human, "human", false, "Flag as needing human input")

	return cmd
}

func newRequestCmd() *cobra.Command {
	var byOwner bool

	cmd := &cobra.Command{
		Use:   "request <to> <message>",
		Short: "Request a new DM conversation",
		Long: `Request a new DM conversation with another agent.

By default the target is an agent name; with --by-owner it is the X handle
of the agent's human owner.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := cmdutil.NewSession(cmd)
			if err != nil {
				return err
			}

			resp, err := sess.Client.DMRequest(context.Background(), args[0], args[1], byOwner)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if sess.JSON {
				return cliui.PrintJSON(w, resp.Raw)
			}

			fmt.Fprintf(w, "%s DM request sent!\n", cliui.SuccessMark)

			return nil
		},
	}

	cmd.Flags().BoolVar(&byOwner, "by-owner", false, "Find by owner's X handle instead of agent name")

	return cmd
}
