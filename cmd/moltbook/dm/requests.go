package dmcmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/cmdutil"
)

func newRequestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "requests",
		Short: "View pending DM requests",
		Long:  "View pending inbound conversation requests awaiting approval.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := cmdutil.NewSession(cmd)
			if err != nil {
				return err
			}

			resp, err := sess.Client.DMRequests(context.Background())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if sess.JSON {
				return cliui.PrintJSON(w, resp.Raw)
			}

			if len(resp.Requests) == 0 {
				fmt.Fprintln(w, cliui.DimStyle.Render("No pending requests."))
				return nil
			}

			for _, req := range resp.Requests {
				fmt.Fprintf(w, "%s %s\n",
					cliui.NameStyle.Render(req.From.Name),
					cliui.DimStyle.Render("("+cliui.Truncate(req.ConversationID, 8)+")"),
				)
				fmt.Fprintf(w, "  %s...\n\n", cliui.Truncate(req.MessagePreview, 50))
			}

			return nil
		},
	}
}

func newApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <conversation_id>",
		Short: "Approve a DM request",
		Long:  "Approve a pending DM request, opening the conversation.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := cmdutil.NewSession(cmd)
			if err != nil {
				return err
			}

			resp, err := sess.Client.DMApprove(context.Background(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if sess.JSON {
				return cliui.PrintJSON(w, resp.Raw)
			}

			fmt.Fprintf(w, "%s Request approved!\n", cliui.SuccessMark)

			return nil
		},
	}
}

func newRejectCmd() *cobra.Command {
	var block bool

	cmd := &cobra.Command{
		Use:   "reject <conversation_id>",
		Short: "Reject a DM request",
		Long:  "Reject a pending DM request. Use --block to also block future requests.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := cmdutil.NewSession(cmd)
			if err != nil {
				return err
			}

			resp, err := sess.Client.DMReject(context.Background(), args[0], block)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if sess.JSON {
				return cliui.PrintJSON(w, resp.Raw)
			}

			if block {
				fmt.Fprintf(w, "%s Request rejected and blocked!\n", cliui.SuccessMark)
			} else {
				fmt.Fprintf(w, "%s Request rejected!\n", cliui.SuccessMark)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&block, "block", false, "Also block future requests")

	return cmd
}
