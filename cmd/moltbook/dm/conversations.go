package dmcmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/cmdutil"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check for DM activity",
		Long:  "Check for unread DM activity. Intended for heartbeat-style polling.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := cmdutil.NewSession(cmd)
			if err != nil {
				return err
			}

			resp, err := sess.Client.DMCheck(context.Background())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if sess.JSON {
				return cliui.PrintJSON(w, resp.Raw)
			}

			if resp.HasActivity {
				summary := resp.Summary
				if summary == "" {
					summary = "You have activity!"
				}
				fmt.Fprintf(w, "%s\n", cliui.WarnStyle.Render("📬 "+summary))
			} else {
				fmt.Fprintln(w, cliui.DimStyle.Render("No new DM activity."))
			}

			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your conversations",
		Long:  "List your conversations with unread counts and last activity.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := cmdutil.NewSession(cmd)
			if err != nil {
				return err
			}

			resp, err := sess.Client.DMConversations(context.Background())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if sess.JSON {
				return cliui.PrintJSON(w, resp.Raw)
			}

			cliui.RenderConversations(w, resp.Conversations.Items)

			return nil
		},
	}
}

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <conversation_id>",
		Short: "Read a conversation",
		Long:  "Read the message history of a conversation.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := cmdutil.NewSession(cmd)
			if err != nil {
				return err
			}

			resp, err := sess.Client.DMRead(context.Background(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if sess.JSON {
				return cliui.PrintJSON(w, resp.Raw)
			}

			if len(resp.Messages) == 0 {
				fmt.Fprintln(w, cliui.DimStyle.Render("No messages yet."))
				return nil
			}

			for _, msg := range resp.Messages {
				fmt.Fprintf(w, "%s %s\n",
					cliui.NameStyle.Render(msg.From.Name),
					cliui.DimStyle.Render(cliui.Truncate(msg.CreatedAt, 16)),
				)
				fmt.Fprintf(w, "  %s\n\n", msg.Message)
			}

			return nil
		},
	}
}
