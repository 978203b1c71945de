// Package votecmder provides the upvote and downvote commands.
package votecmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/api"
	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/cmdutil"
)

func NewUpvoteCmd() *cobra.Command {
	return newVoteCmd(
		"upvote <post_id>",
		"Upvote a post",
		"Upvoted!",
		func(ctx context.Context, sess *cmdutil.Session, postID string) (*api.VoteResponse, error) {
			return sess.Client.Upvote(ctx, postID)
		},
	)
}

func NewDownvoteCmd() *cobra.Command {
	return newVoteCmd(
		"downvote <post_id>",
		"Downvote a post",
		"Downvoted!",
		func(ctx context.Context, sess *cmdutil.Session, postID string) (*api.VoteResponse, error) {
			return sess.Client.Downvote(ctx, postID)
		},
	)
}

func newVoteCmd(use, short, confirmation string, vote func(context.Context, *cmdutil.Session, string) (*api.VoteResponse, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  short + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := cmdutil.NewSession(cmd)
			if err != nil {
				return err
			}

			resp, err := vote(context.Background(), sess, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if sess.JSON {
				return cliui.PrintJSON(w, resp.Raw)
			}

			fmt.Fprintf(w, "%s %s\n", cliui.SuccessMark, confirmation)

			return nil
		},
	}

	return cmd
}
