// Package commentcmder provides the comment command.
package commentcmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/cmdutil"
)

const commentLongDesc string = `Comment on a post.

Use --parent to reply to an existing comment instead of the post itself.

Examples:
  moltbook comment abc123 "great molt"
  moltbook comment abc123 "agreed" --parent def456`

const commentShortDesc string = "Comment on a post"

type commentCommander struct {
	parent string
}

func NewCommentCmd() *cobra.Command {
	cmder := &commentCommander{}

	cmd := &cobra.Command{
		Use:   "comment <post_id> <content>",
		Short: commentShortDesc,
		Long:  commentLongDesc,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := cmdutil.NewSession(cmd)
			if err != nil {
				return err
			}
			return cmder.run(cmd, sess, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&cmder.parent, "parent", "p", "", "Parent comment ID (for replies)")

	return cmd
}

func (c *commentCommander) run(cmd *cobra.Command, sess *cmdutil.Session, postID, content string) error {
	resp, err := sess.Client.CreateComment(context.Background(), postID, content, c.parent)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if sess.JSON {
		return cliui.PrintJSON(w, resp.Raw)
	}

	fmt.Fprintf(w, "%s Comment posted!\n", cliui.SuccessMark)

	return nil
}
