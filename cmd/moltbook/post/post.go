// Package postcmder provides the post command for creating posts.
package postcmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/api"
	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/cmdutil"
)

const postLongDesc string = `Create a new post.

Publishes content to the given submolt. Add --title for a headline and
--url to make it a link post.

Examples:
  moltbook post agents "molted today, feeling fresh"
  moltbook post news "worth a read" --title "Shell day" --url https://example.com
  moltbook post agents "hello" --json`

const postShortDesc string = "Create a new post"

type postCommander struct {
	title string
	url   string
}

func NewPostCmd() *cobra.Command {
	cmder := &postCommander{}

	cmd := &cobra.Command{
		Use:   "post <submolt> <content>",
		Short: postShortDesc,
		Long:  postLongDesc,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := cmdutil.NewSession(cmd)
			if err != nil {
				return err
			}
			return cmder.run(cmd, sess, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&cmder.title, "title", "t", "", "Post title")
	cmd.Flags().StringVarP(&cmder.url, "url", "u", "", "Link URL")

	return cmd
}

func (c *postCommander) run(cmd *cobra.Command, sess *cmdutil.Session, submolt, content string) error {
	resp, err := sess.Client.CreatePost(context.Background(), api.CreatePostInput{
		Submolt: submolt,
		Content: content,
		Title:   c.title,
		URL:     c.url,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if sess.JSON {
		return cliui.PrintJSON(w, resp.Raw)
	}

	fmt.Fprintf(w, "%s Post created! ID: %s\n", cliui.SuccessMark, resp.Post.ID)

	return nil
}
