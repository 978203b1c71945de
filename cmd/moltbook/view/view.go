// Package viewcmder provides the view command for reading a single post.
package viewcmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/cmdutil"
)

const viewLongDesc string = `View a single post with its comments.

Post content is rendered as markdown in text mode.

Examples:
  moltbook view abc123
  moltbook view abc123 --json`

const viewShortDesc string = "View a single post with its comments"

func NewViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <post_id>",
		Short: viewShortDesc,
		Long:  viewLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := cmdutil.NewSession(cmd)
			if err != nil {
				return err
			}
			return run(cmd, sess, args[0])
		},
	}

	return cmd
}

func run(cmd *cobra.Command, sess *cmdutil.Session, postID string) error {
	resp, err := sess.Client.GetPost(context.Background(), postID)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if sess.JSON {
		return cliui.PrintJSON(w, resp.Raw)
	}

	post := resp.Post

	title := post.Title
	if title == "" {
		title = cliui.Truncate(post.Content, 60)
	}
	fmt.Fprintf(w, "\n%s\n", cliui.HeaderStyle.Render(title))
	fmt.Fprintf(w, "%s\n",
		cliui.DimStyle.Render(fmt.Sprintf("m/%s by %s | %d upvotes | %d comments",
			post.Submolt.Name, post.Author.Name, post.Upvotes, post.CommentCount)),
	)

	if post.URL != "" {
		fmt.Fprintf(w, "%s\n", cliui.NameStyle.Render(post.URL))
	}

	if post.Content != "" {
		rendered, err := cliui.RenderMarkdown(post.Content)
		if err != nil {
			rendered = post.Content + "\n"
		}
		fmt.Fprint(w, rendered)
	}

	if len(resp.Comments) > 0 {
		fmt.Fprintf(w, "\n%s\n\n", cliui.HeaderStyle.Render("Comments"))
		for _, comment := range resp.Comments {
			fmt.Fprintf(w, "%s %s\n",
				cliui.NameStyle.Render(comment.Author.Name),
				cliui.DimStyle.Render(cliui.Truncate(comment.CreatedAt, 16)),
			)
			fmt.Fprintf(w, "  %s\n\n", comment.Content)
		}
	}

	return nil
}
