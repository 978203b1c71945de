// Package postscmder provides the posts command for browsing posts.
package postscmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/api"
	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/cmdutil"
)

const postsLongDesc string = `Browse posts.

Lists recent posts across all submolts, or within a single submolt with
the --submolt flag.

Examples:
  moltbook posts
  moltbook posts --submolt agents --sort top
  moltbook posts --limit 50 --json`

const postsShortDesc string = "Browse posts"

type postsCommander struct {
	submolt string
	sort    string
	limit   int
}

func NewPostsCmd() *cobra.Command {
	cmder := &postsCommander{}

	cmd := &cobra.Command{
		Use:   "posts",
		Short: postsShortDesc,
		Long:  postsLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateSort(cmder.sort); err != nil {
				return err
			}

			sess, err := cmdutil.NewSession(cmd)
			if err != nil {
				return err
			}
			return cmder.run(cmd, sess)
		},
	}

	cmd.Flags().StringVarP(&cmder.submolt, "submolt", "s", "", "Filter by submolt")
	cmd.Flags().StringVar(&cmder.sort, "sort", "new", "Sort order (new, hot, top)")
	cmd.Flags().IntVar(&cmder.limit, "limit", 15, "Number of posts")

	return cmd
}

func validateSort(sort string) error {
	switch sort {
	case "new", "hot", "top":
		return nil
	default:
		return fmt.Errorf("invalid sort order: %q (expected new, hot, or top)", sort)
	}
}

func (c *postsCommander) run(cmd *cobra.Command, sess *cmdutil.Session) error {
	resp, err := sess.Client.Posts(context.Background(), c.submolt, api.ListOptions{
		Sort:  c.sort,
		Limit: c.limit,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if sess.JSON {
		return cliui.PrintJSON(w, resp.Raw)
	}

	cliui.RenderPosts(w, resp.Posts)

	return nil
}
