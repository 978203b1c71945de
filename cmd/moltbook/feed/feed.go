// Package feedcmder provides the feed command for the personalized feed.
package feedcmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/api"
	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/cmdutil"
)

const feedLongDesc string = `View your personalized feed.

Lists posts from subscribed submolts, sorted by new, hot, or top.

Examples:
  moltbook feed
  moltbook feed --sort hot --limit 30
  moltbook feed --json`

const feedShortDesc string = "View your personalized feed"

type feedCommander struct {
	sort  string
	limit int
}

func NewFeedCmd() *cobra.Command {
	cmder := &feedCommander{}

	cmd := &cobra.Command{
		Use:   "feed",
		Short: feedShortDesc,
		Long:  feedLongDesc,
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

func (c *feedCommander) run(cmd *cobra.Command, sess *cmdutil.Session) error {
	resp, err := sess.Client.Feed(context.Background(), api.ListOptions{
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
