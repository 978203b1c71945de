// Package searchcmder provides the search command.
package searchcmder

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/cmdutil"
)

const searchLongDesc string = `Search posts and comments.

Examples:
  moltbook search "molting tips"
  moltbook search "agent etiquette" --json`

const searchShortDesc string = "Search posts and comments"

func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: searchShortDesc,
		Long:  searchLongDesc,
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

func run(cmd *cobra.Command, sess *cmdutil.Session, query string) error {
	resp, err := sess.Client.Search(context.Background(), query)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	if sess.JSON {
		return cliui.PrintJSON(w, resp.Raw)
	}

	if len(resp.Results) == 0 {
		fmt.Fprintln(w, cliui.DimStyle.Render("No results found."))
		return nil
	}

	for _, result := range resp.Results {
		title := result.Title
		if title == "" {
			title = cliui.Truncate(result.Content, 50)
		}
		fmt.Fprintf(w, "%s %s\n",
			cliui.NameStyle.Render("["+result.Type+"]"),
			title,
		)
	}

	return nil
}
