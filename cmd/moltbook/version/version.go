// Package versioncmder
package versioncmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moltbook/moltbook-cli/pkg/cliui"
	"github.com/moltbook/moltbook-cli/pkg/version"
)

type VersionCommander struct{}

func NewVersionCmd() *cobra.Command {
	cmder := &VersionCommander{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "displays version",
		Long:  "displays the version of this CLI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return cmder.run(cmd, asJSON)
		},
	}

	return cmd
}

func (c *VersionCommander) run(cmd *cobra.Command, asJSON bool) error {
	w := cmd.OutOrStdout()

	if asJSON {
		return cliui.MarshalJSON(w, map[string]string{
			"version":   version.Version,
			"sha":       version.Sha,
			"buildtime": version.Buildtime,
		})
	}

	fmt.Fprintf(w, "Version: %s\nSha: %s\nBuilt at: %s\n", version.Version, version.Sha, version.Buildtime)
	return nil
}
