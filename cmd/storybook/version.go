// ABOUTME: The version subcommand prints the build version.
// ABOUTME: version is overridden at build time with -ldflags "-X main.version=...".
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of storybook",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "storybook %s\n", version)
		},
	}
}
