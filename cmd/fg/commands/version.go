package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/framegraph/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "fg version %s\n", build.Version)
			if long, _ := cmd.Flags().GetBool("long"); long {
				_, _ = fmt.Fprintf(out, "commit: %s\nbuilt:  %s\n", build.Commit, build.Date)
			}
		},
	}
	cmd.Flags().BoolP("long", "l", false, "Also print the commit and build date")
	return cmd
}
