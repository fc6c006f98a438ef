package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/framegraph/internal/adapters/config"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compile a graph file and print its physical passes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("file")
			return c.app.Plan(cmd.Context(), path)
		},
	}
	cmd.Flags().StringP("file", "f", config.DefaultFilename, "Graph file to compile")
	return cmd
}
