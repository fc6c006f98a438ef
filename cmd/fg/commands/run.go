package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/framegraph/internal/adapters/cas"
	"go.trai.ch/framegraph/internal/adapters/config"
	"go.trai.ch/framegraph/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Process frames of a graph file and report resource reuse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("file")
			frames, _ := cmd.Flags().GetInt("frames")
			watch, _ := cmd.Flags().GetBool("watch")
			cacheDir, _ := cmd.Flags().GetString("cache-dir")
			asJSON, _ := cmd.Flags().GetBool("json")

			return c.app.Run(cmd.Context(), app.RunOptions{
				Path:     path,
				Frames:   frames,
				Watch:    watch,
				CacheDir: cacheDir,
				JSON:     asJSON,
			})
		},
	}
	cmd.Flags().StringP("file", "f", config.DefaultFilename, "Graph file to run")
	cmd.Flags().IntP("frames", "n", app.DefaultFrames, "Number of frames to process")
	cmd.Flags().BoolP("watch", "w", false, "Rerun whenever the graph file changes")
	cmd.Flags().String("cache-dir", "", "Pipeline cache directory (overrides "+cas.DirEnv+")")
	cmd.Flags().Bool("json", false, "Print the report as JSON")
	return cmd
}
