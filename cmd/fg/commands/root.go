// Package commands implements the CLI commands for fg.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/framegraph/internal/app"
	"go.trai.ch/framegraph/internal/build"
)

// CLI represents the command line interface for fg.
type CLI struct {
	app     Application
	log     LogSettings
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Plan(ctx context.Context, path string) error
	Run(ctx context.Context, opts app.RunOptions) error
}

// LogSettings is implemented by loggers whose format and level can be switched from flags.
type LogSettings interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// New creates a new CLI instance with the given app. log may be nil.
func New(a Application, log LogSettings) *CLI {
	rootCmd := &cobra.Command{
		Use:           "fg",
		Short:         "Plan and run frame graphs on a headless device",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("verbose", false, "Log debug output, including trace spans")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		log:     log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.log == nil {
			return
		}
		// Unset flags keep whatever the environment configured.
		if cmd.Flags().Changed("verbose") {
			verbose, _ := cmd.Flags().GetBool("verbose")
			c.log.SetVerbose(verbose)
		}
		if cmd.Flags().Changed("log-json") {
			asJSON, _ := cmd.Flags().GetBool("log-json")
			c.log.SetJSON(asJSON)
		}
	}

	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
