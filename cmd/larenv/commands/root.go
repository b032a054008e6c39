// Package commands implements the CLI commands for the larenv tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.larenv.dev/larenv/internal/app"
)

// CLI represents the command line interface for larenv.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:   "larenv",
		Short: "Work-area environment tooling for UPS/MRB software trees",
		Long: `larenv reconciles and configures LArSoft-style work areas.

The setup subcommand prints export statements on stdout; wrap it in an eval:

    eval "$(larenv setup base '' '' uboone)"`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newSetupCmd())
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

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
