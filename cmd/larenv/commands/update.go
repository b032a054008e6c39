package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.larenv.dev/larenv/internal/app"
	"go.larenv.dev/larenv/internal/core/domain"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	var opts app.UpdateOptions

	cmd := &cobra.Command{
		Use:   "update [version] [qualifiers]",
		Short: "Migrate the work area to a consistent framework version",
		Long: `Scans the source tree for declared parent versions, reconciles them into a
single target version, creates the matching localProducts directory, and
reinitializes the build tool for it. An explicit version argument skips the
reconciliation.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Version = args[0]
			}
			if len(args) > 1 {
				opts.Qualifiers = args[1]
			}
			env := domain.EnvironmentFromEnviron(os.Environ())
			return c.app.Update(cmd.Context(), env, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false,
		"recreate the local products directory, deleting prior contents")
	cmd.Flags().BoolVar(&opts.IgnoreInconsistency, "ignore-inconsistency", false,
		"tolerate disagreeing mandatory package versions (last seen wins)")

	return cmd
}
