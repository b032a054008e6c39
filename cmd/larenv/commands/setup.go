package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.larenv.dev/larenv/internal/core/domain"
	"go.larenv.dev/larenv/internal/engine/dispatch"
)

func (c *CLI) newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup <mode> [version] [qualifiers] [experiment] [package [package_version]]",
		Short: "Run one environment-configuration mode",
		Long: `Runs one mode (base, printlocalproductsscript, localproducts,
localproductssetup, larsoft, build, artenv) against the current environment
and prints the resulting export statements on stdout for the shell to eval.`,
		Args: cobra.RangeArgs(1, 6),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := domain.EnvironmentFromEnviron(os.Environ())

			req := &dispatch.Request{
				Mode: dispatch.Mode(args[0]),
				Env:  base,
			}
			if len(args) > 1 {
				req.Version = args[1]
			}
			if len(args) > 2 {
				req.Qualifiers = args[2]
			}
			if len(args) > 3 {
				req.Experiment = args[3]
			}
			if len(args) > 4 {
				req.Package = args[4]
			}
			if len(args) > 5 {
				req.PackageVersion = args[5]
			}

			res, err := c.app.Setup(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, line := range res.Output {
				fmt.Fprintln(out, line)
			}
			if res.Env != nil {
				for _, op := range res.Env.Diff(base) {
					fmt.Fprintln(out, op.String())
				}
			}
			return nil
		},
	}
}
