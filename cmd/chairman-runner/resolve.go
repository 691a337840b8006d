package main

import (
	"fmt"
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/bezirg/cardano-node/internal/output"
	"github.com/bezirg/cardano-node/internal/paths"
	"github.com/bezirg/cardano-node/pkg/harness"
)

// envVarFor maps the known harness packages to their override variables.
func envVarFor(pkg string) (string, bool) {
	switch pkg {
	case harness.CliPackage:
		return harness.CliEnv, true
	case harness.NodePackage:
		return harness.NodeEnv, true
	case harness.ChairmanPackage:
		return harness.ChairmanEnv, true
	}
	return "", false
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <package>",
		Short: "Print the resolved binary path for a package",
		Long: `Print the executable path that the harness would use for a package:
the environment-variable override when set, otherwise the bin-file
recorded in the cabal build plan.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{harness.CliPackage, harness.NodePackage, harness.ChairmanPackage},
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := args[0]
			envVar, ok := envVarFor(pkg)
			if !ok {
				return fmt.Errorf("unknown package %q", pkg)
			}

			t := harness.NewLogT(log.NewLogger(os.Stderr))
			resolver := &harness.Resolver{PlanPath: paths.PlanPath(cfg.BaseDir)}
			bin := resolver.Resolve(t, pkg, envVar, nil)

			output.DefaultLogger.Verbose("resolved %s via plan %s", pkg, resolver.PlanPath)
			output.DefaultLogger.Info("%s", bin.Path)
			return nil
		},
	}
}
