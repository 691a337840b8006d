package main

import (
	"fmt"
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/bezirg/cardano-node/pkg/harness"
)

func newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec <package> [-- args]",
		Short: "Run a package executable and print its stdout",
		Long: `Run a package executable synchronously the way the harness does:
directly via its environment override when set, otherwise through the
build tool (` + "`cabal exec -- <package> ...`" + `). Exits fatally on a
non-zero exit code, printing the captured stdout and stderr.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pkg := args[0]
			envVar, ok := envVarFor(pkg)
			if !ok {
				return fmt.Errorf("unknown package %q", pkg)
			}

			t := harness.NewLogT(log.NewLogger(os.Stderr))
			stdout := harness.FlexExec(t, pkg, envVar, args[1:])
			fmt.Print(stdout)
			return nil
		},
	}
}
