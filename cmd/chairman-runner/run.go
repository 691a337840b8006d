package main

import (
	"os"
	"strings"
	"time"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/bezirg/cardano-node/internal/output"
	"github.com/bezirg/cardano-node/internal/paths"
	"github.com/bezirg/cardano-node/pkg/harness"
)

func newRunCmd() *cobra.Command {
	var (
		timeoutSeconds int
		nodeArgs       []string
		stopGrace      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run [flags] -- [chairman args]",
		Short: "Launch nodes and the chairman, wait for the verdict",
		Long: `Launch a cardano-node (optionally, per --node-args) and the chairman
monitor, then wait up to the timeout for the chairman to exit. The
runner exits with the chairman's exit code, or 1 on timeout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The config file only supplies the timeout when the flag was
			// not given; flag registration happens before config loading.
			if !cmd.Flags().Changed("timeout") {
				timeoutSeconds = cfg.TimeoutSeconds
			}

			logger := log.NewLogger(os.Stderr)
			t := harness.NewLogT(logger)

			resolver := &harness.Resolver{PlanPath: paths.PlanPath(cfg.BaseDir)}

			// Nodes are optional: a chairman can be pointed at already
			// running sockets via its own arguments.
			var nodes []*harness.Process
			for _, nodeArg := range nodeArgs {
				bin := resolver.Resolve(t, harness.NodePackage, harness.NodeEnv, splitArgs(nodeArg))
				spec := harness.Command(bin)
				spec.Stdout = harness.StreamDiscard
				spec.Stderr = harness.StreamInherit
				node, err := harness.Launch(t, spec)
				if err != nil {
					return err
				}
				defer node.Release()
				nodes = append(nodes, node)
				output.DefaultLogger.Verbose("started node %s (pid %d)", node.ID, node.Pid())
			}

			chairmanBin := resolver.Resolve(t, harness.ChairmanPackage, harness.ChairmanEnv, args)
			spec := harness.Command(chairmanBin)
			spec.Stdout = harness.StreamInherit
			spec.Stderr = harness.StreamInherit
			chairman, err := harness.Launch(t, spec)
			if err != nil {
				return err
			}
			defer chairman.Release()

			outcome := chairman.WaitSeconds(t, timeoutSeconds)

			for _, node := range nodes {
				node.Stop(stopGrace)
			}

			code, ok := outcome.ExitCode()
			switch {
			case outcome.Kind == harness.TimedOut:
				chairman.Stop(stopGrace)
				output.DefaultLogger.Error("chairman timed out after %ds", timeoutSeconds)
				os.Exit(1)
			case !ok:
				output.DefaultLogger.Error("chairman terminated without an exit code")
				os.Exit(1)
			case code != 0:
				output.DefaultLogger.Error("chairman reported failure (exit %d)", code)
				os.Exit(code)
			}
			output.DefaultLogger.Success("chairman passed")
			return nil
		},
	}

	cmd.Flags().IntVar(&timeoutSeconds, "timeout", cfg.TimeoutSeconds,
		"Seconds to wait for the chairman to exit")
	cmd.Flags().StringArrayVar(&nodeArgs, "node-args", nil,
		"Argument string for a cardano-node to launch (repeatable)")
	cmd.Flags().DurationVar(&stopGrace, "stop-grace", 5*time.Second,
		"Grace period between SIGTERM and SIGKILL when stopping nodes")

	return cmd
}

// splitArgs breaks a --node-args value on whitespace. Arguments with
// embedded spaces are not supported here; pass them via the environment
// override binaries instead.
func splitArgs(s string) []string {
	return strings.Fields(s)
}
