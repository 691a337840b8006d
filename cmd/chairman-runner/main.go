// Command chairman-runner drives the chairman test harness outside of
// `go test`: it resolves the node, cli and chairman binaries, launches
// them, and enforces the run timeout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bezirg/cardano-node/internal/config"
	"github.com/bezirg/cardano-node/internal/output"
	"github.com/bezirg/cardano-node/pkg/harness"
)

// Flag bindings shared by the subcommands.
var (
	configPath string
	noColor    bool
	verbose    bool

	cfg = config.Default()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chairman-runner",
		Short: "Run the cardano-node chairman against a set of nodes",
		Long: `chairman-runner launches cardano-node processes and the chairman
monitor that checks them for consensus, with binary resolution and
timeout handling shared with the integration-test harness.

Binaries are resolved from the CARDANO_NODE, CARDANO_CLI and
CARDANO_NODE_CHAIRMAN environment variables when set, falling back to
the cabal build plan under the project base directory.`,
		PersistentPreRunE: persistentPreRunE,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to chairman.toml")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose logging")

	rootCmd.AddCommand(
		newRunCmd(),
		newResolveCmd(),
		newExecCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// persistentPreRunE loads chairman.toml and applies global settings.
// Priority: defaults < chairman.toml < flags.
func persistentPreRunE(cmd *cobra.Command, args []string) error {
	path := configPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultFileName
	}

	fileCfg, err := config.Load(path, explicit)
	if err != nil {
		return err
	}
	cfg.Apply(fileCfg)

	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = noColor
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}

	output.DefaultLogger.SetNoColor(cfg.NoColor)
	output.DefaultLogger.SetVerbose(cfg.Verbose)
	harness.DefaultBuildTool = cfg.BuildTool
	return nil
}
