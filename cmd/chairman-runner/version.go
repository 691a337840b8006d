package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bezirg/cardano-node/internal"
)

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := internal.GetBuildInfo()
			if short {
				fmt.Println(info.Version)
				return
			}
			fmt.Printf("chairman-runner %s\n", info.Version)
			fmt.Printf("  git commit: %s\n", info.GitCommit)
			fmt.Printf("  build date: %s\n", info.BuildDate)
			fmt.Printf("  go version: %s\n", runtime.Version())
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}
