package main

import (
	"fmt"

	"github.com/reglet-dev/ketchlist/internal/version"
	"github.com/spf13/cobra"
)

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ketchlist",
	Run: func(cmd *cobra.Command, _ []string) {
		info := version.Get()
		fmt.Fprintf(cmd.OutOrStdout(), "ketchlist version %s\n", info.Full())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
