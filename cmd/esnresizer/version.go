package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isc-ctu/esnresizer/config"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, config.AppVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
