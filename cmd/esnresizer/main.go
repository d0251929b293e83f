package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/isc-ctu/esnresizer/config"
)

var rootCmd = &cobra.Command{
	Use:           "esnresizer",
	Short:         "Fit pictures onto the 1920x460 activities.esn.org banner",
	Long:          config.WindowTitle + ". Without a command the window is opened.",
	Args:          cobra.NoArgs,
	RunE:          runGUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
