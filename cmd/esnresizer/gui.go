package main

import (
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/isc-ctu/esnresizer/config"
	"github.com/isc-ctu/esnresizer/ui"
)

var guiCmd = &cobra.Command{
	Use:   "gui [folder]",
	Short: "Open the resizer window, optionally on a folder",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGUI,
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

func runGUI(cmd *cobra.Command, args []string) error {
	ra := ui.NewResizerApp(app.NewWithID(config.AppID))
	if len(args) == 1 {
		ra.OpenFolder(args[0])
	}
	ra.Run()
	return nil
}
