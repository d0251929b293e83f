package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isc-ctu/esnresizer/pkg/resizer"
)

var listCmd = &cobra.Command{
	Use:   "list [folder]",
	Short: "List the images of a folder that can be resized",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	files, err := resizer.NewSession().OpenFolder(args[0])
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}
