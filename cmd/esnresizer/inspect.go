package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isc-ctu/esnresizer/pkg/fitter"
	"github.com/isc-ctu/esnresizer/pkg/imageio"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [image]",
	Short: "Show where an image would land on the banner",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	width, height, err := imageio.DecodeConfig(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	g, err := fitter.ComputeGeometry(width, height)
	if err != nil {
		return fmt.Errorf("placing %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:       %s\n", path)
	fmt.Fprintf(out, "Dimensions: %d x %d\n", width, height)
	fmt.Fprintf(out, "Scale:      %.4f\n", g.Scale)
	fmt.Fprintf(out, "Content:    %d x %d\n", g.ContentWidth, g.ContentHeight)
	fmt.Fprintf(out, "Offset:     %d, %d\n", g.XStart, g.YStart)
	fmt.Fprintf(out, "Saveable:   %t\n", imageio.CanEncode(path))
	return nil
}
