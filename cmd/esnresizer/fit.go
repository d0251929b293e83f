package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/isc-ctu/esnresizer/config"
	"github.com/isc-ctu/esnresizer/pkg/gallery"
	"github.com/isc-ctu/esnresizer/pkg/resizer"
)

var fitCmd = &cobra.Command{
	Use:   "fit [image]",
	Short: "Write the banner of an image next to it",
	Long: "Fit the image onto the white 1920x460 banner and save it as\n" +
		"<name>" + config.OutputSuffix + ".<ext>, or .jpg with --jpg.",
	Args: cobra.ExactArgs(1),
	RunE: runFit,
}

func init() {
	fitCmd.Flags().Bool("jpg", false, "Always save as JPEG")
	fitCmd.Flags().IntP("quality", "q", config.DefaultJPEGQuality, "JPEG quality (1-100)")
	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, args []string) error {
	asJPEG, _ := cmd.Flags().GetBool("jpg")
	quality, _ := cmd.Flags().GetInt("quality")

	if quality < 1 || quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", quality)
	}

	mode := gallery.SaveOriginal
	if asJPEG {
		mode = gallery.SaveJPEG
	}

	out, err := resizer.NewSession(resizer.WithJPEGQuality(quality)).FitFile(args[0], mode)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
