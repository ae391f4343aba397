package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-effects-mcp/internal/imaging"
)

var applyCmd = &cobra.Command{
	Use:   "apply <effect>",
	Short: "Apply an effect to an image file and write the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().StringP("input", "i", "", "Input image file")
	applyCmd.Flags().StringP("output", "o", "", "Output image file (format from extension)")
	applyCmd.Flags().String("channel", "red", "Channel for offset effects (red, green, blue, r, g, b, 0, 1, 2)")
	applyCmd.Flags().String("channel2", "blue", "Second channel for multiple_offsets")
	applyCmd.Flags().Int("offset", 10, "Pixel offset for offset effects")
	applyCmd.Flags().Int("amount", 30, "Brightness increment (0-255)")
	applyCmd.Flags().Float64("contrast", 0, "Contrast adjustment (-255 to 255)")
	applyCmd.Flags().Int("r", 0, "Red tint offset")
	applyCmd.Flags().Int("g", 0, "Green tint offset")
	applyCmd.Flags().Int("b", 0, "Blue tint offset")
	applyCmd.Flags().Int("strips", 5, "Number of strips")
	applyCmd.Flags().Int("radius", 3, "Kuwahara window size")
	applyCmd.Flags().Bool("corrected", false, "Use corrected behavior for primary and halftone")
	applyCmd.MarkFlagRequired("input")
	applyCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	effect, err := lookupEffect(args[0])
	if err != nil {
		return err
	}

	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	var o effectOptions
	o.channel, _ = cmd.Flags().GetString("channel")
	o.channel2, _ = cmd.Flags().GetString("channel2")
	o.offset, _ = cmd.Flags().GetInt("offset")
	o.amount, _ = cmd.Flags().GetInt("amount")
	o.contrast, _ = cmd.Flags().GetFloat64("contrast")
	o.r, _ = cmd.Flags().GetInt("r")
	o.g, _ = cmd.Flags().GetInt("g")
	o.b, _ = cmd.Flags().GetInt("b")
	o.strips, _ = cmd.Flags().GetInt("strips")
	o.radius, _ = cmd.Flags().GetInt("radius")
	o.corrected, _ = cmd.Flags().GetBool("corrected")

	img, err := imaging.Open(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	if err := effect.apply(img, o); err != nil {
		return fmt.Errorf("%s: %w", effect.name, err)
	}

	if err := imaging.Save(img, outputPath); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Applied %s to %dx%d image\n", effect.name, img.Width, img.Height)
	fmt.Fprintf(cmd.OutOrStdout(), "Input:  %s\n", inputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", outputPath)
	return nil
}
