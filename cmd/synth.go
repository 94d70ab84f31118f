package cmd

import (
	"github.com/ArnaudCalmettes/stretcher/imp"
	"github.com/spf13/cobra"
)

var size struct {
	height int
	width  int
}

// gradientCmd represents the gradient command
var gradientCmd = &cobra.Command{
	Use:   "gradient <out>",
	Short: "Create a diagonal gradient going from black to white",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return imp.Save(args[0], imp.Gradient(size.height, size.width))
	},
}

var lowContrast struct {
	fg, bg   uint8
	outliers bool
}

// lowContrastCmd represents the lowcontrast command
var lowContrastCmd = &cobra.Command{
	Use:   "lowcontrast <out>",
	Short: "Create a disc on a background of similar intensity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img := imp.LowContrast(lowContrast.fg, lowContrast.bg, size.height, size.width)
		if lowContrast.outliers {
			img = imp.WithOutliers(img)
		}
		return imp.Save(args[0], img)
	},
}

func init() {
	rootCmd.AddCommand(gradientCmd)
	rootCmd.AddCommand(lowContrastCmd)

	for _, c := range []*cobra.Command{gradientCmd, lowContrastCmd} {
		c.Flags().IntVar(&size.height, "height", 255, "image height")
		c.Flags().IntVar(&size.width, "width", 255, "image width")
	}
	lowContrastCmd.Flags().Uint8Var(&lowContrast.fg, "fg", 105, "disc intensity")
	lowContrastCmd.Flags().Uint8Var(&lowContrast.bg, "bg", 100, "background intensity")
	lowContrastCmd.Flags().BoolVar(&lowContrast.outliers, "outliers", false, "add one black and one white sample")
}
