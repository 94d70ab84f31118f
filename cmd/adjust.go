package cmd

import (
	"github.com/ArnaudCalmettes/stretcher/imp"
	"github.com/spf13/cobra"
)

var stretchColor bool

// stretchCmd represents the stretch command
var stretchCmd = &cobra.Command{
	Use:   "stretch <in> <out>",
	Short: "Stretch the histogram of an image to the whole [0, 255] range",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := imp.ReadFile(args[0])
		if err != nil {
			return err
		}
		if stretchColor {
			return imp.Save(args[1], imp.StretchColor(img))
		}
		return imp.Save(args[1], imp.Normalize(imp.ToGray(img)))
	},
}

var brightenOpts struct {
	offset int
	policy string
	diff   string
}

// brightenCmd represents the brighten command
var brightenCmd = &cobra.Command{
	Use:   "brighten <in> <out>",
	Short: "Add an offset to every sample of a grayscale image",
	Long: `Add an offset to every sample of a grayscale image. The overflow policy
must be given explicitly: "wrap" lets samples wrap around modulo 256, "saturate"
clamps them to [0, 255].`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := imp.ParseOverflow(brightenOpts.policy)
		if err != nil {
			return err
		}
		img, err := imp.ReadFile(args[0])
		if err != nil {
			return err
		}
		gray := imp.ToGray(img)
		bright, err := imp.Brighten(gray, brightenOpts.offset, policy)
		if err != nil {
			return err
		}
		if err := imp.Save(args[1], bright); err != nil {
			return err
		}
		if brightenOpts.diff == "" {
			return nil
		}

		// Compare with the other policy
		other := imp.Wrap
		if policy == imp.Wrap {
			other = imp.Saturate
		}
		alt, err := imp.Brighten(gray, brightenOpts.offset, other)
		if err != nil {
			return err
		}
		diff, err := imp.AbsDiff(bright, alt)
		if err != nil {
			return err
		}
		return imp.Save(brightenOpts.diff, diff)
	},
}

func init() {
	rootCmd.AddCommand(stretchCmd)
	rootCmd.AddCommand(brightenCmd)

	stretchCmd.Flags().BoolVar(&stretchColor, "color", false, "stretch each color channel instead of the luma")

	brightenCmd.Flags().IntVarP(&brightenOpts.offset, "offset", "b", 0, "value added to every sample")
	brightenCmd.Flags().StringVarP(&brightenOpts.policy, "policy", "p", "", "overflow policy: wrap or saturate")
	brightenCmd.Flags().StringVar(&brightenOpts.diff, "diff", "", "also save |wrap - saturate| to this file")
	brightenCmd.MarkFlagRequired("policy")
}
