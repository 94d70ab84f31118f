package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ArnaudCalmettes/stretcher/chart"
	"github.com/ArnaudCalmettes/stretcher/imp"
	"github.com/spf13/cobra"
)

func printStats(w io.Writer, title string, s imp.Stats) {
	fmt.Fprintf(w, "=== %s ===\n", title)
	fmt.Fprintf(w, "Minimum pixel value: %d\n", s.Min)
	fmt.Fprintf(w, "Maximum pixel value: %d\n", s.Max)
	fmt.Fprintf(w, "Mean pixel value: %.2f\n", s.Mean)
	if s.Flat {
		fmt.Fprintln(w, "Cannot compute stretch factor (max equals min)")
	} else {
		fmt.Fprintf(w, "Stretch factor (255/(max-min)): %.4f\n", s.StretchFactor)
	}
}

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats <image>...",
	Short: "Print the range and mean of grayscale images",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, filename := range args {
			img, err := imp.ReadFile(filename)
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), filename, imp.ComputeStats(imp.ToGray(img)))
		}
		return nil
	},
}

var histogramPlot string

// histogramCmd represents the histogram command
var histogramCmd = &cobra.Command{
	Use:   "histogram <image>",
	Short: "Print (or plot) the histogram of a grayscale image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := imp.ReadFile(args[0])
		if err != nil {
			return err
		}
		h := imp.ComputeHistogram(imp.ToGray(img))

		if histogramPlot != "" {
			p, err := chart.Histogram(args[0], h, chart.Gray)
			if err != nil {
				return err
			}
			return chart.Save(histogramPlot, p)
		}

		var b strings.Builder
		w := tabwriter.NewWriter(&b, 5, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "VALUE\tCOUNT\t")
		for v, n := range h {
			if n != 0 {
				fmt.Fprintf(w, "%d\t%d\t\n", v, n)
			}
		}
		w.Flush()
		fmt.Fprint(cmd.OutOrStdout(), b.String())
		fmt.Fprintf(cmd.OutOrStdout(), "total: %d\n", h.Total())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(histogramCmd)

	histogramCmd.Flags().StringVarP(&histogramPlot, "plot", "p", "", "save a bar chart to this file instead of printing")
}
