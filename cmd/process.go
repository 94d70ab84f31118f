package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ArnaudCalmettes/stretcher/imp"
	"github.com/ArnaudCalmettes/stretcher/models"
	"github.com/ArnaudCalmettes/stretcher/process"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var processOpts struct {
	offset int
	policy string
}

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <kind> <image>",
	Short: "Run a processing pipeline and save its images and histograms",
	Long: `Run a processing pipeline on an image. Available kinds:

  channels    RGB color channels separation
  gray        grayscale conversion
  stretch     grayscale with histogram stretching
  color       color histogram stretching
  brighten    grayscale brightening (needs --offset and --policy)
  histogram   grayscale histogram

Output images and histogram charts are written to --out.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := process.Lookup(args[0])
		if err != nil {
			return err
		}
		opts := process.Options{Offset: processOpts.offset}
		if kind == process.Brighten {
			if opts.Policy, err = imp.ParseOverflow(processOpts.policy); err != nil {
				return err
			}
		}

		img, err := imp.ReadFile(args[1])
		if err != nil {
			return err
		}
		res, err := process.Run(context.Background(), kind, img, opts)
		if err != nil {
			return err
		}

		dir := viper.GetString("output.dir")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, o := range res.Outputs {
			filename := filepath.Join(dir, o.Name)
			if err := imp.Save(filename, o.Image); err != nil {
				return err
			}
			fmt.Fprintln(out, filename)
		}
		for _, c := range res.Charts {
			filename := filepath.Join(dir, c.Name)
			if err := os.WriteFile(filename, c.PNG, 0644); err != nil {
				return err
			}
			fmt.Fprintln(out, filename)
		}
		printStats(out, "before", res.Before)
		printStats(out, "after", res.After)

		return recordJob(args[1], res)
	},
}

// recordJob adds a command line job to the history.
func recordJob(source string, res *process.Result) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	j := models.Job{
		UUID:       res.ID.String(),
		Kind:       string(res.Kind),
		Source:     filepath.Base(source),
		Width:      res.Bounds.Dx(),
		Height:     res.Bounds.Dy(),
		MinBefore:  int(res.Before.Min),
		MaxBefore:  int(res.Before.Max),
		MeanBefore: res.Before.Mean,
		MinAfter:   int(res.After.Min),
		MaxAfter:   int(res.After.Max),
		MeanAfter:  res.After.Mean,
	}
	return j.Create(db)
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().IntVar(&processOpts.offset, "offset", 0, "offset added by brighten")
	processCmd.Flags().StringVar(&processOpts.policy, "policy", "", "overflow policy of brighten (wrap or saturate)")
	processCmd.Flags().StringP("out", "o", ".", "output directory")
	viper.BindPFlag("output.dir", processCmd.Flags().Lookup("out"))
}
