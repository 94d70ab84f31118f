package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/ArnaudCalmettes/stretcher/models"
	"github.com/spf13/cobra"
)

var jobsLimit int
var jobsScope models.Scope

// jobsCmd represents the jobs command
var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List processed images",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		jobs, err := models.ListJobs(db, jobsScope, jobsLimit)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 5, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tKIND\tSOURCE\tSIZE\tBEFORE\tAFTER\tDATE\t")
		for _, j := range jobs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t[%d,%d]\t[%d,%d]\t%s\t\n",
				j.ShortID(), j.Kind, j.Source, j.Width, j.Height,
				j.MinBefore, j.MaxBefore, j.MinAfter, j.MaxAfter,
				j.CreatedAt.Format("2006-01-02 15:04"),
			)
		}
		return w.Flush()
	},
}

// jobsRemoveCmd represents the jobs remove command
var jobsRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a processed image from the history",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		j, err := models.FindJob(db, jobsScope, args[0])
		if err != nil {
			return fmt.Errorf("no such job (%q): %w", args[0], err)
		}
		return j.Delete(db)
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
	jobsCmd.AddCommand(jobsRemoveCmd)

	jobsCmd.PersistentFlags().StringVar(&jobsScope.GuildID, "guild", "", "Discord guild ID (default: command line jobs)")
	jobsCmd.PersistentFlags().StringVar(&jobsScope.ChannelID, "channel", "", "Discord direct message channel ID")
	jobsCmd.Flags().IntVarP(&jobsLimit, "limit", "n", 20, "maximum number of jobs to list (0 for all)")
}
