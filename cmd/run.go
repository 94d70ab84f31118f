package cmd

import (
	"github.com/ArnaudCalmettes/stretcher/bot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var token string

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the Discord bot.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		if token != "" {
			viper.Set("bot.token", token)
		}
		return bot.Run(db)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&token, "token", "t", "", "discord token")
	runCmd.Flags().String("prefix", bot.DefaultPrefix, "command prefix")
	viper.BindPFlag("bot.prefix", runCmd.Flags().Lookup("prefix"))
}
