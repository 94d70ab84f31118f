package cmd

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "stretcher",
	Short: "Stretch, brighten and inspect 8-bit images",
	Long: `stretcher maps the darkest sample of an image to 0 and the brightest to 255,
brightens images with an explicit overflow policy (wrap or saturate), and prints
or plots their histograms.

Every command works on local files. "stretcher run" serves the same pipelines
to Discord users who attach images to their messages.

Settings are read from flags, then STRETCHER_* environment variables (for
instance STRETCHER_BOT_TOKEN), then the YAML config file.`,
	SilenceUsage: true,
}

// Execute runs the command line and exits with status 1 on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "YAML config file (default $HOME/.stretcher.yaml)")
	rootCmd.PersistentFlags().String("db", "stretcher.sqlite", "SQLite file holding the job history")
	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
}

// loadConfig points viper at the config file and the environment. A missing
// config file is not an error.
func loadConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "can't locate home directory:", err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".stretcher")
	}

	// bot.max_size is read from STRETCHER_BOT_MAX_SIZE
	viper.SetEnvPrefix("STRETCHER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	switch err.(type) {
	case nil:
		fmt.Fprintln(os.Stderr, "config:", viper.ConfigFileUsed())
	case viper.ConfigFileNotFoundError:
	default:
		if cfgFile != "" {
			fmt.Fprintln(os.Stderr, "config:", err)
		}
	}
}
