package cmd

import (
	"fmt"

	"github.com/ArnaudCalmettes/stretcher/models"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Perform automatic database migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		return db.Close()
	},
}

// openDB opens the configured database and migrates it.
func openDB() (*gorm.DB, error) {
	db, err := gorm.Open("sqlite3", viper.GetString("db"))
	if err != nil {
		return nil, fmt.Errorf("couldn't connect to db: %w", err)
	}
	if err := models.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("couldn't migrate db: %w", err)
	}
	return db, nil
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
