package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ascent-cms/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the content tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := openDatabase(cfg, log)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.Migrate(db, log); err != nil {
			return err
		}
		color.New(color.FgGreen, color.Bold).Printf("✅ Migrated %d tables\n", len(database.Models()))
		return nil
	},
}
