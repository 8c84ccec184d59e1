package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ascent-cms/database"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create content entries from a YAML file",
	Long: `Create content entries from a YAML file keyed by collection slug.

Example file:

  hero-stats:
    - value: "50+"
      label: Projects
  team:
    - name: Sam
      role: Engineer
      bio: Builds things
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := database.LoadSeed(seedFile)
		if err != nil {
			return err
		}

		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		defer log.Sync()

		a, err := newApp(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer a.Close()

		var importers []database.Importer
		for _, c := range a.content.Collections() {
			importers = append(importers, c)
		}

		created, err := database.Seed(cmd.Context(), seed, importers, log)
		if err != nil {
			color.New(color.FgYellow).Printf("⚠️  %d entries created before the failure\n", created)
			return fmt.Errorf("seed failed: %w", err)
		}
		color.New(color.FgGreen, color.Bold).Printf("✅ Seeded %d entries\n", created)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "seed.yaml", "YAML seed file (see seed.example.yaml)")
}
