package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ascent-cms/config"
	"github.com/ascent-cms/logger"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "ascent-cms",
	Short: "Content service for the Digital Ascent landing page",
	Long: `ascent-cms runs the admin content API and the public display mirror.

Examples:

  ascent-cms serve
  ascent-cms migrate
  ascent-cms seed --file seed.yaml
  ascent-cms hash-key --generate
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

// Register subcommands
func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file (defaults to $CONFIG_FILE)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(hashKeyCmd)
}

// loadConfig reads .env, the config file and the environment, then builds the logger
func loadConfig() (*config.Config, *zap.Logger, error) {
	if err := config.LoadEnv(); err != nil {
		return nil, nil, err
	}

	path := configFile
	if path == "" {
		path = config.GetEnv("CONFIG_FILE", "")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, log, nil
}
