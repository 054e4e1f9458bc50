// Package cli implements the command-line interface for lettercube.
package cli

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/lettercube/internal/config"
	"github.com/SeamusWaldron/lettercube/internal/logger"
)

const version = "0.2.0"

var (
	// Global flags
	cfgPath  string
	dbPath   string
	verbose  bool
	jsonLogs bool

	cfg *config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "lettercube",
	Short: "Blindfold lettering trainer",
	Long: `lettercube - A CLI tool for building and drilling a blindfold lettering scheme.

Assign a letter to every sticker of a 3x3 cube, hold the cube in any
orientation, and quiz yourself on single stickers, edges or corners.
Letters are stored per logical position, so they follow the way you hold
the cube rather than the physical colors.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default: ~/.lettercube/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.lettercube/lettercube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Write logs as JSON")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	cfg = loaded

	level := logger.ParseLevel(cfg.Log.Level)
	if verbose {
		level = logger.ParseLevel("debug")
	}
	if err := logger.InitializeLevel(jsonLogs || cfg.Log.JSON, level); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	logger.Component("cli").Debugw("config loaded", "command", cmd.Name(), "scheme", cfg.Scheme.Name)
	return nil
}

// getDBPath returns the database path from flag, config or default.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if cfg != nil && cfg.Database.Path != "" {
		return cfg.Database.Path
	}
	return "" // Will use default
}
