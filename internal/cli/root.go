package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/vquang/sheetops/internal/core/config"
)

// version is stamped into every report's general group.
const version = "0.1.0"

var (
	cfgPath string
	isDebug bool
)

var rootCmd = &cobra.Command{
	Use:   "sheetops",
	Short: "Diagnostics toolkit for spreadsheet automation setups",
	Long: `sheetops collects OS, automation-layer, and spreadsheet application
configuration into a flat (Group, Parameter, Value) report for manual
comparison across machines.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "sheetops.yaml", "config file (default is sheetops.yaml)")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
}

// setup loads .env and the config file, then initializes logging. A missing
// config file falls back to defaults; only a malformed one is fatal.
func setup() *config.AppConfig {
	_ = godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	slogLevel := slog.LevelInfo
	if isDebug || cfg.Logging.Level == "debug" {
		slogLevel = slog.LevelDebug
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slogLevel,
		TimeFormat: time.RFC3339,
	})))

	return cfg
}
