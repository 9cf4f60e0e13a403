package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/washingtonalto/ballotscan/internal/config"
	"github.com/washingtonalto/ballotscan/internal/output"
	"github.com/washingtonalto/ballotscan/internal/parser"
	"github.com/washingtonalto/ballotscan/internal/refdata"
	"github.com/washingtonalto/ballotscan/version"
)

var (
	cfgFile      string
	outputFormat string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "ballotscan",
	Short: "Election ballot PDF to structured JSON converter",
	Long: `Ballotscan converts election ballot face templates into structured
JSON records: document metadata, the fixed senator and party-list
positions from reference data, and every position discovered in the
ballot text with its ordered candidate list.

The pipeline includes:
  - Reading-ordered text extraction from ballot PDFs
  - Metadata recovery (location, clustered precinct, precinct list)
  - Position header segmentation with candidate pattern matching
  - Batch and watch modes for whole directories of ballots`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.ballotscan/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "json", "output format: json or yaml",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: debug, info, warn, error",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		output.SetFormat(outputFormat)
	}

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(refdataCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfigManager builds the config manager for the current
// invocation. Long-running commands keep it to register OnChange
// callbacks and enable hot reload.
func loadConfigManager() (*config.Manager, error) {
	return config.NewManager(cfgFile)
}

// loadConfig returns the loaded configuration for one-shot commands.
func loadConfig() (*config.Config, error) {
	cm, err := loadConfigManager()
	if err != nil {
		return nil, err
	}
	return cm.Get(), nil
}

// newLogger builds the command logger, preferring the --log-level flag
// over the configured level.
func newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}

	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: l,
	}))
}

// buildParser loads the reference datasets and constructs the parser.
// Reference data problems abort here, before any document is touched.
func buildParser(cfg *config.Config) (*parser.Parser, error) {
	set, err := refdata.LoadSet(cfg.SenatorFile, cfg.PartyListFile)
	if err != nil {
		return nil, err
	}

	return parser.New(parser.Config{
		ElectionDate: cfg.ElectionDate,
		Fixed:        set.FixedPositions(),
	}), nil
}
