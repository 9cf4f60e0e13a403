package main

import (
	"github.com/spf13/cobra"

	"github.com/washingtonalto/ballotscan/internal/batch"
	"github.com/washingtonalto/ballotscan/internal/config"
	"github.com/washingtonalto/ballotscan/internal/watch"
)

var (
	watchInputDir  string
	watchOutputDir string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process ballot documents as they arrive",
	Long: `Watch monitors the input directory and parses each ballot document
as it is created or moved in, writing the JSON record to the output
directory. Extraction retries briefly when a file is still being
written. Runs until interrupted.

Examples:
  ballotscan watch
  ballotscan watch --input scans/ --output-dir records/`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := loadConfigManager()
		if err != nil {
			return err
		}
		cfg := cm.Get()
		if watchInputDir != "" {
			cfg.InputDir = watchInputDir
		}
		if watchOutputDir != "" {
			cfg.OutputDir = watchOutputDir
		}

		logger := newLogger(cfg)

		p, err := buildParser(cfg)
		if err != nil {
			return err
		}

		proc := batch.New(batch.Config{
			Parser: p,
			Logger: logger,
		})

		w := watch.New(watch.Config{
			Processor: proc,
			InputDir:  cfg.InputDir,
			OutputDir: cfg.OutputDir,
			Logger:    logger,
		})

		// Hot-reload the output directory on config file edits. A
		// --output-dir flag pins it for the whole run.
		if watchOutputDir == "" {
			cm.OnChange(func(c *config.Config) {
				w.SetOutputDir(c.OutputDir)
			})
			cm.WatchConfig()
		}

		return w.Run(cmd.Context())
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchInputDir, "input", "", "input directory (overrides config)")
	watchCmd.Flags().StringVar(&watchOutputDir, "output-dir", "", "output directory (overrides config)")
}
