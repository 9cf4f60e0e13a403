package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/washingtonalto/ballotscan/internal/batch"
	"github.com/washingtonalto/ballotscan/internal/output"
)

var (
	batchInputDir  string
	batchOutputDir string
	batchWorkers   int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process every ballot document in a directory",
	Long: `Batch walks the input directory, parses every ballot document in
parallel, and writes one <name>.json per input into the output
directory. A document that fails is logged, counted, and skipped; the
rest of the run continues.

Examples:
  ballotscan batch
  ballotscan batch --input scans/ --output-dir records/
  ballotscan batch --workers 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if batchInputDir != "" {
			cfg.InputDir = batchInputDir
		}
		if batchOutputDir != "" {
			cfg.OutputDir = batchOutputDir
		}
		if batchWorkers > 0 {
			cfg.Workers = batchWorkers
		}

		logger := newLogger(cfg)

		p, err := buildParser(cfg)
		if err != nil {
			return err
		}

		proc := batch.New(batch.Config{
			Parser:  p,
			Workers: cfg.Workers,
			Logger:  logger,
		})

		summary, err := proc.Run(cmd.Context(), cfg.InputDir, cfg.OutputDir)
		if err != nil {
			return err
		}

		if err := output.Output(summary); err != nil {
			return err
		}
		if summary.Failed > 0 {
			return fmt.Errorf("%d of %d documents failed", summary.Failed, summary.Failed+summary.Processed)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchInputDir, "input", "", "input directory (overrides config)")
	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "", "output directory (overrides config)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "worker count (default: one per CPU)")
}
