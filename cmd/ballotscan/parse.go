package main

import (
	"github.com/spf13/cobra"

	"github.com/washingtonalto/ballotscan/internal/extract"
	"github.com/washingtonalto/ballotscan/internal/output"
)

var parseOutFile string

var parseCmd = &cobra.Command{
	Use:   "parse <ballot.pdf|ballot.txt>",
	Short: "Parse a single ballot document",
	Long: `Parse extracts one ballot document and prints the structured record
to stdout (or writes it to --out as JSON).

A .txt input skips PDF extraction and is parsed as already-extracted
text, which is useful when an upstream tool owns the extraction step.

Examples:
  ballotscan parse ballot.pdf
  ballotscan parse ballot.pdf -o yaml
  ballotscan parse ballot.pdf --out ballot.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		p, err := buildParser(cfg)
		if err != nil {
			return err
		}

		text, err := extract.Text(args[0])
		if err != nil {
			return err
		}

		record, err := p.Parse(args[0], text)
		if err != nil {
			return err
		}

		if parseOutFile != "" {
			return output.WriteJSONFile(parseOutFile, record)
		}
		return output.Output(record)
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseOutFile, "out", "", "write the record to this file as JSON")
}
