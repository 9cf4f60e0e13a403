package main

import (
	"github.com/spf13/cobra"

	"github.com/washingtonalto/ballotscan/internal/output"
	"github.com/washingtonalto/ballotscan/internal/refdata"
)

var refdataCmd = &cobra.Command{
	Use:   "refdata",
	Short: "Validate the fixed reference datasets",
	Long: `Refdata loads the senator and party-list reference files, validates
their structure, and reports the candidate counts. Every other command
performs the same validation at startup; this command runs it alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		set, err := refdata.LoadSet(cfg.SenatorFile, cfg.PartyListFile)
		if err != nil {
			return err
		}

		return output.Output(map[string]any{
			"senator_file":         cfg.SenatorFile,
			"senator_candidates":   len(set.Senators),
			"partylist_file":       cfg.PartyListFile,
			"partylist_candidates": len(set.PartyList),
		})
	},
}
