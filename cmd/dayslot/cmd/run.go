package cmd

import (
	"github.com/spf13/cobra"

	"dayslot/internal/orchestrator"
)

func runRename(cmd *cobra.Command, args []string) error {
	out := newOutput()
	cfg, err := loadConfig(out, args)
	if err != nil {
		return err
	}

	summary, err := orchestrator.New(appFs, cfg, out).Run()
	if err != nil {
		if summary != nil && summary.Incomplete() {
			out.Error("Stopped after %d of %d files; %d renamed before the failure.",
				summary.Processed, summary.Total, len(summary.Renames))
		}
		return err
	}

	out.Verbose("%s", summary.PrintSummary())
	out.Info("Completed successfully.")
	return nil
}
