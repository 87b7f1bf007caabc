package cmd

import (
	"github.com/spf13/cobra"

	"dayslot/internal/orchestrator"
)

var statusCmd = &cobra.Command{
	Use:   "status [directory]",
	Short: "Show the renames a run would perform",
	Long: `Runs the same analysis as a normal run without touching any file and
lists every planned rename.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := newOutput()
		cfg, err := loadConfig(out, args)
		if err != nil {
			return err
		}

		summary, err := orchestrator.New(appFs, cfg, nil).Status()
		if err != nil {
			return err
		}

		if len(summary.Renames) == 0 {
			out.Info("Nothing to rename.")
		}
		for _, m := range summary.Renames {
			out.Info("Would rename: %s -> %s", m.OldName, m.NewName)
		}
		out.Info("%s", summary.PrintSummary())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
