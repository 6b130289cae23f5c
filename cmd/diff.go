package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ktalbot/winq/internal/model"
	"github.com/ktalbot/winq/internal/output"
	"github.com/ktalbot/winq/internal/snapshot"
)

var diffCmd = &cobra.Command{
	Use:   "diff <old.json> <new.json>",
	Short: "Compare two saved snapshots",
	Long:  "Compare two snapshot files written by 'winq snap'. Windows are matched by handle; the report lists added, removed, and changed windows.",
	Args:  cobra.ExactArgs(2),
	RunE:  runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runDiff(cmd *cobra.Command, args []string) error {
	prev, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}
	curr, err := snapshot.Load(args[1])
	if err != nil {
		return err
	}

	diff := model.DiffWindows(prev.Windows(), curr.Windows())
	return output.Print(diff)
}
