package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktalbot/winq/internal/model"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List visible top-level windows",
	Long:  "Capture a snapshot of the visible top-level windows and print the records that survive the filter, sort, and selection stages (applied in that order).",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Uint32("pid", 0, "Filter by owning process ID (exact)")
	listCmd.Flags().String("title", "", "Filter by title substring (case-insensitive)")
	listCmd.Flags().String("class", "", "Filter by class name substring")
	listCmd.Flags().String("process", "", "Filter by process name substring")
	listCmd.Flags().String("path", "", "Filter by process path substring")
	listCmd.Flags().Int("sort-pid", 0, "Sort by PID: 1 ascending, -1 descending")
	listCmd.Flags().Int("sort-title", 0, "Sort by title: 1 ascending, -1 descending")
	listCmd.Flags().String("sort-pos", "", "Sort by position: x1, y-1, or x1|y1")
	listCmd.Flags().String("select", "", "Select snapshot indices: all, '1,2,3', or '1-3'")
	listCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runList(cmd *cobra.Command, args []string) error {
	_, snap, err := capture()
	if err != nil {
		return err
	}

	criteria := filterFromFlags(cmd)
	sortCriteria, err := sortFromFlags(cmd)
	if err != nil {
		return err
	}

	var selection *model.Selection
	if selectStr, _ := cmd.Flags().GetString("select"); selectStr != "" {
		sel, err := model.ParseSelection(selectStr)
		if err != nil {
			return fmt.Errorf("--select: %w", err)
		}
		selection = &sel
	}

	return printWindows(snap.Query(criteria, sortCriteria, selection))
}
