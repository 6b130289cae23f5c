package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ktalbot/winq/internal/model"
	"github.com/ktalbot/winq/internal/output"
	"github.com/ktalbot/winq/internal/platform"
	"github.com/ktalbot/winq/internal/snapshot"
)

// capture builds a fresh snapshot from the platform window source.
func capture() (*snapshot.Builder, *snapshot.Snapshot, error) {
	source, err := platform.NewSource()
	if err != nil {
		return nil, nil, err
	}
	builder := snapshot.NewBuilder(source)
	snap, err := builder.Rebuild()
	if err != nil {
		return nil, nil, err
	}
	return builder, snap, nil
}

// printWindows renders windows in the active output format.
func printWindows(windows []model.Window) error {
	switch output.OutputFormat {
	case output.FormatTable:
		output.WriteTable(os.Stdout, windows)
		return nil
	case output.FormatCompact:
		output.WriteCompact(os.Stdout, windows)
		return nil
	case output.FormatDetail:
		output.WriteDetail(os.Stdout, windows)
		return nil
	}
	if windows == nil {
		windows = []model.Window{}
	}
	return output.Print(windows)
}

// filterFromFlags assembles FilterCriteria from the shared filter flags.
func filterFromFlags(cmd *cobra.Command) model.FilterCriteria {
	pid, _ := cmd.Flags().GetUint32("pid")
	title, _ := cmd.Flags().GetString("title")
	class, _ := cmd.Flags().GetString("class")
	process, _ := cmd.Flags().GetString("process")
	path, _ := cmd.Flags().GetString("path")
	return model.FilterCriteria{
		PID:             pid,
		TitleContains:   title,
		ClassContains:   class,
		ProcessContains: process,
		PathContains:    path,
	}
}

// sortFromFlags assembles SortCriteria from the sort flags.
func sortFromFlags(cmd *cobra.Command) (model.SortCriteria, error) {
	pidOrder, _ := cmd.Flags().GetInt("sort-pid")
	titleOrder, _ := cmd.Flags().GetInt("sort-title")
	posSort, _ := cmd.Flags().GetString("sort-pos")

	var criteria model.SortCriteria
	var err error
	if criteria.PID, err = model.ParseSortOrder(pidOrder); err != nil {
		return criteria, fmt.Errorf("--sort-pid: %w", err)
	}
	if criteria.Title, err = model.ParseSortOrder(titleOrder); err != nil {
		return criteria, fmt.Errorf("--sort-title: %w", err)
	}
	if criteria.Position, err = model.ParsePositionSort(posSort); err != nil {
		return criteria, fmt.Errorf("--sort-pos: %w", err)
	}
	return criteria, nil
}
