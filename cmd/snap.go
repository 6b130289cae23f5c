package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ktalbot/winq/internal/output"
	"github.com/ktalbot/winq/internal/snapshot"
)

var snapCmd = &cobra.Command{
	Use:   "snap",
	Short: "Capture a snapshot and write it to a file",
	Long:  "Capture a snapshot of the visible top-level windows and save it as JSON for later comparison with 'winq diff'.",
	RunE:  runSnap,
}

func init() {
	rootCmd.AddCommand(snapCmd)
	snapCmd.Flags().String("out", "", "Destination file (required)")
	snapCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

// snapResult is the structured output of the snap command.
type snapResult struct {
	Windows int    `yaml:"windows" json:"windows"`
	File    string `yaml:"file"    json:"file"`
}

func runSnap(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		return fmt.Errorf("--out is required")
	}

	_, snap, err := capture()
	if err != nil {
		return err
	}
	if err := snapshot.Save(out, snap); err != nil {
		return err
	}

	switch output.OutputFormat {
	case output.FormatYAML, output.FormatJSON:
		return output.Print(snapResult{Windows: snap.Len(), File: out})
	}
	fmt.Printf("saved %d windows to %s\n", snap.Len(), out)
	return nil
}
