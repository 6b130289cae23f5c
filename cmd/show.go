package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ktalbot/winq/internal/model"
)

var showCmd = &cobra.Command{
	Use:   "show <index>",
	Short: "Show one window by snapshot index",
	Long:  "Capture a snapshot and print the window with the given 1-based index, optionally verifying that it still exists.",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("check", false, "Fail if the window no longer exists")
	showCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runShow(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 1 {
		return fmt.Errorf("%w: %q", model.ErrInvalidIndex, args[0])
	}

	builder, snap, err := capture()
	if err != nil {
		return err
	}

	w, ok := snap.ByIndex(index)
	if !ok {
		return fmt.Errorf("no window with index %d (snapshot has %d windows)", index, snap.Len())
	}

	if check, _ := cmd.Flags().GetBool("check"); check && !builder.StillPresent(w) {
		return fmt.Errorf("window 0x%x is no longer present", w.Handle)
	}

	return printWindows([]model.Window{w})
}
