package cmd

import (
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <title>",
	Short: "Find windows by title substring",
	Long:  "Capture a snapshot and print the windows whose title contains the given text (case-insensitive).",
	Args:  cobra.ExactArgs(1),
	RunE:  runFind,
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runFind(cmd *cobra.Command, args []string) error {
	builder, _, err := capture()
	if err != nil {
		return err
	}
	return printWindows(builder.FindByTitle(args[0]))
}
