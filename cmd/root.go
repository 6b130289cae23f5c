package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ktalbot/winq/internal/output"
	"github.com/ktalbot/winq/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "winq",
	Short: "Snapshot and query desktop windows",
	Long:  "A CLI tool that captures a one-shot snapshot of the visible top-level windows and answers filter, sort, and selection queries over it.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json, table, compact, detail")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")

		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		case "table":
			output.OutputFormat = output.FormatTable
		case "compact":
			output.OutputFormat = output.FormatCompact
		case "detail":
			output.OutputFormat = output.FormatDetail
		default:
			return fmt.Errorf("unsupported format: %s (use yaml, json, table, compact, or detail)", format)
		}
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}
