package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uidump/uidump/internal/output"
	"github.com/uidump/uidump/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "uidump",
	Short: "Inspect and dump UI control trees",
	Long: "A CLI tool that walks trees of attribute-bag UI controls and renders them\n" +
		"as indented text, ordered JSON/YAML mappings, flat listings, or diffs.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json, table (list only)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Use the root persistent flag directly to avoid conflicts with
		// subcommand local flags.
		format, _ := rootCmd.PersistentFlags().GetString("format")

		switch format {
		case "":
			output.OutputFormat = "" // each command picks its own default
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		case "table":
			output.OutputFormat = output.FormatTable
		default:
			return fmt.Errorf("unsupported format: %s (use yaml, json, or table)", format)
		}
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}
		return nil
	}
}
