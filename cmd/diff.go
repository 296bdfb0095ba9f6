package cmd

import (
	"github.com/spf13/cobra"
	"github.com/uidump/uidump/internal/inspect"
	"github.com/uidump/uidump/internal/loader"
	"github.com/uidump/uidump/internal/output"
)

var diffCmd = &cobra.Command{
	Use:   "diff <before-file> <after-file>",
	Short: "Compare two control tree files",
	Long: "Load two control trees and report added, removed, and changed controls.\n" +
		"Controls are matched by a content hash of their type, label, and tree path,\n" +
		"so insertions elsewhere in the tree do not produce spurious changes.",
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().Int("max-depth", inspect.DefaultMaxDepth, "Max recursion depth")
	diffCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runDiff(cmd *cobra.Command, args []string) error {
	before, err := loader.Load(args[0])
	if err != nil {
		return err
	}
	after, err := loader.Load(args[1])
	if err != nil {
		return err
	}

	maxDepth, _ := cmd.Flags().GetInt("max-depth")
	opts := inspect.Options{MaxDepth: inspect.Depth(maxDepth)}

	diff := inspect.DiffTrees(
		inspect.Flatten(inspect.Walk(before, opts)),
		inspect.Flatten(inspect.Walk(after, opts)),
	)

	if output.Selected(output.FormatYAML) == output.FormatJSON {
		return output.EncodeJSON(cmd.OutOrStdout(), diff, output.PrettyOutput)
	}
	return output.EncodeYAML(cmd.OutOrStdout(), diff)
}
