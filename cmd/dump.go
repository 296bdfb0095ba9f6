package cmd

import (
	"github.com/spf13/cobra"
	"github.com/uidump/uidump/internal/inspect"
	"github.com/uidump/uidump/internal/loader"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <tree-file>",
	Short: "Render a control tree file as indented text",
	Long: "Load a control tree from a YAML or JSON file and render it as indented,\n" +
		"bracket-delimited text with per-control property annotations.",
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().Int("indent", 2, "Spaces per indent level")
	dumpCmd.Flags().Int("max-depth", inspect.DefaultMaxDepth, "Max recursion depth")
	dumpCmd.Flags().Bool("no-props", false, "Hide control properties")
}

func runDump(cmd *cobra.Command, args []string) error {
	root, err := loader.Load(args[0])
	if err != nil {
		return err
	}

	indent, _ := cmd.Flags().GetInt("indent")
	maxDepth, _ := cmd.Flags().GetInt("max-depth")
	noProps, _ := cmd.Flags().GetBool("no-props")

	return inspect.Fprint(cmd.OutOrStdout(), root, inspect.PrintOptions{
		ShowProperties: !noProps,
		IndentSize:     indent,
		MaxDepth:       maxDepth,
	})
}
