package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uidump/uidump/internal/inspect"
	"github.com/uidump/uidump/internal/loader"
	"github.com/uidump/uidump/internal/output"
)

var exportCmd = &cobra.Command{
	Use:   "export <tree-file>",
	Short: "Export a control tree as a structured mapping",
	Long: "Load a control tree from a YAML or JSON file and export it as an ordered\n" +
		"mapping with type, properties, and children keys.",
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().Int("indent", 2, "JSON indent width (-1 for compact)")
	exportCmd.Flags().Int("max-depth", inspect.DefaultMaxDepth, "Max recursion depth")
}

func runExport(cmd *cobra.Command, args []string) error {
	root, err := loader.Load(args[0])
	if err != nil {
		return err
	}

	indent, _ := cmd.Flags().GetInt("indent")
	maxDepth, _ := cmd.Flags().GetInt("max-depth")

	res := inspect.Walk(root, inspect.Options{MaxDepth: inspect.Depth(maxDepth)})
	m := inspect.Mapping(res)

	switch format := output.Selected(output.FormatJSON); format {
	case output.FormatJSON:
		s, err := inspect.MappingJSON(m, indent)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
		return err
	case output.FormatYAML:
		s, err := inspect.MappingYAML(m)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), s)
		return err
	default:
		return fmt.Errorf("unsupported format for export: %s (use json or yaml)", format)
	}
}
