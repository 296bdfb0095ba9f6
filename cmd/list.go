package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/uidump/uidump/internal/inspect"
	"github.com/uidump/uidump/internal/loader"
	"github.com/uidump/uidump/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list <tree-file>",
	Short: "List the controls of a tree as a flat table",
	Long: "Load a control tree and list every control with its tree path, type,\n" +
		"slot or index label, and displayed properties.",
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("type", "", "Comma-separated control types to include (e.g. \"Text,TextButton\")")
	listCmd.Flags().String("text", "", "Only include controls whose type, label, or properties contain this text")
	listCmd.Flags().Int("max-depth", inspect.DefaultMaxDepth, "Max recursion depth")
	listCmd.Flags().Bool("pretty", false, "Pretty-print JSON output")
}

func runList(cmd *cobra.Command, args []string) error {
	root, err := loader.Load(args[0])
	if err != nil {
		return err
	}

	types, _ := cmd.Flags().GetString("type")
	text, _ := cmd.Flags().GetString("text")
	maxDepth, _ := cmd.Flags().GetInt("max-depth")

	res := inspect.Walk(root, inspect.Options{MaxDepth: inspect.Depth(maxDepth)})
	controls := inspect.Flatten(res)
	if types != "" {
		controls = inspect.FilterByType(controls, strings.Split(types, ","))
	}
	controls = inspect.FilterByText(controls, text)

	switch format := output.Selected(output.FormatTable); format {
	case output.FormatTable:
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"PATH", "TYPE", "LABEL", "PROPS"})
		for _, fc := range controls {
			table.Append([]string{fc.Path, fc.Type, fc.Label, propsSummary(fc)})
		}
		table.Render()
		return nil
	case output.FormatYAML:
		return output.EncodeYAML(cmd.OutOrStdout(), controls)
	case output.FormatJSON:
		return output.EncodeJSON(cmd.OutOrStdout(), controls, output.PrettyOutput)
	default:
		return fmt.Errorf("unsupported format for list: %s", format)
	}
}

// propsSummary joins a control's displayed properties as "name=value"
// pairs, sorted by name for stable output.
func propsSummary(fc inspect.FlatControl) string {
	if fc.Marker != "" {
		return "(" + fc.Marker + ")"
	}
	names := make([]string, 0, len(fc.Props))
	for name := range fc.Props {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+fc.Props[name])
	}
	return strings.Join(parts, ", ")
}
