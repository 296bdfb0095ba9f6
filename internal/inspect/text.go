package inspect

import (
	"fmt"
	"strings"
)

// maxValueRunes caps displayed string values; longer values are cut with
// an ellipsis. The mapping form never truncates.
const maxValueRunes = 30

// Render formats a walk result as indented, bracket-delimited text.
// Each node is `<label><Type> (<name>=<value>, ...) {` followed by its
// children one level deeper and a closing `}`; leaf nodes are a single
// line without braces. Positional children are labeled `[i]`, named slots
// `slot:`, content children carry no label.
func Render(res Result, indentSize int, showProperties bool) string {
	if indentSize < 0 {
		indentSize = 0
	}
	return strings.Join(renderLines(res, "", 0, indentSize, showProperties), "\n")
}

func renderLines(res Result, label string, depth, indentSize int, showProps bool) []string {
	indent := strings.Repeat(" ", depth*indentSize)
	head := indent + label + res.Type

	switch res.Marker {
	case MarkerCycle:
		return []string{head + " ... (cycle detected)"}
	case MarkerMaxDepth:
		return []string{head + " ... (max depth reached)"}
	case MarkerError:
		return []string{head + " ... (inspect error)"}
	}

	if showProps && len(res.Properties) > 0 {
		head += " " + formatProperties(res.Properties)
	}
	if len(res.Children) == 0 {
		return []string{head}
	}

	lines := []string{head + " {"}
	for _, child := range res.Children {
		lines = append(lines, renderLines(child.Result, childLabel(child), depth+1, indentSize, showProps)...)
	}
	return append(lines, indent+"}")
}

func childLabel(c Child) string {
	if c.Slot != "" {
		return c.Slot + ": "
	}
	if c.Index >= 0 {
		return fmt.Sprintf("[%d] ", c.Index)
	}
	return ""
}

func formatProperties(props []Property) string {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, p.Name+"="+formatValue(p.Value))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// formatValue renders a property value in its natural literal form:
// single-quoted strings, bare booleans and numbers, bare enum names.
func formatValue(v any) string {
	switch val := v.(type) {
	case Enum:
		return string(val)
	case string:
		return "'" + truncate(val, maxValueRunes) + "'"
	default:
		return fmt.Sprintf("%v", val)
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
