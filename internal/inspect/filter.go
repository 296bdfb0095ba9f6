package inspect

import "strings"

// FilterByType keeps only flat controls whose type name matches one of the
// given names (case-insensitive). An empty filter keeps everything.
func FilterByType(controls []FlatControl, types []string) []FlatControl {
	if len(types) == 0 {
		return controls
	}
	typeSet := make(map[string]bool, len(types))
	for _, t := range types {
		typeSet[strings.ToLower(strings.TrimSpace(t))] = true
	}

	var result []FlatControl
	for _, fc := range controls {
		if typeSet[strings.ToLower(fc.Type)] {
			result = append(result, fc)
		}
	}
	return result
}

// FilterByText keeps only flat controls whose type, label, or any displayed
// property value contains the given text (case-insensitive).
func FilterByText(controls []FlatControl, text string) []FlatControl {
	if text == "" {
		return controls
	}
	textLower := strings.ToLower(text)

	var result []FlatControl
	for _, fc := range controls {
		if textMatchesControl(fc, textLower) {
			result = append(result, fc)
		}
	}
	return result
}

func textMatchesControl(fc FlatControl, textLower string) bool {
	if strings.Contains(strings.ToLower(fc.Type), textLower) ||
		strings.Contains(strings.ToLower(fc.Label), textLower) {
		return true
	}
	for _, v := range fc.Props {
		if strings.Contains(strings.ToLower(v), textLower) {
			return true
		}
	}
	return false
}
