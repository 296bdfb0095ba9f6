package inspect

import "fmt"

// FlatControl is a walked control with a path breadcrumb instead of
// nested children.
type FlatControl struct {
	Type   string            `yaml:"type"             json:"type"`
	Label  string            `yaml:"label,omitempty"  json:"label,omitempty"`
	Path   string            `yaml:"path"             json:"path"`
	Marker string            `yaml:"marker,omitempty" json:"marker,omitempty"`
	Props  map[string]string `yaml:"props,omitempty"  json:"props,omitempty"`
}

// Flatten converts a walk result into a flat list in traversal order.
// Each control gets a path string showing its location in the tree using
// type names joined with " > ", and its properties in display form.
func Flatten(res Result) []FlatControl {
	var result []FlatControl
	flattenRecursive(res, "", "", &result)
	return result
}

func flattenRecursive(res Result, label, parentPath string, result *[]FlatControl) {
	currentPath := res.Type
	if parentPath != "" {
		currentPath = parentPath + " > " + res.Type
	}

	flat := FlatControl{
		Type:   res.Type,
		Label:  label,
		Path:   currentPath,
		Marker: string(res.Marker),
	}
	if len(res.Properties) > 0 {
		flat.Props = make(map[string]string, len(res.Properties))
		for _, p := range res.Properties {
			flat.Props[p.Name] = formatValue(p.Value)
		}
	}
	*result = append(*result, flat)

	for _, child := range res.Children {
		flattenRecursive(child.Result, flatLabel(child), currentPath, result)
	}
}

func flatLabel(c Child) string {
	if c.Slot != "" {
		return c.Slot
	}
	if c.Index >= 0 {
		return fmt.Sprintf("[%d]", c.Index)
	}
	return ""
}
