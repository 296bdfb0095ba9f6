// Package loader reads declarative UI control trees from YAML or JSON
// files into the map-node form the inspector understands: nested mappings
// where every control carries a string "type" key and its remaining keys
// are attributes.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a control tree file. JSON files parse through the
// same path since YAML is a superset.
func Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load tree: %w", err)
	}
	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load tree %s: %w", path, err)
	}
	return root, nil
}

// Parse decodes a control tree document. The root must be a mapping with a
// string "type" key; nested controls are validated lazily by the walker,
// which treats unrecognized shapes as leaves.
func Parse(data []byte) (any, error) {
	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse tree: %w", err)
	}
	m, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("tree root must be a mapping, got %T", root)
	}
	if _, ok := m["type"].(string); !ok {
		return nil, fmt.Errorf("tree root is missing a string %q key", "type")
	}
	return m, nil
}
