package inspect

import (
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Mapping projects a walk result into an ordered nested mapping with keys
// "type", "properties", and "children". Each child mapping embeds its own
// label first: "slot" for named relations, "index" for positional children,
// neither for content children. Marker results carry a "marker" key instead
// of properties and children.
func Mapping(res Result) *orderedmap.OrderedMap[string, any] {
	m := orderedmap.New[string, any]()
	m.Set("type", res.Type)

	if res.Marker != MarkerNone {
		m.Set("marker", string(res.Marker))
		return m
	}

	props := orderedmap.New[string, any]()
	for _, p := range res.Properties {
		props.Set(p.Name, mappingValue(p.Value))
	}
	m.Set("properties", props)

	children := make([]any, 0, len(res.Children))
	for _, c := range res.Children {
		cm := orderedmap.New[string, any]()
		if c.Slot != "" {
			cm.Set("slot", c.Slot)
		} else if c.Index >= 0 {
			cm.Set("index", c.Index)
		}
		for pair := Mapping(c.Result).Oldest(); pair != nil; pair = pair.Next() {
			cm.Set(pair.Key, pair.Value)
		}
		children = append(children, cm)
	}
	m.Set("children", children)
	return m
}

func mappingValue(v any) any {
	if e, ok := v.(Enum); ok {
		return string(e)
	}
	return v
}

// MappingJSON serializes an ordered mapping to JSON. A negative indent
// yields the compact single-line form; otherwise nesting is indented by
// that many spaces. Key order is preserved.
func MappingJSON(m *orderedmap.OrderedMap[string, any], indent int) (string, error) {
	var (
		b   []byte
		err error
	)
	if indent < 0 {
		b, err = json.Marshal(m)
	} else {
		b, err = json.MarshalIndent(m, "", strings.Repeat(" ", indent))
	}
	if err != nil {
		return "", fmt.Errorf("mapping to json: %w", err)
	}
	return string(b), nil
}

// MappingYAML serializes an ordered mapping to YAML, preserving key order
// by building the yaml node tree explicitly.
func MappingYAML(m *orderedmap.OrderedMap[string, any]) (string, error) {
	node, err := yamlNode(m)
	if err != nil {
		return "", fmt.Errorf("mapping to yaml: %w", err)
	}
	b, err := yaml.Marshal(node)
	if err != nil {
		return "", fmt.Errorf("mapping to yaml: %w", err)
	}
	return string(b), nil
}

func yamlNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case *orderedmap.OrderedMap[string, any]:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for pair := val.Oldest(); pair != nil; pair = pair.Next() {
			key := &yaml.Node{}
			key.SetString(pair.Key)
			value, err := yamlNode(pair.Value)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, key, value)
		}
		return n, nil
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range val {
			child, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	default:
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		return n, nil
	}
}
