// Package inspect walks in-memory trees of loosely typed UI control
// objects and renders them as indented text, ordered mappings, or JSON.
//
// A control node is any Go struct, pointer to struct, or string-keyed map
// with a "type" entry; no declared interface is required. Attribute access
// that fails for any reason degrades to absence, a single malformed node
// degrades to a marker, and reference cycles are broken with a path-scoped
// identity set, so inspection never fails as a whole.
package inspect

import (
	"fmt"
	"io"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// PrintOptions configures Fprint. MaxDepth of 0 expands only the root;
// use DefaultPrintOptions for the standard limit.
type PrintOptions struct {
	ShowProperties bool
	IndentSize     int
	MaxDepth       int
}

// DefaultPrintOptions returns the standard print configuration: properties
// shown, two-space indentation, DefaultMaxDepth recursion.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{ShowProperties: true, IndentSize: 2, MaxDepth: DefaultMaxDepth}
}

// Fprint walks node and writes its indented text rendering to w, followed
// by a newline.
func Fprint(w io.Writer, node any, opts PrintOptions) error {
	res := Walk(node, Options{MaxDepth: Depth(opts.MaxDepth)})
	if _, err := fmt.Fprintln(w, Render(res, opts.IndentSize, opts.ShowProperties)); err != nil {
		return fmt.Errorf("print tree: %w", err)
	}
	return nil
}

// Print writes the default text rendering of node to stdout.
func Print(node any) error {
	return Fprint(os.Stdout, node, DefaultPrintOptions())
}

// ToMapping walks node and returns its ordered mapping form.
func ToMapping(node any) *orderedmap.OrderedMap[string, any] {
	return Mapping(Walk(node, Options{}))
}

// ToJSON walks node and serializes its mapping form to JSON. A negative
// indent yields compact output.
func ToJSON(node any, indent int) (string, error) {
	return MappingJSON(ToMapping(node), indent)
}
