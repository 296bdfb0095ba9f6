// Package output serializes command results to stdout in the format
// selected by the root command's --format flag.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// OutputFormat is the current output format, set by the root command's
// --format flag. Empty means each command's own default applies.
var OutputFormat Format

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// Selected returns the effective format: the --format flag value when set,
// otherwise the given command default.
func Selected(def Format) Format {
	if OutputFormat == "" {
		return def
	}
	return OutputFormat
}

// Print serializes v to stdout in the current output format, defaulting
// to YAML.
func Print(v any) error {
	switch Selected(FormatYAML) {
	case FormatJSON:
		return PrintJSON(v)
	case FormatYAML, FormatTable:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as JSON, indented when --pretty is set.
func PrintJSON(v any) error {
	return EncodeJSON(os.Stdout, v, PrettyOutput)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v any) error {
	return EncodeYAML(os.Stdout, v)
}

// EncodeJSON writes v to w as JSON. If pretty is true, uses indentation;
// otherwise single-line.
func EncodeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// EncodeYAML writes v to w as YAML.
func EncodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
