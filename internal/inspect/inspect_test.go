package inspect

import (
	"bytes"
	"strings"
	"testing"
)

func TestFprint_MatchesRender(t *testing.T) {
	node := map[string]any{
		"type": "Column",
		"controls": []any{
			map[string]any{"type": "Text", "value": "Hi"},
		},
	}
	var buf bytes.Buffer
	if err := Fprint(&buf, node, DefaultPrintOptions()); err != nil {
		t.Fatal(err)
	}
	want := Render(Walk(node, Options{}), 2, true) + "\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestFprint_HonorsOptions(t *testing.T) {
	node := map[string]any{
		"type": "Column",
		"controls": []any{
			map[string]any{"type": "Text", "value": "Hi"},
		},
	}
	var buf bytes.Buffer
	opts := PrintOptions{ShowProperties: false, IndentSize: 4, MaxDepth: 5}
	if err := Fprint(&buf, node, opts); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if strings.Contains(got, "value=") {
		t.Error("properties should be hidden")
	}
	if !strings.Contains(got, "    [0] Text") {
		t.Errorf("expected four-space indent, got %q", got)
	}
}

func TestDefaultPrintOptions(t *testing.T) {
	opts := DefaultPrintOptions()
	if !opts.ShowProperties || opts.IndentSize != 2 || opts.MaxDepth != DefaultMaxDepth {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}

func TestToJSON(t *testing.T) {
	got, err := ToJSON(Text{Value: "Hi"}, -1)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"Text","properties":{"value":"Hi","visible":false,"disabled":false},"children":[]}`
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
