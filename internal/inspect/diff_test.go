package inspect

import "testing"

func TestHashControl_Stable(t *testing.T) {
	fc := FlatControl{Type: "Text", Label: "[0]", Path: "Page > Text"}
	first := HashControl(fc)
	if len(first) != 16 {
		t.Fatalf("expected 16 hex chars, got %q", first)
	}
	if HashControl(fc) != first {
		t.Error("hash should be deterministic")
	}
	other := fc
	other.Path = "Page > Column > Text"
	if HashControl(other) == first {
		t.Error("different paths should hash differently")
	}
}

func TestDiffTrees_AddedRemovedChanged(t *testing.T) {
	prev := []FlatControl{
		{Type: "Page", Path: "Page"},
		{Type: "Text", Label: "[0]", Path: "Page > Text", Props: map[string]string{"value": "'Hi'"}},
		{Type: "TextButton", Label: "[1]", Path: "Page > TextButton", Props: map[string]string{"text": "'OK'"}},
	}
	curr := []FlatControl{
		{Type: "Page", Path: "Page"},
		{Type: "Text", Label: "[0]", Path: "Page > Text", Props: map[string]string{"value": "'Bye'"}},
		{Type: "Checkbox", Label: "[2]", Path: "Page > Checkbox", Props: map[string]string{"label": "'Agree'"}},
	}

	diff := DiffTrees(prev, curr)

	if len(diff.Added) != 1 || diff.Added[0].Type != "Checkbox" {
		t.Errorf("expected Checkbox added, got %+v", diff.Added)
	}
	if len(diff.Removed) != 1 || diff.Removed[0].Type != "TextButton" {
		t.Errorf("expected TextButton removed, got %+v", diff.Removed)
	}
	if len(diff.Changed) != 1 {
		t.Fatalf("expected 1 changed control, got %d", len(diff.Changed))
	}
	change := diff.Changed[0]
	if change.Path != "Page > Text" {
		t.Errorf("unexpected changed path %q", change.Path)
	}
	if got := change.Changes["value"]; got != [2]string{"'Hi'", "'Bye'"} {
		t.Errorf("unexpected value change %v", got)
	}
	if diff.UnchangedCount != 1 {
		t.Errorf("expected 1 unchanged control, got %d", diff.UnchangedCount)
	}
}

func TestDiffTrees_Identical(t *testing.T) {
	controls := []FlatControl{
		{Type: "Page", Path: "Page"},
		{Type: "Text", Label: "[0]", Path: "Page > Text", Props: map[string]string{"value": "'Hi'"}},
	}
	diff := DiffTrees(controls, controls)
	if len(diff.Added) != 0 || len(diff.Removed) != 0 || len(diff.Changed) != 0 {
		t.Errorf("identical trees should produce an empty diff, got %+v", diff)
	}
	if diff.UnchangedCount != 2 {
		t.Errorf("expected 2 unchanged controls, got %d", diff.UnchangedCount)
	}
}

func TestDiffTrees_DuplicateIdentitiesMatchedByOccurrence(t *testing.T) {
	// Two sibling Columns each carrying a first Text child flatten to
	// identical type, label, and path.
	dup := func(value string) FlatControl {
		return FlatControl{
			Type: "Text", Label: "[0]", Path: "Row > Column > Text",
			Props: map[string]string{"value": value},
		}
	}
	prev := []FlatControl{dup("'left'"), dup("'right'")}

	diff := DiffTrees(prev, []FlatControl{dup("'left'")})
	if len(diff.Added) != 0 {
		t.Errorf("expected no additions, got %+v", diff.Added)
	}
	if len(diff.Removed) != 1 || diff.Removed[0].Props["value"] != "'right'" {
		t.Errorf("expected the second occurrence removed, got %+v", diff.Removed)
	}
	if diff.UnchangedCount != 1 {
		t.Errorf("expected 1 unchanged control, got %d", diff.UnchangedCount)
	}

	diff = DiffTrees(prev, []FlatControl{dup("'left'"), dup("'RIGHT'")})
	if len(diff.Changed) != 1 {
		t.Fatalf("expected 1 changed control, got %+v", diff)
	}
	if got := diff.Changed[0].Changes["value"]; got != [2]string{"'right'", "'RIGHT'"} {
		t.Errorf("expected second occurrences matched pairwise, got %v", got)
	}
	if diff.UnchangedCount != 1 {
		t.Errorf("expected 1 unchanged control, got %d", diff.UnchangedCount)
	}
}

func TestDiffTrees_PropertyAppears(t *testing.T) {
	prev := []FlatControl{{Type: "Text", Path: "Text"}}
	curr := []FlatControl{{Type: "Text", Path: "Text", Props: map[string]string{"value": "'Hi'"}}}

	diff := DiffTrees(prev, curr)
	if len(diff.Changed) != 1 {
		t.Fatalf("expected 1 changed control, got %d", len(diff.Changed))
	}
	if got := diff.Changed[0].Changes["value"]; got != [2]string{"", "'Hi'"} {
		t.Errorf("expected empty before side, got %v", got)
	}
}

func TestDiffTrees_EndToEnd(t *testing.T) {
	before := map[string]any{
		"type": "Page",
		"controls": []any{
			map[string]any{"type": "Text", "value": "v1.0"},
		},
	}
	after := map[string]any{
		"type": "Page",
		"controls": []any{
			map[string]any{"type": "Text", "value": "v1.1"},
		},
	}
	diff := DiffTrees(
		Flatten(Walk(before, Options{})),
		Flatten(Walk(after, Options{})),
	)
	if len(diff.Changed) != 1 {
		t.Fatalf("expected 1 changed control, got %+v", diff)
	}
	if got := diff.Changed[0].Changes["value"]; got != [2]string{"'v1.0'", "'v1.1'"} {
		t.Errorf("unexpected change %v", got)
	}
}
