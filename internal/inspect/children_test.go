package inspect

import (
	"reflect"
	"testing"
)

func TestChildren_NamedSlotsDeclaredOrder(t *testing.T) {
	node := map[string]any{
		"type":           "Page",
		"navigation_bar": map[string]any{"type": "NavigationBar"},
		"appbar":         map[string]any{"type": "AppBar"},
		"drawer":         map[string]any{"type": "NavigationDrawer"},
	}
	entries := Children(node)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	want := []string{"appbar", "drawer", "navigation_bar"}
	for i, slot := range want {
		if entries[i].Slot != slot {
			t.Errorf("entry %d: expected slot %q, got %q", i, slot, entries[i].Slot)
		}
		if entries[i].Index != -1 {
			t.Errorf("entry %d: named slot should have index -1, got %d", i, entries[i].Index)
		}
	}
}

func TestChildren_ContentSlotUnlabeled(t *testing.T) {
	entries := Children(Container{Content: &Text{Value: "Hi"}})
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Slot != "" || entries[0].Index != -1 {
		t.Errorf("content child should be unlabeled, got %+v", entries[0])
	}
}

func TestChildren_SequencePositions(t *testing.T) {
	col := Column{Controls: []any{&Text{Value: "A"}, &Text{Value: "B"}, &Text{Value: "C"}}}
	entries := Children(col)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Index != i {
			t.Errorf("entry %d: expected index %d, got %d", i, i, e.Index)
		}
		if e.Slot != "" {
			t.Errorf("entry %d: positional child should have no slot, got %q", i, e.Slot)
		}
	}
}

func TestChildren_NonNodeElementKeepsPositions(t *testing.T) {
	col := Column{Controls: []any{&Text{Value: "A"}, "not a control", &Text{Value: "C"}}}
	entries := Children(col)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Index != 0 || entries[1].Index != 2 {
		t.Errorf("expected indices [0 2], got [%d %d]", entries[0].Index, entries[1].Index)
	}
}

func TestChildren_FirstNonEmptySequenceWins(t *testing.T) {
	node := map[string]any{
		"type":     "AlertDialog",
		"controls": []any{map[string]any{"type": "Text"}},
		"actions":  []any{map[string]any{"type": "TextButton"}},
	}
	entries := Children(node)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := TypeName(entries[0].Node); got != "Text" {
		t.Errorf("expected controls to win over actions, got %q", got)
	}

	// An empty earlier sequence falls through to the next one.
	node["controls"] = []any{}
	entries = Children(node)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := TypeName(entries[0].Node); got != "TextButton" {
		t.Errorf("expected actions when controls is empty, got %q", got)
	}
}

func TestChildren_AllRelationKindsEmitted(t *testing.T) {
	node := map[string]any{
		"type":    "Page",
		"appbar":  map[string]any{"type": "AppBar"},
		"content": map[string]any{"type": "Container"},
		"controls": []any{
			map[string]any{"type": "Text"},
			map[string]any{"type": "Text"},
		},
	}
	entries := Children(node)
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	if entries[0].Slot != "appbar" {
		t.Errorf("expected appbar first, got %+v", entries[0])
	}
	if entries[1].Slot != "" || entries[1].Index != -1 {
		t.Errorf("expected unlabeled content second, got %+v", entries[1])
	}
	if entries[2].Index != 0 || entries[3].Index != 1 {
		t.Errorf("expected positional children last, got %+v %+v", entries[2], entries[3])
	}
}

func TestChildren_ScalarTitleIsNotAChild(t *testing.T) {
	if entries := Children(Page{Title: "Home"}); len(entries) != 0 {
		t.Errorf("scalar title should not be a child, got %+v", entries)
	}
}

func TestChildren_NodeTitleIsNamedSlot(t *testing.T) {
	entries := Children(AppBar{Title: &Text{Value: "Home"}})
	if len(entries) != 1 || entries[0].Slot != "title" {
		t.Fatalf("expected single title slot entry, got %+v", entries)
	}
}

func TestChildren_Deterministic(t *testing.T) {
	node := map[string]any{
		"type":   "Page",
		"drawer": map[string]any{"type": "NavigationDrawer"},
		"appbar": map[string]any{"type": "AppBar"},
		"controls": []any{
			map[string]any{"type": "Text"},
		},
	}
	first := Children(node)
	for i := 0; i < 10; i++ {
		if next := Children(node); !reflect.DeepEqual(first, next) {
			t.Fatalf("run %d: child order changed: %+v vs %+v", i, first, next)
		}
	}
}
