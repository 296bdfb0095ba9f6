package inspect

import "reflect"

// namedSlots are single-control relations shown under their own name,
// checked in this declared order.
var namedSlots = []string{
	"appbar", "drawer", "end_drawer", "floating_action_button",
	"bottom_navigation_bar", "navigation_bar",
	"leading", "title", "trailing",
}

// contentSlot holds a single unlabeled nested control.
const contentSlot = "content"

// sequenceSlots may hold an ordered list of controls; only the first one
// holding a non-empty sequence contributes positional children.
var sequenceSlots = []string{"controls", "children", "actions", "tabs", "items", "options"}

// Entry is one child relation of a node: a named slot (Slot set, Index -1),
// a positional child (Slot empty, Index >= 0), or the unlabeled content
// child (Slot empty, Index -1).
type Entry struct {
	Slot  string
	Index int
	Node  any
}

// Children enumerates the child relations of a node in a fixed priority
// order: named slots first, then the content slot, then the positional
// sequence. Attribute values that are not node-shaped are skipped; they
// contribute to properties at most. Repeated calls on the same node yield
// the same entries in the same order, since attributes are probed by name
// rather than by container iteration.
func Children(node any) []Entry {
	var entries []Entry

	for _, slot := range namedSlots {
		if v, ok := Get(node, slot); ok && IsNode(v) {
			entries = append(entries, Entry{Slot: slot, Index: -1, Node: v})
		}
	}

	if v, ok := Get(node, contentSlot); ok && IsNode(v) {
		entries = append(entries, Entry{Slot: "", Index: -1, Node: v})
	}

	for _, slot := range sequenceSlots {
		v, ok := Get(node, slot)
		if !ok {
			continue
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			continue
		}
		if rv.Len() == 0 {
			continue
		}
		for i := 0; i < rv.Len(); i++ {
			el, ok := attrValue(rv.Index(i))
			if !ok || !IsNode(el) {
				continue // non-control element keeps its position for the rest
			}
			entries = append(entries, Entry{Slot: "", Index: i, Node: el})
		}
		break
	}

	return entries
}
