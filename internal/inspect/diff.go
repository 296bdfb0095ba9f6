package inspect

import (
	"crypto/sha256"
	"fmt"
)

// Change records the per-property [before, after] pairs of a control
// matched across two trees.
type Change struct {
	Path    string               `yaml:"path"           json:"path"`
	Type    string               `yaml:"type,omitempty" json:"type,omitempty"`
	Changes map[string][2]string `yaml:"changes"        json:"changes"`
}

// TreeDiff is the result of comparing two flattened trees by content hash.
type TreeDiff struct {
	Added          []FlatControl `yaml:"added,omitempty"   json:"added,omitempty"`
	Removed        []FlatControl `yaml:"removed,omitempty" json:"removed,omitempty"`
	Changed        []Change      `yaml:"changed,omitempty" json:"changed,omitempty"`
	UnchangedCount int           `yaml:"unchanged_count"   json:"unchanged_count"`
}

// HashControl computes a stable identity hash for a control based on its
// type, label, and position in the tree, so controls can be matched across
// separate dumps of the same UI.
func HashControl(fc FlatControl) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s", fc.Type, fc.Label, fc.Path)
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

// diffKeys assigns each control its matching key: the content hash, with
// controls sharing an identity (same type, label, and path, e.g. same-named
// children of sibling containers) disambiguated by occurrence order.
func diffKeys(controls []FlatControl) []string {
	keys := make([]string, len(controls))
	seen := make(map[string]int, len(controls))
	for i, fc := range controls {
		h := HashControl(fc)
		keys[i] = fmt.Sprintf("%s#%d", h, seen[h])
		seen[h]++
	}
	return keys
}

// DiffTrees compares two flattened trees using content hashing for stable
// identity and reports added, removed, and property-changed controls.
func DiffTrees(prev, curr []FlatControl) TreeDiff {
	prevKeys := diffKeys(prev)
	currKeys := diffKeys(curr)

	prevByKey := make(map[string]FlatControl, len(prev))
	for i, fc := range prev {
		prevByKey[prevKeys[i]] = fc
	}
	currKeySet := make(map[string]struct{}, len(curr))
	for _, k := range currKeys {
		currKeySet[k] = struct{}{}
	}

	var diff TreeDiff

	for i, fc := range curr {
		prevFc, existed := prevByKey[currKeys[i]]
		if !existed {
			diff.Added = append(diff.Added, fc)
			continue
		}
		changes := diffControlProps(prevFc, fc)
		if len(changes) > 0 {
			diff.Changed = append(diff.Changed, Change{
				Path:    fc.Path,
				Type:    fc.Type,
				Changes: changes,
			})
		} else {
			diff.UnchangedCount++
		}
	}

	for i, fc := range prev {
		if _, exists := currKeySet[prevKeys[i]]; !exists {
			diff.Removed = append(diff.Removed, fc)
		}
	}

	return diff
}

// diffControlProps compares the displayed properties of two controls that
// were matched by content hash. A property missing on one side appears as
// an empty string in the pair.
func diffControlProps(prev, curr FlatControl) map[string][2]string {
	diffs := make(map[string][2]string)

	for name, prevVal := range prev.Props {
		if currVal := curr.Props[name]; currVal != prevVal {
			diffs[name] = [2]string{prevVal, currVal}
		}
	}
	for name, currVal := range curr.Props {
		if _, ok := prev.Props[name]; !ok {
			diffs[name] = [2]string{"", currVal}
		}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}
