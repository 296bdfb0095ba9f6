package inspect

import (
	"fmt"
	"reflect"
)

// propertyNames is the fixed, ordered allow-list of attributes worth
// displaying. Output order is always this order, never insertion or
// alphabetical order, so dumps stay diffable across runs.
var propertyNames = []string{
	"text", "value", "width", "height", "bgcolor", "color",
	"visible", "disabled", "tooltip", "key", "data", "route",
	"title", "label", "hint_text", "padding", "margin",
}

// Property is one displayed (name, value) pair. Value is normalized to a
// string, bool, int64, uint64, float64, or Enum.
type Property struct {
	Name  string
	Value any
}

// Enum is the descriptive name of an enum-like value (a fmt.Stringer),
// rendered bare rather than quoted.
type Enum string

// Properties projects a node onto the ordered property allow-list.
//
// Inclusion rules: absent attributes and nil values are skipped; empty
// strings are skipped; booleans are always included (visible and disabled
// are structurally significant regardless of value); plain numeric zero is
// treated as the unset sentinel and skipped, but any value reached through
// a non-nil pointer is included even when zero; enum-like values appear
// through their fmt.Stringer name. Node-shaped values are never
// properties, even when they implement fmt.Stringer; they belong to the
// child relations. A failure while reading or converting one property
// drops that property only.
func Properties(node any) []Property {
	var props []Property
	for _, name := range propertyNames {
		if p, ok := property(node, name); ok {
			props = append(props, p)
		}
	}
	return props
}

func property(node any, name string) (p Property, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	raw, present := Get(node, name)
	if !present {
		return Property{}, false
	}

	if IsNode(raw) {
		return Property{}, false // child territory, see children.go
	}

	if s, isStringer := raw.(fmt.Stringer); isStringer {
		desc := s.String()
		if desc == "" {
			return Property{}, false
		}
		return Property{Name: name, Value: Enum(desc)}, true
	}

	rv := reflect.ValueOf(raw)
	forced := false
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Property{}, false
		}
		forced = true
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		s := rv.String()
		if s == "" {
			return Property{}, false
		}
		return Property{Name: name, Value: s}, true
	case reflect.Bool:
		return Property{Name: name, Value: rv.Bool()}, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n == 0 && !forced {
			return Property{}, false
		}
		return Property{Name: name, Value: n}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := rv.Uint()
		if n == 0 && !forced {
			return Property{}, false
		}
		return Property{Name: name, Value: n}, true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == 0 && !forced {
			return Property{}, false
		}
		return Property{Name: name, Value: f}, true
	}
	return Property{}, false
}
