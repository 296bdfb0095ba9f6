package inspect

import (
	"fmt"
	"reflect"
	"strings"
)

// Get reads the named attribute off an arbitrary node value. It returns the
// attribute value and whether it was present. It never panics: a missing
// attribute, an unexported field, a nil map or pointer, or a value that
// cannot be introspected all report absence.
//
// Attribute names use the snake_case form ("hint_text"); on struct nodes
// they are matched case-insensitively against exported field names with
// underscores removed, so "hint_text" matches a HintText field.
func Get(node any, name string) (value any, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			value, ok = nil, false
		}
	}()

	v := reflect.ValueOf(node)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		return attrValue(v.MapIndex(reflect.ValueOf(name)))
	case reflect.Struct:
		want := strings.ReplaceAll(name, "_", "")
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" {
				continue // unexported
			}
			if strings.EqualFold(f.Name, want) {
				return attrValue(v.Field(i))
			}
		}
	}
	return nil, false
}

// attrValue unwraps interface wrappers and maps nil values to absent.
// Pointers are kept as-is so node identity survives for cycle detection.
func attrValue(v reflect.Value) (any, bool) {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if !v.IsValid() || !v.CanInterface() {
		return nil, false
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, false
	}
	return v.Interface(), true
}

// IsNode reports whether v has the introspectable shape of a UI control:
// a struct, a non-nil pointer to struct, or a string-keyed map carrying a
// string "type" entry. Everything else may contribute a property at most,
// never a child.
func IsNode(v any) bool {
	nv, kind := nodeValue(v)
	switch kind {
	case nodeStruct:
		return true
	case nodeMap:
		t := nv.MapIndex(reflect.ValueOf("type"))
		for t.Kind() == reflect.Interface {
			t = t.Elem()
		}
		return t.IsValid() && t.Kind() == reflect.String
	}
	return false
}

// TypeName derives the display type name of a node: the struct type's name,
// or the map's "type" entry. Non-node values fall back to their dynamic
// Go type.
func TypeName(v any) string {
	nv, kind := nodeValue(v)
	switch kind {
	case nodeStruct:
		if name := nv.Type().Name(); name != "" {
			return name
		}
	case nodeMap:
		t := nv.MapIndex(reflect.ValueOf("type"))
		for t.Kind() == reflect.Interface {
			t = t.Elem()
		}
		if t.IsValid() && t.Kind() == reflect.String {
			return t.String()
		}
	}
	return fmt.Sprintf("%T", v)
}

type nodeKind int

const (
	nodeNone nodeKind = iota
	nodeStruct
	nodeMap
)

func nodeValue(v any) (reflect.Value, nodeKind) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, nodeNone
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return rv, nodeStruct
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return rv, nodeMap
		}
	}
	return reflect.Value{}, nodeNone
}

// identity returns a reference identity for pointer and map nodes. Plain
// struct values are copied on access and cannot form cycles, so they carry
// no identity.
func identity(v any) (uintptr, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	}
	return 0, false
}
