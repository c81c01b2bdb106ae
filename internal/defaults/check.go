package defaults

import (
	"fmt"
	"reflect"
	"strings"

	"struct-migrator/internal/shape"
)

// CheckKind reports whether v is a valid value for a field of a builtin
// kind. Tags without a builtin Kind are not checked. nil is only valid
// for sequence kinds.
func CheckKind(tag shape.TypeTag, v any) error {
	k := KindOf(tag)
	if k == 0 {
		return nil
	}

	if v == nil {
		if k.IsSequence() {
			return nil
		}

		return fmt.Errorf("nil is not a valid %s", tag)
	}

	if got := shape.TagOf(reflect.TypeOf(v)); got != tag {
		return fmt.Errorf("%s value %v is not a %s", got, v, tag)
	}

	return nil
}

// CheckDefault reports whether v can populate a field of type tag.
//
//   - builtin kinds need a value of exactly that type (see CheckKind)
//   - composite tags (pointer, slice, array, map) need a value of exactly
//     that type, or nil for pointers, slices and maps
//   - interface tags ("any", "error", "interface{...}") accept anything
//   - other named tags accept a value of that type, nil, or a bool,
//     string or number literal of the underlying type
func CheckDefault(tag shape.TypeTag, v any) error {
	if KindOf(tag) != 0 {
		return CheckKind(tag, v)
	}

	if isInterfaceTag(tag) {
		return nil
	}

	if v == nil {
		if isArrayTag(tag) {
			return fmt.Errorf("nil is not a valid %s", tag)
		}

		return nil
	}

	rt := reflect.TypeOf(v)
	if shape.TagOf(rt) == tag {
		return nil
	}

	if !isCompositeTag(tag) && isLiteralKind(rt.Kind()) {
		return nil
	}

	return fmt.Errorf("%s value %v cannot be used as %s", shape.TagOf(rt), v, tag)
}

func isCompositeTag(tag shape.TypeTag) bool {
	s := string(tag)
	return strings.HasPrefix(s, "*") || strings.HasPrefix(s, "[") || strings.HasPrefix(s, "map[")
}

func isArrayTag(tag shape.TypeTag) bool {
	s := string(tag)
	return strings.HasPrefix(s, "[") && !strings.HasPrefix(s, "[]")
}

func isInterfaceTag(tag shape.TypeTag) bool {
	s := string(tag)
	return s == "any" || s == "error" || strings.HasPrefix(s, "interface {") || strings.HasPrefix(s, "interface{")
}

func isLiteralKind(k reflect.Kind) bool {
	return k == reflect.Bool || k == reflect.String || isNumeric(k)
}
