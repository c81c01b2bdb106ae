package shape

import (
	"fmt"
	"reflect"

	"struct-migrator/internal/common"
)

// TagOf returns the type tag of a Go type. Named types are qualified by
// their full package path, so tags agree with go/types.TypeString(t, nil).
func TagOf(t reflect.Type) TypeTag {
	if t.Name() != "" {
		return TypeTag(common.QualifiedName(t.PkgPath(), t.Name()))
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + TagOf(t.Elem())
	case reflect.Slice:
		return "[]" + TagOf(t.Elem())
	case reflect.Array:
		return TypeTag(fmt.Sprintf("[%d]", t.Len())) + TagOf(t.Elem())
	case reflect.Map:
		return "map[" + TagOf(t.Key()) + "]" + TagOf(t.Elem())
	default:
		return TypeTag(t.String())
	}
}

// TagFor returns the type tag of T.
func TagFor[T any]() TypeTag {
	return TagOf(reflect.TypeFor[T]())
}

// FromStruct derives a shape from the exported fields of a struct type,
// in declaration order. The shape is named after the type. Field names
// come from the `migrate` struct tag when present; `migrate:"-"` skips
// the field.
func FromStruct(t reflect.Type) (Shape, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return Shape{}, fmt.Errorf("%s is not a struct type", t)
	}

	fields := make([]Field, 0, t.NumField())
	for _, sf := range StructFields(t) {
		fields = append(fields, Field{Name: FieldName(sf), Type: TagOf(sf.Type)})
	}

	return New(t.Name(), fields...)
}

// StructFields returns the struct fields that take part in a shape,
// in declaration order.
func StructFields(t reflect.Type) []reflect.StructField {
	var out []reflect.StructField
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Anonymous || sf.Tag.Get(TagKey) == "-" {
			continue
		}

		out = append(out, sf)
	}

	return out
}

// TagKey is the struct tag key overriding a field's shape name.
const TagKey = "migrate"

// FieldName returns the shape field name of a struct field.
func FieldName(sf reflect.StructField) string {
	if name := sf.Tag.Get(TagKey); name != "" {
		return name
	}

	return sf.Name
}
