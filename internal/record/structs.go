package record

import (
	"fmt"
	"reflect"

	"struct-migrator/internal/defaults"
	"struct-migrator/internal/shape"
)

// FromStruct builds a record from a struct (or pointer to struct), using
// the shape derived by shape.FromStruct.
func FromStruct(v any) (Record, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Record{}, fmt.Errorf("nil %s", rv.Type())
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return Record{}, fmt.Errorf("%T is not a struct", v)
	}

	s, err := shape.FromStruct(rv.Type())
	if err != nil {
		return Record{}, err
	}

	fields := shape.StructFields(rv.Type())
	values := make([]any, len(fields))
	for i, sf := range fields {
		values[i] = rv.FieldByIndex(sf.Index).Interface()
	}

	return Record{shape: s, values: values}, nil
}

// Into writes the record into the struct pointed to by dst. The struct's
// shape must declare exactly the record's fields with the same types;
// declaration order may differ. Literal values (bools, strings and
// numbers) are converted to named field types of the same kind, such as a
// string into a `type Status string` field.
func (r Record) Into(dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("destination must be a non-nil pointer to struct, got %T", dst)
	}

	rv = rv.Elem()

	target, err := shape.FromStruct(rv.Type())
	if err != nil {
		return err
	}

	if target.Len() != r.shape.Len() {
		return fmt.Errorf("%s has %d fields, record %s has %d", rv.Type(), target.Len(), r.shape.Name(), r.shape.Len())
	}

	fields := shape.StructFields(rv.Type())
	for i, sf := range fields {
		f := target.Field(i)

		j, ok := r.shape.Index(f.Name)
		if !ok || r.shape.Field(j).Type != f.Type {
			return fmt.Errorf("%s field %s is not in record %s", rv.Type(), f, r.shape)
		}

		fv := rv.FieldByIndex(sf.Index)
		if r.values[j] == nil {
			fv.SetZero()
			continue
		}

		val := reflect.ValueOf(r.values[j])
		if !val.Type().AssignableTo(fv.Type()) {
			converted, ok := defaults.ConvertLiteral(val, fv.Type())
			if !ok {
				return fmt.Errorf("field %s: cannot assign %s to %s", f.Name, val.Type(), fv.Type())
			}

			val = converted
		}

		fv.Set(val)
	}

	return nil
}
