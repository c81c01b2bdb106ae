package gen

import (
	"fmt"
	"go/types"
	"reflect"
	"strconv"

	"struct-migrator/internal/defaults"
	"struct-migrator/internal/shape"
)

// literal renders v as a Go expression assignable to a field of type t.
// Zero values render as "" so the field is left out of the literal. v
// must fit t: a string for a string-based type, a number representable in
// a numeric type, an empty slice or map for a slice or map type.
func literal(v any, t types.Type, qf types.Qualifier) (string, error) {
	if v == nil {
		return "", nil
	}

	rv := reflect.ValueOf(v)
	if err := checkLiteral(rv, t); err != nil {
		return "", err
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return "", nil
		}

		if rv.Len() == 0 {
			return types.TypeString(t, qf) + "{}", nil
		}

		return "", fmt.Errorf("cannot render non-empty %s default", rv.Type())
	}

	if rv.IsZero() {
		return "", nil
	}

	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String()), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("cannot render %s default %v", rv.Type(), v)
	}
}

// checkLiteral reports whether a default of rv's kind can be written as a
// literal of type t. Numbers must be representable in t's basic type.
func checkLiteral(rv reflect.Value, t types.Type) error {
	mismatch := fmt.Errorf("cannot use %s default %v as %s", rv.Type(), rv, types.TypeString(t, nil))
	under := t.Underlying()

	switch rv.Kind() {
	case reflect.Slice:
		if _, ok := under.(*types.Slice); !ok {
			return mismatch
		}

		return nil
	case reflect.Map:
		if _, ok := under.(*types.Map); !ok {
			return mismatch
		}

		return nil
	case reflect.Pointer:
		if _, ok := under.(*types.Pointer); !ok || !rv.IsNil() {
			return mismatch
		}

		return nil
	}

	b, ok := under.(*types.Basic)
	if !ok {
		return mismatch
	}

	info := b.Info()

	switch rv.Kind() {
	case reflect.String:
		ok = info&types.IsString != 0
	case reflect.Bool:
		ok = info&types.IsBoolean != 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		ok = info&types.IsNumeric != 0
		if ok {
			if _, err := defaults.Coerce(shape.TypeTag(types.Typ[b.Kind()].Name()), rv.Interface()); err != nil {
				return fmt.Errorf("%w: %w", mismatch, err)
			}
		}
	default:
		ok = false
	}

	if !ok {
		return mismatch
	}

	return nil
}
