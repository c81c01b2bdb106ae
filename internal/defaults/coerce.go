package defaults

import (
	"fmt"
	"reflect"
	"time"

	"struct-migrator/internal/shape"
)

// Coerce converts a decoded literal (as produced by YAML or TOML decoders)
// into the Go type of tag's Kind. Tags without a builtin Kind are returned
// unchanged, as are nil literals.
func Coerce(tag shape.TypeTag, v any) (any, error) {
	k := KindOf(tag)
	if k == 0 || v == nil {
		return v, nil
	}

	rv := reflect.ValueOf(v)
	target := k.Type()

	if rv.Type() == target {
		return v, nil
	}

	switch {
	case k.IsNumber():
		if !isNumeric(rv.Kind()) {
			break
		}

		out, ok := ConvertLiteral(rv, target)
		if !ok {
			return nil, fmt.Errorf("%v cannot be represented as %s", v, tag)
		}

		return out.Interface(), nil

	case k == KindDuration:
		switch lit := v.(type) {
		case string:
			return time.ParseDuration(lit)
		case int, int64:
			return time.Duration(rv.Int()), nil
		}

	case k == KindTime:
		if s, ok := v.(string); ok {
			return time.Parse(time.RFC3339Nano, s)
		}

	case k == KindBytes:
		if s, ok := v.(string); ok {
			return []byte(s), nil
		}

	case k == KindStrings:
		items, ok := v.([]any)
		if !ok {
			break
		}

		out := make([]string, len(items))
		for i, item := range items {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d of %s: %T is not a string", i, tag, item)
			}

			out[i] = s
		}

		return out, nil
	}

	return nil, fmt.Errorf("cannot use %T literal %v as %s", v, v, tag)
}

// ConvertLiteral converts a bool, string or number to t when t has the
// same kind, or is numeric and represents the value exactly. Conversions
// to floating-point types may round.
func ConvertLiteral(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	from, to := v.Kind(), t.Kind()

	switch {
	case from == to && isLiteralKind(from):
		return v.Convert(t), true
	case isNumeric(from) && isNumeric(to):
		out := v.Convert(t)
		if to == reflect.Float32 || to == reflect.Float64 {
			return out, true
		}

		if !out.Convert(v.Type()).Equal(v) || isNegative(v) != isNegative(out) {
			return reflect.Value{}, false
		}

		return out, true
	default:
		return reflect.Value{}, false
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isNegative(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() < 0
	case reflect.Float32, reflect.Float64:
		return v.Float() < 0
	default:
		return false
	}
}
