package defaults

import (
	"reflect"
	"time"

	"struct-migrator/internal/shape"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies the types that have a builtin default.
type Kind int

const (
	_ Kind = iota // zero value means the type has no builtin default

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString
	KindTime
	KindDuration
	KindBytes   // []byte, defaults to an empty sequence
	KindStrings // []string, defaults to an empty sequence

	// KindTotal is the number of defined kinds, including the zero value.
	KindTotal = int(iota)
)

var kindTypes = [KindTotal]reflect.Type{
	KindInt:      reflect.TypeFor[int](),
	KindInt8:     reflect.TypeFor[int8](),
	KindInt16:    reflect.TypeFor[int16](),
	KindInt32:    reflect.TypeFor[int32](),
	KindInt64:    reflect.TypeFor[int64](),
	KindUint:     reflect.TypeFor[uint](),
	KindUint8:    reflect.TypeFor[uint8](),
	KindUint16:   reflect.TypeFor[uint16](),
	KindUint32:   reflect.TypeFor[uint32](),
	KindUint64:   reflect.TypeFor[uint64](),
	KindFloat32:  reflect.TypeFor[float32](),
	KindFloat64:  reflect.TypeFor[float64](),
	KindBool:     reflect.TypeFor[bool](),
	KindString:   reflect.TypeFor[string](),
	KindTime:     reflect.TypeFor[time.Time](),
	KindDuration: reflect.TypeFor[time.Duration](),
	KindBytes:    reflect.TypeFor[[]byte](),
	KindStrings:  reflect.TypeFor[[]string](),
}

// IsNumber reports whether k is an integer or floating-point kind.
func (k Kind) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		return true
	}
}

// IsSequence reports whether k is a list-like kind.
func (k Kind) IsSequence() bool {
	return k == KindBytes || k == KindStrings
}

// Type returns the Go type of k, or nil for the zero kind.
func (k Kind) Type() reflect.Type {
	if k <= 0 || int(k) >= KindTotal {
		return nil
	}

	return kindTypes[k]
}

// Tag returns the type tag of k.
func (k Kind) Tag() shape.TypeTag {
	if t := k.Type(); t != nil {
		return shape.TagOf(t)
	}

	return ""
}

// Empty returns the canonical empty value of k: zero for numbers and
// booleans, "" for strings, the zero time, and an empty (non-nil)
// sequence for list-like kinds.
func (k Kind) Empty() any {
	t := k.Type()
	switch {
	case t == nil:
		return nil
	case k.IsSequence():
		return reflect.MakeSlice(t, 0, 0).Interface()
	default:
		return reflect.Zero(t).Interface()
	}
}

// KindOf classifies a type tag. Unknown tags yield the zero Kind.
func KindOf(tag shape.TypeTag) Kind {
	for k := Kind(1); int(k) < KindTotal; k++ {
		if k.Tag() == tag {
			return k
		}
	}

	return 0
}
