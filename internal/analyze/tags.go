package analyze

import (
	"fmt"
	"go/types"
	"reflect"

	"struct-migrator/internal/common"
	"struct-migrator/internal/shape"
)

// TagOf returns the type tag of a go/types type. It agrees with
// shape.TagOf for the same type observed through reflection.
func TagOf(t types.Type) shape.TypeTag {
	t = types.Unalias(t)

	switch tt := t.(type) {
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() == nil {
			return shape.TypeTag(obj.Name())
		}

		return shape.TypeTag(common.QualifiedName(obj.Pkg().Path(), obj.Name()))
	case *types.Basic:
		// byte and rune are reported under their underlying names.
		return shape.TypeTag(types.Typ[tt.Kind()].Name())
	case *types.Pointer:
		return "*" + TagOf(tt.Elem())
	case *types.Slice:
		return "[]" + TagOf(tt.Elem())
	case *types.Array:
		return shape.TypeTag(fmt.Sprintf("[%d]", tt.Len())) + TagOf(tt.Elem())
	case *types.Map:
		return "map[" + TagOf(tt.Key()) + "]" + TagOf(tt.Elem())
	default:
		return shape.TypeTag(types.TypeString(t, nil))
	}
}

// fieldName applies the same `migrate` tag rules as shape.FieldName.
// The second result is false for fields excluded from the shape.
func fieldName(v *types.Var, tag string) (string, bool) {
	if !v.Exported() || v.Embedded() {
		return "", false
	}

	name := reflect.StructTag(tag).Get(shape.TagKey)
	switch name {
	case "-":
		return "", false
	case "":
		return v.Name(), true
	default:
		return name, true
	}
}
