package shape

import (
	"fmt"
	"strings"

	"struct-migrator/internal/common"
	"struct-migrator/internal/diagnostic"
)

// TypeTag identifies a field's value type, e.g. "int", "string" or
// "example.com/store.Status". Two fields have the same type iff their tags are equal.
type TypeTag string

// String returns the tag text.
func (t TypeTag) String() string {
	return string(t)
}

// Field is a named, typed slot of a record shape.
type Field struct {
	Name string
	Type TypeTag
}

// String renders the field as "name:type".
func (f Field) String() string {
	return f.Name + ":" + string(f.Type)
}

// Shape is an ordered sequence of fields with unique names. The zero value
// is an empty, unnamed shape. Shapes are immutable once created.
type Shape struct {
	name   string
	fields []Field
	index  map[string]int
}

// New creates a shape. It fails with diagnostic.ErrDuplicateFieldName
// (one joined error per repeated name) if a field name occurs twice.
func New(name string, fields ...Field) (Shape, error) {
	var diags diagnostic.Diagnostics

	index := common.IndexBy(fields, func(f Field) string { return f.Name })
	for i, f := range fields {
		if index[f.Name] != i {
			diags.Fail(&diagnostic.Error{
				Code:     diagnostic.CodeDuplicateFieldName,
				TypePair: name,
				Field:    f.Name,
				Message:  fmt.Sprintf("field %q is declared more than once", f.Name),
			})
		}
	}

	if err := diags.Err(); err != nil {
		return Shape{}, err
	}

	return Shape{
		name:   name,
		fields: append([]Field(nil), fields...),
		index:  index,
	}, nil
}

// MustNew is like New but panics on error. Intended for package-level shapes.
func MustNew(name string, fields ...Field) Shape {
	s, err := New(name, fields...)
	if err != nil {
		panic(err)
	}

	return s
}

// Name returns the shape's name.
func (s Shape) Name() string {
	return s.name
}

// Len returns the number of fields.
func (s Shape) Len() int {
	return len(s.fields)
}

// Field returns the i-th field in declared order.
func (s Shape) Field(i int) Field {
	return s.fields[i]
}

// Fields returns a copy of the fields in declared order.
func (s Shape) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Names returns the field names in declared order.
func (s Shape) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}

	return names
}

// Index returns the position of the named field.
func (s Shape) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Lookup returns the named field.
func (s Shape) Lookup(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}

	return s.fields[i], true
}

// Has reports whether the shape declares f with the same name and type.
func (s Shape) Has(f Field) bool {
	got, ok := s.Lookup(f.Name)
	return ok && got.Type == f.Type
}

// Fingerprint is a canonical rendering of the shape's fields in order.
// Shapes with equal fingerprints are interchangeable for migration purposes.
func (s Shape) Fingerprint() string {
	parts := make([]string, len(s.fields))
	for i, f := range s.fields {
		parts[i] = f.String()
	}

	return "{" + strings.Join(parts, ",") + "}"
}

// String returns the name followed by the fingerprint.
func (s Shape) String() string {
	return s.name + s.Fingerprint()
}
