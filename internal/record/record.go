package record

import (
	"fmt"
	"strings"

	"struct-migrator/internal/defaults"
	"struct-migrator/internal/shape"
)

// Record is a value of a shape: one value per field, in the shape's order.
type Record struct {
	shape  shape.Shape
	values []any
}

// New builds a record from values given in the shape's field order.
// Values of builtin-kind fields must have exactly the field's type.
func New(s shape.Shape, values ...any) (Record, error) {
	if len(values) != s.Len() {
		return Record{}, fmt.Errorf("shape %s has %d fields, got %d values", s.Name(), s.Len(), len(values))
	}

	if err := checkValues(s, values); err != nil {
		return Record{}, err
	}

	return Record{shape: s, values: append([]any(nil), values...)}, nil
}

// checkValues verifies the values of builtin-kind fields against their tags.
func checkValues(s shape.Shape, values []any) error {
	for i, v := range values {
		f := s.Field(i)
		if err := defaults.CheckKind(f.Type, v); err != nil {
			return fmt.Errorf("shape %s field %s: %w", s.Name(), f.Name, err)
		}
	}

	return nil
}

// MustNew is like New but panics on error.
func MustNew(s shape.Shape, values ...any) Record {
	r, err := New(s, values...)
	if err != nil {
		panic(err)
	}

	return r
}

// FromMap builds a record from a name -> value map. Every field of the
// shape must be present and no other keys are allowed.
func FromMap(s shape.Shape, m map[string]any) (Record, error) {
	values := make([]any, s.Len())

	var missing []string
	for i, name := range s.Names() {
		v, ok := m[name]
		if !ok {
			missing = append(missing, name)
			continue
		}

		values[i] = v
	}

	if len(missing) > 0 {
		return Record{}, fmt.Errorf("shape %s: missing values for %s", s.Name(), strings.Join(missing, ", "))
	}

	if len(m) != s.Len() {
		for name := range m {
			if _, ok := s.Index(name); !ok {
				return Record{}, fmt.Errorf("shape %s has no field %q", s.Name(), name)
			}
		}
	}

	if err := checkValues(s, values); err != nil {
		return Record{}, err
	}

	return Record{shape: s, values: values}, nil
}

// Shape returns the record's shape.
func (r Record) Shape() shape.Shape {
	return r.shape
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.values)
}

// Value returns the value of the i-th field.
func (r Record) Value(i int) any {
	return r.values[i]
}

// Get returns the value of the named field.
func (r Record) Get(name string) (any, bool) {
	i, ok := r.shape.Index(name)
	if !ok {
		return nil, false
	}

	return r.values[i], true
}

// Values returns a copy of the values in field order.
func (r Record) Values() []any {
	return append([]any(nil), r.values...)
}

// Map returns the values keyed by field name.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.values))
	for i, v := range r.values {
		m[r.shape.Field(i).Name] = v
	}

	return m
}

// String renders the record as Name{field: value, ...} in field order.
func (r Record) String() string {
	var b strings.Builder
	b.WriteString(r.shape.Name())
	b.WriteByte('{')

	for i, v := range r.values {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(r.shape.Field(i).Name)
		b.WriteString(": ")

		if s, ok := v.(string); ok {
			b.WriteString(fmt.Sprintf("%q", s))
		} else {
			b.WriteString(fmt.Sprint(v))
		}
	}

	b.WriteByte('}')

	return b.String()
}
