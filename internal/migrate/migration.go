package migrate

import (
	"fmt"
	"reflect"
	"strings"

	"struct-migrator/internal/defaults"
	"struct-migrator/internal/diagnostic"
	"struct-migrator/internal/record"
	"struct-migrator/internal/shape"
)

// Migration converts records of a source shape into records of a target
// shape. It is immutable and safe for concurrent use.
type Migration struct {
	source  shape.Shape
	target  shape.Shape
	steps   []Step
	dropped []shape.Field
	diags   diagnostic.Diagnostics
}

// Source returns the source shape.
func (m *Migration) Source() shape.Shape {
	return m.source
}

// Target returns the target shape.
func (m *Migration) Target() shape.Shape {
	return m.target
}

// Plan returns one step per target field, in the target's order. Default
// values are copies; changing them does not affect the migration.
func (m *Migration) Plan() []Step {
	steps := make([]Step, len(m.steps))
	for i, s := range m.steps {
		s.Default = deepCopy(s.Default)
		steps[i] = s
	}

	return steps
}

// Dropped returns the source fields that do not reach the target.
func (m *Migration) Dropped() []shape.Field {
	return append([]shape.Field(nil), m.dropped...)
}

// Diagnostics returns the warnings and notes collected while deriving.
func (m *Migration) Diagnostics() diagnostic.Diagnostics {
	var d diagnostic.Diagnostics
	d.Merge(m.diags)

	return d
}

// Apply converts r, which must be a record of the source shape, into a
// record of the target shape. Common fields are copied unchanged and added
// fields take a fresh copy of their captured defaults, so outputs never
// share maps, slices or pointers with each other or with the migration. Apply panics if r has a different
// shape; it never fails otherwise.
func (m *Migration) Apply(r record.Record) record.Record {
	if r.Shape().Fingerprint() != m.source.Fingerprint() {
		panic(fmt.Sprintf("migrate: record of shape %s passed to migration from %s", r.Shape(), m.source))
	}

	return m.apply(r)
}

func (m *Migration) apply(r record.Record) record.Record {
	values := make([]any, len(m.steps))
	for i, s := range m.steps {
		if s.Strategy == StrategyCopy {
			values[i] = r.Value(s.SourceIndex)
		} else {
			values[i] = deepCopy(s.Default)
		}
	}

	return record.MustNew(m.target, values...)
}

// ApplyStruct reads src (a struct of the source shape), migrates it and
// writes the result into dst (a pointer to a struct of the target shape).
func (m *Migration) ApplyStruct(src, dst any) error {
	in, err := record.FromStruct(src)
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	if in.Shape().Fingerprint() != m.source.Fingerprint() {
		return fmt.Errorf("%T does not have source shape %s", src, m.source)
	}

	if err := m.apply(in).Into(dst); err != nil {
		return fmt.Errorf("writing target: %w", err)
	}

	return nil
}

// String renders the plan, one target field per line.
func (m *Migration) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s -> %s\n", m.source.Name(), m.target.Name())

	for _, s := range m.steps {
		fmt.Fprintf(&b, "  %-20s %-8s %s\n", s.Target, s.Strategy, s.Explanation())
	}

	for _, f := range m.dropped {
		fmt.Fprintf(&b, "  %-20s %-8s\n", f, "dropped")
	}

	return b.String()
}

// For derives the migration between the shapes of struct types A and B.
func For[A, B any](reg defaults.Lookup) (*Migration, error) {
	a, err := shape.FromStruct(reflect.TypeFor[A]())
	if err != nil {
		return nil, err
	}

	b, err := shape.FromStruct(reflect.TypeFor[B]())
	if err != nil {
		return nil, err
	}

	return Derive(a, b, reg)
}

// Convert migrates a into a new B using m.
func Convert[A, B any](m *Migration, a A) (B, error) {
	var b B

	err := m.ApplyStruct(a, &b)

	return b, err
}
