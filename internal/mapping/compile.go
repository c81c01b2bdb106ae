package mapping

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/go-playground/validator/v10"

	"struct-migrator/internal/defaults"
	"struct-migrator/internal/diagnostic"
	"struct-migrator/internal/record"
	"struct-migrator/internal/shape"
)

// Set is a compiled definition: shapes, a defaults registry and the
// migration pairs and records they refer to.
type Set struct {
	Shapes     []shape.Shape
	Registry   *defaults.Registry
	Migrations []Pair
	Records    []record.Record
}

// Pair is a migration request between two declared shapes.
type Pair struct {
	Source shape.Shape
	Target shape.Shape
}

// Shape returns the declared shape with the given name.
func (s *Set) Shape(name string) (shape.Shape, bool) {
	for _, sh := range s.Shapes {
		if sh.Name() == name {
			return sh, true
		}
	}

	return shape.Shape{}, false
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Compile validates def and builds its shapes, registry, migration pairs
// and records. Defaults from def are registered on top of base (which may
// be nil) in a new registry; base itself is not modified. Everything that
// is wrong with def is reported in the returned diagnostics.
func Compile(def *Definition, base *defaults.Registry) (*Set, diagnostic.Diagnostics) {
	c := &compiler{set: &Set{Registry: defaults.NewRegistry()}}

	if def == nil {
		c.diags.AddError(diagnostic.CodeInvalidDefinition, "definition is nil", "", "")
		return nil, c.diags
	}

	if err := validate.Struct(def); err != nil {
		c.reportValidation(err)
		return nil, c.diags
	}

	c.registry(def, base)
	c.shapes(def)
	c.migrations(def)
	c.records(def)

	if c.diags.HasErrors() {
		return nil, c.diags
	}

	return c.set, c.diags
}

type compiler struct {
	set   *Set
	diags diagnostic.Diagnostics
}

func (c *compiler) reportValidation(err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.diags.AddError(diagnostic.CodeInvalidDefinition, err.Error(), "", "")
		return
	}

	for _, fe := range verrs {
		c.diags.AddError(diagnostic.CodeInvalidDefinition,
			fmt.Sprintf("failed %q constraint", fe.Tag()), "", fe.Namespace())
	}
}

func (c *compiler) registry(def *Definition, base *defaults.Registry) {
	if base != nil {
		for _, tag := range base.Tags() {
			p, _ := base.Provider(tag)
			_ = c.set.Registry.Register(tag, p)
		}
	}

	for _, tag := range slices.Sorted(maps.Keys(def.Defaults)) {
		v, err := defaults.Coerce(shape.TypeTag(tag), def.Defaults[tag])
		if err != nil {
			c.diags.AddError(diagnostic.CodeInvalidDefinition, err.Error(), "", "defaults."+tag)
			continue
		}

		if err := c.set.Registry.RegisterValue(shape.TypeTag(tag), v); err != nil {
			c.diags.AddError(diagnostic.CodeInvalidDefinition, err.Error(), "", "defaults."+tag)
		}
	}
}

func (c *compiler) shapes(def *Definition) {
	seen := make(map[string]bool, len(def.Shapes))

	for _, sd := range def.Shapes {
		if seen[sd.Name] {
			c.diags.AddError(diagnostic.CodeInvalidDefinition,
				fmt.Sprintf("shape %q is declared more than once", sd.Name), sd.Name, "")
			continue
		}
		seen[sd.Name] = true

		fields := make([]shape.Field, len(sd.Fields))
		for i, fd := range sd.Fields {
			fields[i] = shape.Field{Name: fd.Name, Type: shape.TypeTag(fd.Type)}
		}

		s, err := shape.New(sd.Name, fields...)
		if err != nil {
			c.fail(err)
			continue
		}

		c.set.Shapes = append(c.set.Shapes, s)
	}
}

func (c *compiler) migrations(def *Definition) {
	for _, md := range def.Migrations {
		pair := md.Source + "->" + md.Target

		src, ok := c.lookup(md.Source, pair)
		if !ok {
			continue
		}

		dst, ok := c.lookup(md.Target, pair)
		if !ok {
			continue
		}

		c.set.Migrations = append(c.set.Migrations, Pair{Source: src, Target: dst})
	}
}

func (c *compiler) records(def *Definition) {
	for i, rd := range def.Records {
		s, ok := c.lookup(rd.Shape, fmt.Sprintf("records[%d]", i))
		if !ok {
			continue
		}

		bad := false
		values := make(map[string]any, len(rd.Values))
		for name, lit := range rd.Values {
			f, ok := s.Lookup(name)
			if !ok {
				values[name] = lit
				continue
			}

			v, err := defaults.Coerce(f.Type, lit)
			if err != nil {
				c.diags.AddError(diagnostic.CodeInvalidDefinition, err.Error(), s.Name(),
					fmt.Sprintf("records[%d].%s", i, name))
				bad = true
				continue
			}

			values[name] = v
		}

		if bad {
			continue
		}

		r, err := record.FromMap(s, values)
		if err != nil {
			c.diags.AddError(diagnostic.CodeInvalidDefinition, err.Error(), s.Name(), fmt.Sprintf("records[%d]", i))
			continue
		}

		c.set.Records = append(c.set.Records, r)
	}
}

func (c *compiler) lookup(name, context string) (shape.Shape, bool) {
	s, ok := c.set.Shape(name)
	if !ok {
		c.diags.AddError(diagnostic.CodeUnknownShape, fmt.Sprintf("shape %q is not declared", name), context, "")
	}

	return s, ok
}

// fail records every *diagnostic.Error joined in err.
func (c *compiler) fail(err error) {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		c.diags.AddError(diagnostic.CodeInvalidDefinition, err.Error(), "", "")
		return
	}

	for _, e := range joined.Unwrap() {
		var de *diagnostic.Error
		if errors.As(e, &de) {
			c.diags.Fail(de)
		}
	}
}
