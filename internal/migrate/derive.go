package migrate

import (
	"fmt"

	"struct-migrator/internal/defaults"
	"struct-migrator/internal/diagnostic"
	"struct-migrator/internal/match"
	"struct-migrator/internal/shape"
)

// snapshotter is implemented by registries that can be frozen for the
// duration of a derivation.
type snapshotter interface {
	Snapshot() defaults.Snapshot
}

// Derive computes the migration from shape a to shape b. Defaults for
// fields only present in b are resolved from reg and captured. On failure
// no Migration is returned and the error joins one *diagnostic.Error per
// problem; errors.Is matches diagnostic.ErrMissingDefaultProvider,
// diagnostic.ErrInvalidDefault and diagnostic.ErrIncompleteMigration.
func Derive(a, b shape.Shape, reg defaults.Lookup) (*Migration, error) {
	m, diags := Resolve(a, b, reg)
	if diags.HasErrors() {
		return nil, diags.Err()
	}

	return m, nil
}

// Resolve is Derive returning the full diagnostics, including warnings
// about dropped or retyped fields and rename suggestions. The Migration is
// nil whenever diags has errors.
func Resolve(a, b shape.Shape, reg defaults.Lookup) (*Migration, diagnostic.Diagnostics) {
	if s, ok := reg.(snapshotter); ok {
		reg = s.Snapshot()
	}

	d := &deriver{a: a, b: b, reg: reg, pair: a.Name() + "->" + b.Name()}

	common := d.intersect()
	added := d.added()
	defs := d.synthesize(added)
	steps := d.realign(common, defs)
	d.report()

	if d.diags.HasErrors() {
		return nil, d.diags
	}

	return &Migration{
		source:  a,
		target:  b,
		steps:   steps,
		dropped: shape.Dropped(a, b),
		diags:   d.diags,
	}, d.diags
}

type deriver struct {
	a, b  shape.Shape
	reg   defaults.Lookup
	pair  string
	diags diagnostic.Diagnostics
}

// intersect maps each common field name to its index in a, walking a's order.
func (d *deriver) intersect() map[string]int {
	common := make(map[string]int)
	for i, f := range d.a.Fields() {
		if d.b.Has(f) {
			common[f.Name] = i
		}
	}

	return common
}

// added lists b's fields not matched by name and type in a, in b's order.
func (d *deriver) added() []shape.Field {
	return shape.Added(d.a, d.b)
}

// synthesize resolves one default per added field. Each provider is
// invoked once here so Apply never runs user code; the value must fit the
// field's type tag.
func (d *deriver) synthesize(added []shape.Field) map[string]any {
	values := make(map[string]any, len(added))

	for _, f := range added {
		var p defaults.Provider
		ok := d.reg != nil
		if ok {
			p, ok = d.reg.Provider(f.Type)
		}

		if !ok {
			d.diags.Fail(&diagnostic.Error{
				Code:     diagnostic.CodeMissingDefaultProvider,
				TypePair: d.pair,
				Field:    f.Name,
				Type:     string(f.Type),
				Message:  fmt.Sprintf("no default provider registered for added field %q", f.Name),
			})

			continue
		}

		v := p()
		if err := defaults.CheckDefault(f.Type, v); err != nil {
			d.diags.Fail(&diagnostic.Error{
				Code:     diagnostic.CodeInvalidDefault,
				TypePair: d.pair,
				Field:    f.Name,
				Type:     string(f.Type),
				Message:  err.Error(),
			})

			continue
		}

		values[f.Name] = deepCopy(v)
	}

	return values
}

// realign orders the sourced fields by b's declaration and checks that
// every target field has exactly one source.
func (d *deriver) realign(common map[string]int, defs map[string]any) []Step {
	steps := make([]Step, 0, d.b.Len())

	for _, f := range d.b.Fields() {
		idx, fromA := common[f.Name]
		def, fromDefault := defs[f.Name]

		switch {
		case fromA && !fromDefault:
			steps = append(steps, Step{Target: f, Strategy: StrategyCopy, SourceIndex: idx})
		case fromDefault && !fromA:
			steps = append(steps, Step{Target: f, Strategy: StrategyDefault, SourceIndex: -1, Default: def})
		case fromA && fromDefault:
			d.diags.Fail(&diagnostic.Error{
				Code:     diagnostic.CodeIncompleteMigration,
				TypePair: d.pair,
				Field:    f.Name,
				Type:     string(f.Type),
				Message:  "target field is sourced twice",
			})
		default:
			if d.failedDefault(f) {
				continue
			}

			d.diags.Fail(&diagnostic.Error{
				Code:     diagnostic.CodeIncompleteMigration,
				TypePair: d.pair,
				Field:    f.Name,
				Type:     string(f.Type),
				Message:  "target field has no source",
			})
		}
	}

	return steps
}

// failedDefault reports whether f already failed default synthesis,
// which is not repeated as an incomplete migration.
func (d *deriver) failedDefault(f shape.Field) bool {
	for _, e := range d.diags.Errors {
		if e.FieldPath != f.Name {
			continue
		}

		if e.Code == diagnostic.CodeMissingDefaultProvider || e.Code == diagnostic.CodeInvalidDefault {
			return true
		}
	}

	return false
}

// report adds the non-fatal observations: dropped fields, type changes and
// likely renames.
func (d *deriver) report() {
	dropped := shape.Dropped(d.a, d.b)

	for _, f := range dropped {
		d.diags.AddWarning(diagnostic.CodeFieldDropped,
			fmt.Sprintf("source field %s is dropped", f), d.pair, f.Name)
	}

	for _, tc := range shape.TypeChanges(d.a, d.b) {
		d.diags.AddWarning(diagnostic.CodeTypeChanged,
			fmt.Sprintf("type changed from %s to %s; value is not carried over", tc.From, tc.To),
			d.pair, tc.Name)
	}

	for _, f := range shape.Added(d.a, d.b) {
		var names []string
		for _, c := range match.RankCandidates(f, dropped, match.DefaultThreshold) {
			if c.Source.Name != f.Name {
				names = append(names, c.Source.Name)
			}
		}

		if len(names) > 0 {
			d.diags.AddInfo(diagnostic.CodePossibleRename,
				"added field is populated with its default", d.pair, f.Name, names...)
		}
	}
}
