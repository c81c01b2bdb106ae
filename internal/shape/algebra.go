package shape

// Common returns the fields present in both a and b with identical name
// and type, in a's declared order.
func Common(a, b Shape) []Field {
	var out []Field
	for _, f := range a.fields {
		if b.Has(f) {
			out = append(out, f)
		}
	}

	return out
}

// Added returns the fields of b not matched by name and type in a, in b's
// declared order. A name present in both with differing types is added.
func Added(a, b Shape) []Field {
	var out []Field
	for _, f := range b.fields {
		if !a.Has(f) {
			out = append(out, f)
		}
	}

	return out
}

// Dropped returns the fields of a not matched by name and type in b, in
// a's declared order.
func Dropped(a, b Shape) []Field {
	return Added(b, a)
}

// TypeChange is a field name declared in both shapes with different types.
type TypeChange struct {
	Name string
	From TypeTag
	To   TypeTag
}

// TypeChanges lists names whose type differs between a and b, in b's order.
func TypeChanges(a, b Shape) []TypeChange {
	var out []TypeChange
	for _, f := range b.fields {
		old, ok := a.Lookup(f.Name)
		if ok && old.Type != f.Type {
			out = append(out, TypeChange{Name: f.Name, From: old.Type, To: f.Type})
		}
	}

	return out
}
