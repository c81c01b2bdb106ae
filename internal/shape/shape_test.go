package shape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"struct-migrator/internal/diagnostic"
)

func TestNew_DuplicateFieldName(t *testing.T) {
	_, err := New("Dup",
		Field{Name: "a", Type: "int"},
		Field{Name: "b", Type: "string"},
		Field{Name: "a", Type: "string"},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.ErrDuplicateFieldName)

	var de *diagnostic.Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "a", de.Field)
	assert.Equal(t, "Dup", de.TypePair)
}

func TestShape_Accessors(t *testing.T) {
	s := MustNew("S", Field{"x", "int"}, Field{"y", "string"})

	assert.Equal(t, "S", s.Name())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"x", "y"}, s.Names())
	assert.Equal(t, "{x:int,y:string}", s.Fingerprint())
	assert.Equal(t, "S{x:int,y:string}", s.String())

	i, ok := s.Index("y")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = s.Lookup("z")
	assert.False(t, ok)

	assert.True(t, s.Has(Field{"x", "int"}))
	assert.False(t, s.Has(Field{"x", "string"}))

	// Fields returns a copy.
	fs := s.Fields()
	fs[0].Name = "mutated"
	assert.Equal(t, "x", s.Field(0).Name)
}

func TestShape_Zero(t *testing.T) {
	var s Shape
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(Field{"a", "int"}))
	assert.Equal(t, "{}", s.Fingerprint())
}

func TestAlgebra(t *testing.T) {
	a := MustNew("A",
		Field{"one", "string"},
		Field{"two", "int"},
		Field{"three", "bool"},
		Field{"age", "int"},
	)
	b := MustNew("B",
		Field{"three", "bool"},
		Field{"age", "string"},
		Field{"one", "string"},
		Field{"email", "string"},
	)

	assert.Equal(t, []Field{{"one", "string"}, {"three", "bool"}}, Common(a, b))
	assert.Equal(t, []Field{{"age", "string"}, {"email", "string"}}, Added(a, b))
	assert.Equal(t, []Field{{"two", "int"}, {"age", "int"}}, Dropped(a, b))
	assert.Equal(t, []TypeChange{{Name: "age", From: "int", To: "string"}}, TypeChanges(a, b))
}
