package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"struct-migrator/internal/shape"
)

var person = shape.MustNew("Person",
	shape.Field{Name: "name", Type: "string"},
	shape.Field{Name: "age", Type: "int"},
)

func TestNew(t *testing.T) {
	r, err := New(person, "Ada", 36)
	require.NoError(t, err)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "Ada", r.Value(0))

	age, ok := r.Get("age")
	assert.True(t, ok)
	assert.Equal(t, 36, age)

	_, ok = r.Get("email")
	assert.False(t, ok)

	_, err = New(person, "Ada")
	assert.Error(t, err)
}

func TestRecord_Immutable(t *testing.T) {
	in := []any{"Ada", 36}
	r := MustNew(person, in...)

	in[0] = "Bob"
	vals := r.Values()
	vals[1] = 99

	assert.Equal(t, []any{"Ada", 36}, r.Values())
}

func TestFromMap(t *testing.T) {
	r, err := FromMap(person, map[string]any{"age": 36, "name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, []any{"Ada", 36}, r.Values())
	assert.Equal(t, map[string]any{"age": 36, "name": "Ada"}, r.Map())

	_, err = FromMap(person, map[string]any{"name": "Ada"})
	assert.ErrorContains(t, err, "missing values for age")

	_, err = FromMap(person, map[string]any{"name": "Ada", "age": 1, "email": ""})
	assert.ErrorContains(t, err, `no field "email"`)
}

func TestRecord_String(t *testing.T) {
	r := MustNew(person, "Ada", 36)
	assert.Equal(t, `Person{name: "Ada", age: 36}`, r.String())
}

func TestRecord_MarshalYAML(t *testing.T) {
	s := shape.MustNew("V", shape.Field{Name: "z", Type: "bool"}, shape.Field{Name: "a", Type: "string"})
	r := MustNew(s, false, "One")

	out, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, "z: false\na: One\n", string(out))
}

func TestNew_BuiltinKindsChecked(t *testing.T) {
	_, err := New(person, "Ada", "36")
	assert.ErrorContains(t, err, "field age")

	_, err = New(person, "Ada", int64(36))
	assert.Error(t, err)

	_, err = New(person, nil, 36)
	assert.Error(t, err)

	_, err = FromMap(person, map[string]any{"name": 1, "age": 36})
	assert.Error(t, err)

	custom := shape.MustNew("C",
		shape.Field{Name: "status", Type: "example.com/p.Status"},
		shape.Field{Name: "raw", Type: "[]uint8"},
	)
	r, err := New(custom, "anything", nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"anything", nil}, r.Values())
}
