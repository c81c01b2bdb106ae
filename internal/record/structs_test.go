package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"struct-migrator/internal/shape"
)

type userV1 struct {
	Name  string
	Age   int
	Email *string `migrate:"email"`
}

type userV1Reordered struct {
	Email *string `migrate:"email"`
	Age   int
	Name  string
}

type userV2 struct {
	Name string
	Age  string
}

func TestFromStruct(t *testing.T) {
	email := "ada@example.com"

	r, err := FromStruct(&userV1{Name: "Ada", Age: 36, Email: &email})
	require.NoError(t, err)

	assert.Equal(t, "userV1", r.Shape().Name())
	assert.Equal(t, []string{"Name", "Age", "email"}, r.Shape().Names())
	assert.Equal(t, []any{"Ada", 36, &email}, r.Values())

	_, err = FromStruct(42)
	assert.Error(t, err)

	var nilUser *userV1
	_, err = FromStruct(nilUser)
	assert.Error(t, err)
}

func TestInto(t *testing.T) {
	r, err := FromStruct(userV1{Name: "Ada", Age: 36})
	require.NoError(t, err)

	var dst userV1Reordered
	require.NoError(t, r.Into(&dst))
	assert.Equal(t, userV1Reordered{Name: "Ada", Age: 36}, dst)

	var wrong userV2
	assert.Error(t, r.Into(&wrong))
	assert.Error(t, r.Into(dst))
}

type grade string

type graded struct {
	Name  string
	Grade grade
	Rank  int8
}

func TestInto_ConvertsLiterals(t *testing.T) {
	s := shape.MustNew("graded",
		shape.Field{Name: "Name", Type: "string"},
		shape.Field{Name: "Grade", Type: shape.TagFor[grade]()},
		shape.Field{Name: "Rank", Type: "int8"},
	)

	var dst graded
	require.NoError(t, MustNew(s, "Ada", "A", int8(1)).Into(&dst))
	assert.Equal(t, graded{Name: "Ada", Grade: "A", Rank: 1}, dst)

	// 42 is accepted by New since Grade is not a builtin kind.
	r := MustNew(s, "Ada", 42, int8(1))
	assert.Error(t, r.Into(&dst))
}
