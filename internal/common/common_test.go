package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexBy(t *testing.T) {
	idx := IndexBy([]string{"a", "b", "a"}, func(s string) string { return s })

	assert.Equal(t, map[string]int{"a": 0, "b": 1}, idx)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "int", QualifiedName("", "int"))
	assert.Equal(t, "time.Duration", QualifiedName("time", "Duration"))
	assert.Equal(t, "store", PkgAlias("example.com/app/store"))
	assert.Equal(t, "", PkgAlias(""))
}
