package defaults

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"struct-migrator/internal/shape"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Int", KindInt.String())
	assert.Equal(t, "Strings", KindStrings.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindInt, KindOf("int"))
	assert.Equal(t, KindString, KindOf("string"))
	assert.Equal(t, KindTime, KindOf("time.Time"))
	assert.Equal(t, KindDuration, KindOf("time.Duration"))
	assert.Equal(t, KindBytes, KindOf("[]uint8"))
	assert.Equal(t, Kind(0), KindOf("example.com/CustomType"))

	assert.True(t, KindFloat64.IsNumber())
	assert.False(t, KindBool.IsNumber())
	assert.True(t, KindStrings.IsSequence())
	assert.Nil(t, Kind(0).Type())
}

func TestBuiltin(t *testing.T) {
	r := Builtin()

	tests := []struct {
		tag  shape.TypeTag
		want any
	}{
		{"int", 0},
		{"int64", int64(0)},
		{"float64", 0.0},
		{"bool", false},
		{"string", ""},
		{"time.Time", time.Time{}},
		{"time.Duration", time.Duration(0)},
		{"[]uint8", []byte{}},
		{"[]string", []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			p, ok := r.Provider(tt.tag)
			require.True(t, ok)
			assert.Equal(t, tt.want, p())
		})
	}

	assert.Len(t, r.Tags(), KindTotal-1)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	require.ErrorIs(t, r.Register("", func() any { return 0 }), ErrEmptyTag)
	require.ErrorIs(t, r.Register("int", nil), ErrNilProvider)

	require.NoError(t, r.RegisterValue("Status", "new"))
	p, ok := r.Provider("Status")
	require.True(t, ok)
	assert.Equal(t, "new", p())

	tag, err := r.RegisterZero(reflect.TypeFor[*int]())
	require.NoError(t, err)
	assert.Equal(t, shape.TypeTag("*int"), tag)
	p, ok = r.Provider(tag)
	require.True(t, ok)
	assert.Nil(t, p())

	r.Unregister("Status")
	_, ok = r.Provider("Status")
	assert.False(t, ok)
}

func TestRegistry_SnapshotIsolation(t *testing.T) {
	r := Builtin()
	snap := r.Snapshot()

	require.NoError(t, r.RegisterValue("Custom", 1))
	r.Unregister("int")

	_, ok := snap.Provider("Custom")
	assert.False(t, ok)
	_, ok = snap.Provider("int")
	assert.True(t, ok)
	assert.Equal(t, KindTotal-1, snap.Len())
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = r.RegisterValue(shape.TypeTag("t"+string(rune('a'+i))), i)
		}()
		go func() {
			defer wg.Done()
			_ = r.Snapshot()
			_, _ = r.Provider("ta")
		}()
	}
	wg.Wait()

	assert.Len(t, r.Tags(), 16)
}
