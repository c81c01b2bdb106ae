package migrate

import (
	"bytes"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"struct-migrator/internal/defaults"
	"struct-migrator/internal/diagnostic"
	"struct-migrator/internal/record"
	"struct-migrator/internal/shape"
)

func TestCache_DerivesOnce(t *testing.T) {
	var buf bytes.Buffer
	c := NewCache(defaults.Builtin(), WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	a := shape.MustNew("A", f("a", "int"))
	b := shape.MustNew("B", f("a", "int"), f("b", "string"))

	var (
		wg  sync.WaitGroup
		got [32]*Migration
	)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()

			m, err := c.Get(a, b)
			assert.NoError(t, err)
			got[i] = m
		}()
	}
	wg.Wait()

	for _, m := range got {
		assert.Same(t, got[0], m)
	}
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("derived migration")))
}

func TestCache_ConcurrentApply(t *testing.T) {
	c := NewCache(defaults.Builtin())

	m, err := c.Get(wideShape, narrowShape)
	require.NoError(t, err)

	in := wideRecord(t)
	want := m.Apply(in)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, m.Apply(in))
		}()
	}
	wg.Wait()
}

func TestCache_ConcurrentApplyMutatingOutputs(t *testing.T) {
	reg := defaults.Builtin()
	require.NoError(t, reg.RegisterValue("map[string]int", map[string]int{}))

	a := shape.MustNew("A", f("x", "int"))
	b := shape.MustNew("B", f("x", "int"), f("counts", "map[string]int"), f("tags", "[]string"))

	c := NewCache(reg)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			m, err := c.Get(a, b)
			if !assert.NoError(t, err) {
				return
			}

			out := m.Apply(record.MustNew(a, i))

			counts, _ := out.Get("counts")
			for j := range 100 {
				counts.(map[string]int)["k"] += j
			}

			assert.Equal(t, 4950, counts.(map[string]int)["k"])
		}()
	}
	wg.Wait()

	m, err := c.Get(a, b)
	require.NoError(t, err)
	assert.Equal(t, []any{0, map[string]int{}, []string{}}, m.Apply(record.MustNew(a, 0)).Values())
}

func TestCache_RetainsFailures(t *testing.T) {
	reg := defaults.NewRegistry()
	c := NewCache(reg)

	a := shape.MustNew("A")
	b := shape.MustNew("B", f("y", "CustomType"))

	_, err := c.Get(a, b)
	require.ErrorIs(t, err, diagnostic.ErrMissingDefaultProvider)

	// The cache froze the registry when it was created.
	require.NoError(t, reg.RegisterValue("CustomType", 0))
	_, err = c.Get(a, b)
	require.ErrorIs(t, err, diagnostic.ErrMissingDefaultProvider)

	m, err := NewCache(reg).Get(a, b)
	require.NoError(t, err)
	assert.Equal(t, []any{0}, m.Apply(record.MustNew(a)).Values())
}
