package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"struct-migrator/internal/diagnostic"
)

const versionsFile = "../../../examples/versions/versions.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCommand("test", "none", "today")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func writeDefinition(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "defs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

const missingDefault = `
shapes:
  - name: X1
    fields:
      - {name: x, type: int}
  - name: X2
    fields:
      - {name: x, type: int}
      - {name: y, type: example.com/p.CustomType}
migrations:
  - {source: X1, target: X2}
`

func TestRun(t *testing.T) {
	out, err := execute(t, "run", versionsFile)
	require.NoError(t, err)

	assert.Contains(t, out, "target: Narrow")
	assert.Contains(t, out, "three: false\n    one: One\n    field1: test")
	assert.NotContains(t, out, "field11")
	assert.Contains(t, out, "a: 5\n    b: \"\"")
	assert.Contains(t, out, "Status: active")
	assert.Contains(t, out, "Tags: []")
	assert.NotContains(t, out, "PriceCents")
}

func TestRun_Dump(t *testing.T) {
	out, err := execute(t, "run", "--dump", versionsFile)
	require.NoError(t, err)

	assert.Contains(t, out, "Target: (string) (len=6) \"Narrow\"")
}

func TestRun_InvalidDefinition(t *testing.T) {
	_, err := execute(t, "run", writeDefinition(t, "shapes: []\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.ErrInvalidDefinition)
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", versionsFile)
	require.NoError(t, err)

	assert.Contains(t, out, "warning [Wide->Narrow] field11: [field_dropped]")
	assert.Contains(t, out, "ok: 3 migration(s)")

	_, err = execute(t, "check", "--strict", versionsFile)
	require.Error(t, err)
}

func TestCheck_MissingDefault(t *testing.T) {
	out, err := execute(t, "check", writeDefinition(t, missingDefault))
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.ErrMissingDefaultProvider)
	assert.Contains(t, out, "[missing_default_provider]")
	assert.Contains(t, out, "example.com/p.CustomType")
}

func TestExplain(t *testing.T) {
	out, err := execute(t, "explain", versionsFile)
	require.NoError(t, err)

	assert.Contains(t, out, "Wide -> Narrow\n")
	assert.Contains(t, out, "copied from source field #2")
	assert.Contains(t, out, "A -> B\n")
	assert.Contains(t, out, `default for string: ""`)
}

func TestExplain_MissingDefault(t *testing.T) {
	_, err := execute(t, "explain", writeDefinition(t, missingDefault))
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.ErrMissingDefaultProvider)
}

func TestGen(t *testing.T) {
	out, err := execute(t, "gen",
		"--pkg", "struct-migrator/examples/versions",
		"--source", "ProductV1",
		"--target", "ProductV2",
		"--defs", versionsFile,
	)
	require.NoError(t, err)

	assert.Contains(t, out, "package migrations")
	assert.Contains(t, out, `"struct-migrator/examples/versions"`)
	assert.Contains(t, out, "func MigrateProductV1ToProductV2(in versions.ProductV1) versions.ProductV2 {")
	assert.Regexp(t, `Status:\s+"active",`, out)
	assert.Contains(t, out, "// Dropped fields: PriceCents.")
}

func TestGen_WritesFile(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "gen",
		"--pkg", "struct-migrator/examples/versions",
		"--source", "versions.Wide",
		"--target", "versions.Narrow",
		"--out", dir,
	)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "migrate_wide_to_narrow.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "func MigrateWideToNarrow(in versions.Wide) versions.Narrow {")
}

func TestGen_MissingDefault(t *testing.T) {
	_, err := execute(t, "gen",
		"--pkg", "struct-migrator/examples/versions",
		"--source", "ProductV1",
		"--target", "ProductV2",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.ErrMissingDefaultProvider)
}

func TestGen_UnknownStruct(t *testing.T) {
	_, err := execute(t, "gen",
		"--pkg", "struct-migrator/examples/versions",
		"--source", "Nope",
		"--target", "ProductV2",
	)
	require.ErrorIs(t, err, errStructNotFound)
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)

	assert.Contains(t, out, `out: Narrow{three: false, one: "One", field1: "test"`)
	assert.Contains(t, out, "field14:float64      dropped")
}
