package analyze

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"struct-migrator/internal/shape"
)

const tagsSrc = `package sample

import "time"

type Code string

type Alias = Code

type Sample struct {
	B      byte
	R      rune
	Bytes  []byte
	Ptr    *int
	Arr    [4]uint16
	Lookup map[string]Code
	When   time.Time
	Wait   time.Duration
	Al     Alias
	Err    error
	Hidden string ` + "`migrate:\"-\"`" + `
	Renamed int ` + "`migrate:\"renamed_field\"`" + `
	private int
}
`

func checkSample(t *testing.T) *types.Struct {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "sample.go", tagsSrc, 0)
	require.NoError(t, err)

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check("example.com/sample", fset, []*ast.File{file}, nil)
	require.NoError(t, err)

	return pkg.Scope().Lookup("Sample").Type().Underlying().(*types.Struct)
}

func TestAnalyzeStruct_Tags(t *testing.T) {
	st := checkSample(t)

	info, err := AnalyzeStruct(TypeID{PkgPath: "example.com/sample", Name: "Sample"}, st)
	require.NoError(t, err)

	want := []shape.Field{
		{Name: "B", Type: "uint8"},
		{Name: "R", Type: "int32"},
		{Name: "Bytes", Type: "[]uint8"},
		{Name: "Ptr", Type: "*int"},
		{Name: "Arr", Type: "[4]uint16"},
		{Name: "Lookup", Type: "map[string]example.com/sample.Code"},
		{Name: "When", Type: "time.Time"},
		{Name: "Wait", Type: "time.Duration"},
		{Name: "Al", Type: "example.com/sample.Code"},
		{Name: "Err", Type: "error"},
		{Name: "renamed_field", Type: "int"},
	}

	assert.Equal(t, want, info.Shape.Fields())
	assert.Equal(t, "Sample", info.Shape.Name())
	require.Len(t, info.Fields, len(want))
	assert.Equal(t, "Renamed", info.Fields[len(want)-1].GoName)
}

func TestAnalyzeStruct_DuplicateName(t *testing.T) {
	fields := []*types.Var{
		types.NewField(token.NoPos, nil, "A", types.Typ[types.Int], false),
		types.NewField(token.NoPos, nil, "B", types.Typ[types.Int], false),
	}
	st := types.NewStruct(fields, []string{"", `migrate:"A"`})

	_, err := AnalyzeStruct(TypeID{PkgPath: "example.com/p", Name: "Dup"}, st)
	require.Error(t, err)
	assert.ErrorContains(t, err, "example.com/p.Dup")
}
