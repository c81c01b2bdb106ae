package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"slices"
	"strings"
	"text/template"

	"struct-migrator/internal/analyze"
	"struct-migrator/internal/common"
	"struct-migrator/internal/migrate"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// PkgPath is the import path of the generated package. Types declared
	// there are referenced without a package qualifier.
	PkgPath string
	// OutputDir is where unformatted sources are written when formatting fails.
	OutputDir string
	// GenerateComments adds the plan of every field as a comment.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "migrations",
		OutputDir:        "./generated",
		GenerateComments: true,
	}
}

// Generator generates Go code from derived migrations.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "migrate_productv1_to_productv2.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate emits the migration function converting src into dst. The
// migration must have been derived from src.Shape and dst.Shape.
func (g *Generator) Generate(m *migrate.Migration, src, dst *analyze.StructInfo) (*GeneratedFile, error) {
	if m.Source().Fingerprint() != src.Shape.Fingerprint() || m.Target().Fingerprint() != dst.Shape.Fingerprint() {
		return nil, fmt.Errorf("migration %s -> %s does not match structs %s -> %s",
			m.Source().Name(), m.Target().Name(), src.ID, dst.ID)
	}

	imports := newImportSet(g.config.PkgPath)

	data := &templateData{
		PackageName:  g.config.PackageName,
		FunctionName: FunctionName(src.ID, dst.ID),
		SourceType:   imports.typeName(src.ID),
		TargetType:   imports.typeName(dst.ID),
		Comments:     g.config.GenerateComments,
	}

	for _, f := range m.Dropped() {
		data.Dropped = append(data.Dropped, f.Name)
	}

	for i, step := range m.Plan() {
		target := dst.Fields[i]

		a := assignmentData{
			TargetField: target.GoName,
			Comment:     fmt.Sprintf("%s: %s", step.Target.Name, step.Explanation()),
		}

		switch step.Strategy {
		case migrate.StrategyCopy:
			a.SourceExpr = "in." + src.Fields[step.SourceIndex].GoName
		case migrate.StrategyDefault:
			expr, err := literal(step.Default, target.GoType, imports.qualifier)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", step.Target.Name, err)
			}

			if expr == "" {
				a.Comment = fmt.Sprintf("%s: zero value", step.Target.Name)
			}

			a.SourceExpr = expr
		}

		data.Assignments = append(data.Assignments, a)
	}

	data.Imports = imports.list()

	var buf bytes.Buffer
	if err := migrationTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	filename := Filename(src.ID, dst.ID)

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}

	return &GeneratedFile{Filename: filename, Content: formatted}, nil
}

// FunctionName returns the generated function name for a struct pair.
func FunctionName(src, dst analyze.TypeID) string {
	if src.PkgPath != dst.PkgPath {
		return "Migrate" + exportName(common.PkgAlias(src.PkgPath)) + src.Name +
			"To" + exportName(common.PkgAlias(dst.PkgPath)) + dst.Name
	}

	return "Migrate" + src.Name + "To" + dst.Name
}

// Filename returns the generated file name for a struct pair.
func Filename(src, dst analyze.TypeID) string {
	return "migrate_" + strings.ToLower(src.Name) + "_to_" + strings.ToLower(dst.Name) + ".go"
}

func exportName(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// importSet tracks the packages referenced by generated code.
type importSet struct {
	self  string
	paths map[string]string // path -> alias
}

func newImportSet(self string) *importSet {
	return &importSet{self: self, paths: make(map[string]string)}
}

func (s *importSet) qualifier(pkg *types.Package) string {
	if pkg.Path() == s.self {
		return ""
	}

	s.paths[pkg.Path()] = pkg.Name()

	return pkg.Name()
}

func (s *importSet) typeName(id analyze.TypeID) string {
	if id.PkgPath == s.self || id.PkgPath == "" {
		return id.Name
	}

	alias := common.PkgAlias(id.PkgPath)
	s.paths[id.PkgPath] = alias

	return alias + "." + id.Name
}

func (s *importSet) list() []importSpec {
	specs := make([]importSpec, 0, len(s.paths))
	for path, name := range s.paths {
		spec := importSpec{Path: path}
		if name != common.PkgAlias(path) {
			spec.Alias = name
		}

		specs = append(specs, spec)
	}

	slices.SortFunc(specs, func(a, b importSpec) int {
		return strings.Compare(a.Path, b.Path)
	})

	return specs
}

type importSpec struct {
	Alias string
	Path  string
}

type templateData struct {
	PackageName  string
	Imports      []importSpec
	FunctionName string
	SourceType   string
	TargetType   string
	Assignments  []assignmentData
	Dropped      []string
	Comments     bool
}

type assignmentData struct {
	TargetField string
	SourceExpr  string // empty leaves the zero value
	Comment     string
}

var migrationTemplate = template.Must(template.New("migration").Parse(`// Code generated by struct-migrator. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
// {{.FunctionName}} converts {{.SourceType}} to {{.TargetType}}.
{{- if .Dropped}}
// Dropped fields: {{range $i, $d := .Dropped}}{{if $i}}, {{end}}{{$d}}{{end}}.
{{- end}}
func {{.FunctionName}}(in {{.SourceType}}) {{.TargetType}} {
	return {{.TargetType}}{
{{- range .Assignments}}
{{- if $.Comments}}
		// {{.Comment}}
{{- end}}
{{- if .SourceExpr}}
		{{.TargetField}}: {{.SourceExpr}},
{{- end}}
{{- end}}
	}
}
`))
