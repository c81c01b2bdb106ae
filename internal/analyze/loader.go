package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"struct-migrator/internal/shape"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and collects their struct shapes.
type Analyzer struct {
	graph *Graph
	dir   string
}

// NewAnalyzer creates a new Analyzer resolving patterns relative to dir
// (the current directory when empty).
func NewAnalyzer(dir string) *Analyzer {
	return &Analyzer{graph: NewGraph(), dir: dir}
}

// LoadPackages loads the specified packages and adds their structs to the graph.
// Patterns are standard Go package patterns (e.g., "./examples/versions").
func (a *Analyzer) LoadPackages(patterns ...string) (*Graph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// Graph returns the current graph.
func (a *Analyzer) Graph() *Graph {
	return a.graph
}

// processPackage extracts the exported named structs of a package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	info := &PackageInfo{Path: pkg.PkgPath, Name: pkg.Name}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() || tn.IsAlias() {
			continue
		}

		st, ok := tn.Type().Underlying().(*types.Struct)
		if !ok {
			continue
		}

		// Generic structs have no single shape.
		if named, ok := tn.Type().(*types.Named); ok && named.TypeParams().Len() > 0 {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}

		s, err := AnalyzeStruct(id, st)
		if err != nil {
			return err
		}

		a.graph.Structs[id] = s
		info.Structs = append(info.Structs, id)
	}

	slices.SortFunc(info.Structs, func(x, y TypeID) int {
		return strings.Compare(x.Name, y.Name)
	})

	a.graph.Packages[pkg.PkgPath] = info

	return nil
}

// AnalyzeStruct describes a struct type as a shape named after id.
func AnalyzeStruct(id TypeID, st *types.Struct) (*StructInfo, error) {
	info := &StructInfo{ID: id}

	fields := make([]shape.Field, 0, st.NumFields())
	for i := range st.NumFields() {
		v := st.Field(i)

		name, ok := fieldName(v, st.Tag(i))
		if !ok {
			continue
		}

		f := shape.Field{Name: name, Type: TagOf(v.Type())}
		fields = append(fields, f)
		info.Fields = append(info.Fields, FieldInfo{Field: f, GoName: v.Name(), GoType: v.Type()})
	}

	s, err := shape.New(id.Name, fields...)
	if err != nil {
		return nil, fmt.Errorf("struct %s: %w", id, err)
	}

	info.Shape = s

	return info, nil
}
