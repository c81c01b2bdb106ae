package analyze

import (
	"go/types"

	"struct-migrator/internal/common"
	"struct-migrator/internal/shape"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "struct-migrator/examples/versions"
	Name    string // e.g., "AccountV1"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	return common.QualifiedName(t.PkgPath, t.Name)
}

// StructInfo describes a named struct type.
type StructInfo struct {
	ID     TypeID
	Shape  shape.Shape
	Fields []FieldInfo // one per shape field, same order
}

// FieldInfo relates a shape field to its Go declaration.
type FieldInfo struct {
	Field  shape.Field // shape name and type tag
	GoName string      // Go field name
	GoType types.Type  // declared type
}

// Graph holds all analyzed structs from loaded packages.
type Graph struct {
	// Structs maps TypeID to StructInfo for every exported named struct.
	Structs map[TypeID]*StructInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		Structs:  make(map[TypeID]*StructInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetStruct returns the StructInfo for a given TypeID, or nil if not found.
func (g *Graph) GetStruct(id TypeID) *StructInfo {
	return g.Structs[id]
}

// Find looks a struct up by name, either fully qualified
// ("example.com/store.Order"), by package alias ("store.Order") or bare
// ("Order") when unambiguous.
func (g *Graph) Find(name string) *StructInfo {
	var found *StructInfo

	for id, info := range g.Structs {
		if id.String() != name && common.PkgAlias(id.PkgPath)+"."+id.Name != name && id.Name != name {
			continue
		}

		if id.String() == name {
			return info
		}

		if found != nil {
			return nil
		}

		found = info
	}

	return found
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string   // Import path
	Name    string   // Package name
	Structs []TypeID // Named structs defined in this package, sorted by name
}
