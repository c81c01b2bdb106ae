// Package analyze extracts record shapes from Go struct declarations.
//
// It uses golang.org/x/tools/go/packages with go/types to read the named
// struct types of a package and describe each as a shape.Shape, so that
// migrations can be derived (and generated) from declared structs.
//
// Key types:
//   - TypeID: package import path + type name
//   - StructInfo: a struct's shape plus the Go details needed by codegen
//   - Graph: all structs found in the loaded packages
package analyze
