// Package record holds record values: concrete data laid out according to a
// shape. Records are immutable; accessors hand out copies.
//
// Records can be built positionally, from a name/value map, or from a Go
// struct, and written back into a Go struct with Into.
package record
