// Package gen generates Go source for derived migrations.
//
// Generation uses text/template + go/format. Each migration between two
// analyzed structs becomes one function that builds the target struct
// literal in the target's field order:
//   - common fields are assigned from the source value
//   - added fields are assigned the default captured by the migration,
//     or left to the Go zero value when the default is that zero value
package gen
