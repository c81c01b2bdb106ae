// Package shape describes record shapes: ordered sets of uniquely named,
// typed fields, and the field-set algebra used to compare two of them.
//
// Key types:
//   - TypeTag: opaque identifier of a field's value type
//   - Field: a (name, type tag) pair
//   - Shape: an immutable, ordered list of fields with unique names
package shape
