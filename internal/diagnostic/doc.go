// Package diagnostic provides structured errors, warnings and notes
// produced while deriving record migrations.
//
// Key capabilities:
//   - Coded, field-scoped errors matching sentinel values via errors.Is
//   - Dropped and type-changed field warnings
//   - Rename suggestions attached to added fields
package diagnostic
