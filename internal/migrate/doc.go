// Package migrate derives and applies structural record migrations.
//
// Derivation runs in four phases over two shapes A and B:
//  1. Intersection: fields with the same name and type in both, in A's order.
//  2. Added fields: the rest of B, in B's order.
//  3. Default synthesis: each added field's default is resolved from a
//     defaults.Lookup and captured.
//  4. Realignment: every B field is assigned exactly one source, in B's order.
//
// All failures are reported by Derive. A derived Migration is immutable,
// Apply is total, and one Migration may be shared by any number of goroutines.
package migrate
