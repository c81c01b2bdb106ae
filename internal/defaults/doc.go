// Package defaults provides the Default Provider registry: an explicit
// mapping from type tag to a function producing that type's canonical
// "empty" value. Migrations consult it for fields that exist only in the
// target shape.
package defaults
