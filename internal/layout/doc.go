// Package layout resolves where each stored value lives inside a nested
// Cons shape.
//
// A list type is a chain of two-field structs (head, rest) ending in an
// empty struct. The byte offset of any slot is the sum of the rest-field
// offsets above it plus its own head-field offset, all taken from reflect's
// struct layout. Resolution happens once per (list type, target type) pair;
// the cached offset makes every later access a single pointer add.
package layout
