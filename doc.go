// Package typelist provides a type-indexed heterogeneous container: a list
// that stores at most one addressable value per distinct Go type and retrieves
// values by naming their type.
//
// Unlike a conventional typemap (map[reflect.Type]any), the set of stored
// types is encoded in the list's own type. A list is built by nesting Cons
// cells, each adding one value, and every Add produces a new, distinct type:
//
//	l := typelist.Add(typelist.Add(typelist.Add(typelist.New(), 42), "hello"), 3.14)
//	// l is Cons[float64, Cons[string, Cons[int, Nil]]]
//
// Lookup resolves the slot holding a requested type once per (list type,
// target type) pair, caches the resulting byte offset, and thereafter performs
// a single pointer add — no hashing, no boxing, no per-access reflection:
//
//	f, ok := typelist.Get[float64](&l) // *float64 pointing into l
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	typelist/            Root package with the Cons/Nil shape and accessors
//	├── internal/layout/ Slot offset resolution and caching
//	├── errors/          Structured error types for diagnostics
//	├── bundle/          Wrappers storing one container per element type
//	├── cmd/playground/  Interactive layout explorer
//	└── examples/basic/  Minimal end-to-end example
//
// # Lookup Semantics
//
// Get scans from the outermost Cons inward and stops at the first slot whose
// type equals the requested type. If a type was added twice, the most recently
// added occurrence wins and the deeper one is unreachable through Get;
// Describe reports such slots as shadowed. Requesting a type the list does
// not contain returns ok=false — Go's generics cannot reject the call at
// compile time, so absence surfaces as a checked miss rather than a build
// error.
//
// # Thread Safety
//
// Lists are plain values. Concurrent readers are safe; a pointer obtained
// from Get aliases the list, so writes through it require the same exclusive
// access as writing any shared Go variable. The library adds no locking.
//
// # Memory Model
//
// All storage is inline: a Cons cell embeds its value and its tail directly,
// so a whole list is one contiguous value, typically stack-resident. There
// is no heap allocation and no teardown beyond ordinary scope exit.
package typelist
