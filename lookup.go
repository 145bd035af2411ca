package typelist

import (
	"reflect"
	"unsafe"

	"github.com/wippyai/typelist/errors"
	"github.com/wippyai/typelist/internal/layout"
)

var resolver = layout.NewResolver()

// Slot describes one stored value: its type, byte offset from the start of
// the list, size, nesting depth, and whether a shallower slot of the same
// type shadows it.
type Slot = layout.Slot

// Get returns a pointer to the slot of type T within list. The first
// (most recently added) slot of that type wins. ok is false when the list
// holds no T.
//
// The offset is resolved once per (list type, T) pair and cached; after that
// every call is a single pointer add. The returned pointer aliases the list,
// so it is also the way to mutate the slot.
func Get[T any, L List](list *L) (*T, bool) {
	info, ok := resolver.Resolve(reflect.TypeFor[L](), reflect.TypeFor[T]())
	if !ok {
		return nil, false
	}
	return (*T)(unsafe.Add(unsafe.Pointer(list), info.Offset)), true
}

// MustGet is Get for slots that are known to exist. It panics with a
// structured *errors.Error when the list holds no T.
func MustGet[T any, L List](list *L) *T {
	p, ok := Get[T](list)
	if !ok {
		panic(errors.NotFound(errors.OpAccess,
			reflect.TypeFor[L]().String(),
			reflect.TypeFor[T]().String()))
	}
	return p
}

// Value returns a copy of the slot of type T.
func Value[T any, L List](list *L) (T, bool) {
	p, ok := Get[T](list)
	if !ok {
		var zero T
		return zero, false
	}
	return *p, true
}

// Set overwrites the slot of type T and reports whether the list holds one.
func Set[T any, L List](list *L, value T) bool {
	p, ok := Get[T](list)
	if ok {
		*p = value
	}
	return ok
}

// Has reports whether lists of type L hold a slot of type T. It needs no
// list value: presence is a property of the type alone.
func Has[T any, L List]() bool {
	_, ok := resolver.Resolve(reflect.TypeFor[L](), reflect.TypeFor[T]())
	return ok
}

// Len returns the number of slots in lists of type L.
func Len[L List]() int {
	return len(resolver.Slots(reflect.TypeFor[L]()))
}

// Describe enumerates the slots of lists of type L, outermost first.
// Diagnostic only; Get does not consult it.
func Describe[L List]() []Slot {
	return resolver.Slots(reflect.TypeFor[L]())
}
