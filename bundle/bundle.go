// Package bundle provides named wrappers over typelist where every slot
// holds the same kind of container of its element type.
//
// Go has no higher-kinded types, so each container kind gets its own
// wrapper. Slices is the canonical one: a bundle holding one []N per
// element type N, useful for grouping homogeneous queues of unrelated
// types without boxing.
package bundle

import "github.com/wippyai/typelist"

// Slices wraps a list whose every slot is a []N for some element type N.
type Slices[R typelist.List] struct {
	list R
}

// NewSlices returns an empty Slices bundle.
func NewSlices() Slices[typelist.Nil] {
	return Slices[typelist.Nil]{list: typelist.New()}
}

// WithSlice returns a bundle with a slot for element type N holding the
// given elements. Like typelist.Add, each call produces a new bundle type.
func WithSlice[N any, R typelist.List](b Slices[R], elems ...N) Slices[typelist.Cons[[]N, R]] {
	return Slices[typelist.Cons[[]N, R]]{list: typelist.Add(b.list, elems)}
}

// Append appends v to the slice slot of element type N and reports whether
// the bundle has such a slot.
func Append[N any, R typelist.List](b *Slices[R], v N) bool {
	p, ok := typelist.Get[[]N](&b.list)
	if !ok {
		return false
	}
	*p = append(*p, v)
	return true
}

// SliceOf returns the slice stored for element type N.
func SliceOf[N any, R typelist.List](b *Slices[R]) ([]N, bool) {
	p, ok := typelist.Get[[]N](&b.list)
	if !ok {
		return nil, false
	}
	return *p, true
}

// Len returns the number of element types in the bundle.
func Len[R typelist.List]() int {
	return typelist.Len[R]()
}
