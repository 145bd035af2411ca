package typelist

import (
	"reflect"
	"testing"

	"github.com/wippyai/typelist/internal/layout"
)

// benchList mirrors the kind of bundle this container is built for: a few
// unrelated values reached by type.
type benchList = Cons[float64, Cons[string, Cons[uint64, Cons[int, Nil]]]]

func newBenchList() benchList {
	return Add(Add(Add(Add(New(), 42), uint64(7)), "hello"), 3.14)
}

// plainBundle is the direct-field-access floor the cached offset should
// stay close to.
type plainBundle struct {
	f float64
	s string
	u uint64
	i int
}

func BenchmarkGet(b *testing.B) {
	l := newBenchList()
	var sink int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, _ := Get[int](&l)
		sink += *p
	}
	_ = sink
}

func BenchmarkGet_Deepest(b *testing.B) {
	l := newBenchList()
	var sink int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += *MustGet[int](&l)
	}
	_ = sink
}

func BenchmarkDirectField(b *testing.B) {
	v := plainBundle{f: 3.14, s: "hello", u: 7, i: 42}
	var sink int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += v.i
	}
	_ = sink
}

// BenchmarkTypeMap is the conventional runtime-keyed alternative: a
// map[reflect.Type]any with a boxed value per entry.
func BenchmarkTypeMap(b *testing.B) {
	m := map[reflect.Type]any{
		reflect.TypeFor[float64](): 3.14,
		reflect.TypeFor[string]():  "hello",
		reflect.TypeFor[uint64]():  uint64(7),
		reflect.TypeFor[int]():     42,
	}
	var sink int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += m[reflect.TypeFor[int]()].(int)
	}
	_ = sink
}

func BenchmarkResolve_ColdPerPair(b *testing.B) {
	// cost of the one-time walk, paid per (list type, target type) pair
	l := newBenchList()
	listType := reflect.TypeOf(l)
	target := reflect.TypeFor[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := layout.NewResolver()
		if _, ok := r.Resolve(listType, target); !ok {
			b.Fatal("resolve failed")
		}
	}
}
