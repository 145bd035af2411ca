package typelist

// List is implemented by Nil and by every Cons instantiation. It constrains
// the generic accessors so that only well-formed list shapes reach the
// resolver; nothing outside this package can satisfy it.
type List interface {
	node()
}

// Nil is the empty list. It is zero-sized and terminates every list.
type Nil struct{}

func (Nil) node() {}

// Cons holds one value and the rest of the list. Both are stored inline and
// exclusively owned: the tail is a strictly smaller concrete type, so a list
// can never reference itself.
type Cons[V any, R List] struct {
	head V
	rest R
}

func (Cons[V, R]) node() {}

// New returns the empty list.
func New() Nil {
	return Nil{}
}

// Add returns a new list with value prepended to rest. Each call produces a
// distinct type carrying the full shape of the list, which is what lets
// lookup resolve to a fixed offset.
//
// Go methods cannot introduce type parameters, so building is a free
// function rather than a chained method:
//
//	l := typelist.Add(typelist.Add(typelist.New(), 42), "hello")
func Add[V any, R List](rest R, value V) Cons[V, R] {
	return Cons[V, R]{head: value, rest: rest}
}

// AddZero is Add with the zero value of V.
func AddZero[V any, R List](rest R) Cons[V, R] {
	return Cons[V, R]{rest: rest}
}
