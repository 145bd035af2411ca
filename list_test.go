package typelist

import "testing"

func TestNew_IsZeroSized(t *testing.T) {
	if n := Len[Nil](); n != 0 {
		t.Errorf("empty list has %d slots", n)
	}
}

func TestAdd_FreshValueRetrievable(t *testing.T) {
	l := Add(New(), 23)

	p, ok := Get[int](&l)
	if !ok {
		t.Fatal("freshly added int not found")
	}
	if *p != 23 {
		t.Errorf("got %d, want 23", *p)
	}
}

func TestAdd_EachLevelRetrievable(t *testing.T) {
	l := Add(Add(Add(New(), 23), uint(7)), "Hello!")

	if _, ok := Get[string](&l); !ok {
		t.Error("string not found")
	}
	if _, ok := Get[uint](&l); !ok {
		t.Error("uint not found")
	}
	if _, ok := Get[int](&l); !ok {
		t.Error("int not found")
	}
	if _, ok := Get[bool](&l); ok {
		t.Error("found a bool that was never added")
	}
}

func TestAddZero(t *testing.T) {
	l := AddZero[[]int](Add(New(), "x"))

	s, ok := Get[[]int](&l)
	if !ok {
		t.Fatal("zero-valued slot not found")
	}
	if *s != nil {
		t.Errorf("zero slice slot: got %v", *s)
	}

	*s = append(*s, 2)
	if got := MustGet[[]int](&l); len(*got) != 1 || (*got)[0] != 2 {
		t.Errorf("after append: got %v", *got)
	}
}

func TestAdd_StructValues(t *testing.T) {
	type config struct {
		Name  string
		Limit int
	}
	type handle struct{ fd uintptr }

	l := Add(Add(New(), config{Name: "db", Limit: 10}), handle{fd: 3})

	c, ok := Get[config](&l)
	if !ok {
		t.Fatal("config slot not found")
	}
	if c.Name != "db" || c.Limit != 10 {
		t.Errorf("config slot: got %+v", *c)
	}
	h := MustGet[handle](&l)
	if h.fd != 3 {
		t.Errorf("handle slot: got %+v", *h)
	}
}
