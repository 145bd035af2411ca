package bundle

import (
	"testing"

	"github.com/wippyai/typelist"
)

func TestSlices_AppendAndRead(t *testing.T) {
	// one slice slot per element type, seeded empty
	b := WithSlice[uint32](WithSlice[bool](WithSlice[uint](NewSlices())))

	if !Append(&b, uint(2)) {
		t.Error("Append(uint) missed its slot")
	}
	if !Append(&b, false) {
		t.Error("Append(bool) missed its slot")
	}
	if !Append(&b, uint32(0)) {
		t.Error("Append(uint32) missed its slot")
	}

	us, ok := SliceOf[uint](&b)
	if !ok || len(us) != 1 || us[0] != 2 {
		t.Errorf("uint slot: got %v, %v", us, ok)
	}
	bs, ok := SliceOf[bool](&b)
	if !ok || len(bs) != 1 || bs[0] != false {
		t.Errorf("bool slot: got %v, %v", bs, ok)
	}

	if _, ok := SliceOf[string](&b); ok {
		t.Error("found a string slot that was never added")
	}
	if Append(&b, "nope") {
		t.Error("Append into an absent slot claimed success")
	}
}

func TestSlices_Seeded(t *testing.T) {
	b := WithSlice(NewSlices(), "a", "b")

	ss, ok := SliceOf[string](&b)
	if !ok {
		t.Fatal("seeded slot not found")
	}
	if len(ss) != 2 || ss[0] != "a" || ss[1] != "b" {
		t.Errorf("seeded slot: got %v", ss)
	}

	Append(&b, "c")
	ss, _ = SliceOf[string](&b)
	if len(ss) != 3 || ss[2] != "c" {
		t.Errorf("after append: got %v", ss)
	}
}

func TestSlices_Len(t *testing.T) {
	type twoSlots = typelist.Cons[[]int, typelist.Cons[[]string, typelist.Nil]]

	if n := Len[twoSlots](); n != 2 {
		t.Errorf("Len: got %d, want 2", n)
	}
}
