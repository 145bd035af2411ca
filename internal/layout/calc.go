package layout

import (
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// Info describes the slot a lookup resolved to.
type Info struct {
	Type   reflect.Type
	Offset uintptr
	Depth  int
}

// Slot is one entry in a full layout enumeration.
type Slot struct {
	Type     reflect.Type
	Offset   uintptr
	Size     uintptr
	Depth    int
	Shadowed bool
}

// Resolver computes and caches slot locations. Safe for concurrent use.
type Resolver struct {
	resolved sync.Map // resolveKey -> resolution
	slots    sync.Map // reflect.Type -> []Slot
	log      *zap.Logger
}

type resolveKey struct {
	list   reflect.Type
	target reflect.Type
}

// resolution caches misses as well as hits, so absent types cost one walk
// per pair, not one per call.
type resolution struct {
	info Info
	ok   bool
}

func NewResolver() *Resolver {
	return &Resolver{log: zap.NewNop()}
}

// SetLogger replaces the resolver's logger. Not synchronized; set before
// the first Resolve.
func (r *Resolver) SetLogger(l *zap.Logger) {
	if l != nil {
		r.log = l
	}
}

// Resolve locates the shallowest slot of type target within list.
func (r *Resolver) Resolve(list, target reflect.Type) (Info, bool) {
	key := resolveKey{list: list, target: target}
	if v, ok := r.resolved.Load(key); ok {
		res := v.(resolution)
		return res.info, res.ok
	}

	info, ok := walk(list, target)
	if ok {
		r.log.Debug("resolved slot",
			zap.Stringer("list", list),
			zap.Stringer("type", target),
			zap.Int("depth", info.Depth),
			zap.Uint64("offset", uint64(info.Offset)))
	} else {
		r.log.Debug("no slot for type",
			zap.Stringer("list", list),
			zap.Stringer("type", target))
	}

	r.resolved.Store(key, resolution{info: info, ok: ok})
	return info, ok
}

// Slots enumerates every slot of list, outermost first. Duplicated types
// are marked shadowed on all but their shallowest occurrence.
func (r *Resolver) Slots(list reflect.Type) []Slot {
	if v, ok := r.slots.Load(list); ok {
		return v.([]Slot)
	}

	var out []Slot
	seen := make(map[reflect.Type]bool)
	node := list
	base := uintptr(0)
	for depth := 0; ; depth++ {
		head, rest, ok := consFields(node)
		if !ok {
			break
		}
		out = append(out, Slot{
			Type:     head.Type,
			Offset:   base + head.Offset,
			Size:     head.Type.Size(),
			Depth:    depth,
			Shadowed: seen[head.Type],
		})
		seen[head.Type] = true
		base += rest.Offset
		node = rest.Type
	}

	r.slots.Store(list, out)
	return out
}

// walk scans from the outermost node inward and stops at the first head
// whose type equals target. Termination is structural: each rest type is a
// strictly smaller struct, ending in the empty terminal.
func walk(list, target reflect.Type) (Info, bool) {
	base := uintptr(0)
	for depth := 0; ; depth++ {
		head, rest, ok := consFields(list)
		if !ok {
			return Info{}, false
		}
		if head.Type == target {
			return Info{Type: target, Offset: base + head.Offset, Depth: depth}, true
		}
		base += rest.Offset
		list = rest.Type
	}
}

// consFields returns the head and rest fields when t has the cons shape.
// The caller's List constraint guarantees only list shapes arrive here;
// the terminal empty struct simply fails the field-count check.
func consFields(t reflect.Type) (head, rest reflect.StructField, ok bool) {
	if t.Kind() != reflect.Struct || t.NumField() != 2 {
		return head, rest, false
	}
	head = t.Field(0)
	rest = t.Field(1)
	if head.Name != "head" || rest.Name != "rest" {
		return head, rest, false
	}
	return head, rest, true
}
