package namedtuple

import (
	"fmt"
	"strings"
)

// Tuple is a fixed-shape heterogeneous container whose slots are addressed by
// position or, through Field handles, by key. The shape comes from the schema
// declared for S.
//
// The zero value is a tuple with every slot at its zero value, provided a
// schema has been declared for S. A Tuple must not be copied after first use;
// use Clone. A Tuple is not safe for concurrent mutation.
type Tuple[S any] struct {
	s     *schema
	slots []any  // one *V box per field
	refs  []bool // nil unless a slot refers to a caller variable
}

func (t *Tuple[S]) init(s *schema) {
	t.s = s
	t.slots = make([]any, len(s.fields))
	for i, d := range s.fields {
		t.slots[i] = d.ops.zero()
	}
}

func (t *Tuple[S]) ensure() {
	if t.s == nil {
		t.init(mustLookup[S]())
	}
}

// initZero lets a zero tuple nested in another tuple's slot become usable.
func (t *Tuple[S]) initZero() { t.ensure() }

// detach gives t its own storage after t was copied by value.
func (t *Tuple[S]) detach() {
	if t.s == nil {
		return
	}
	t.slots, t.refs = t.cloneSlots()
}

func (t *Tuple[S]) markRef(i int) {
	if t.refs == nil {
		t.refs = make([]bool, len(t.slots))
	}
	t.refs[i] = true
}

func (t *Tuple[S]) isRef(i int) bool { return t.refs != nil && t.refs[i] }

func (t *Tuple[S]) cloneSlots() ([]any, []bool) {
	slots := make([]any, len(t.slots))
	for i, box := range t.slots {
		if t.isRef(i) {
			slots[i] = box
			continue
		}
		slots[i] = t.s.fields[i].ops.copy(box)
	}
	var refs []bool
	if t.refs != nil {
		refs = append([]bool(nil), t.refs...)
	}
	return slots, refs
}

// Schema returns the schema of t.
func (t *Tuple[S]) Schema() *Schema[S] {
	t.ensure()
	return &Schema[S]{s: t.s}
}

// Size returns the number of slots.
func (t *Tuple[S]) Size() int {
	t.ensure()
	return len(t.s.fields)
}

// IsRef reports whether slot i refers to a variable supplied with ByRef.
func (t *Tuple[S]) IsRef(i int) bool {
	t.ensure()
	return t.isRef(i)
}

// Clone returns a copy of t with its own storage. Reference slots keep
// referring to the same variable. Nested tuples are cloned as well. Other
// values are copied by assignment, so the elements of slices and maps
// remain shared with t.
func (t *Tuple[S]) Clone() *Tuple[S] {
	t.ensure()
	c := &Tuple[S]{s: t.s}
	c.slots, c.refs = t.cloneSlots()
	return c
}

// Positional returns a positional view over the storage of t.
func (t *Tuple[S]) Positional() Values {
	t.ensure()
	return valuesOf(t.slots)
}

// Equal reports whether t and o hold equal values for every key.
func (t *Tuple[S]) Equal(o *Tuple[S]) bool {
	if t == nil || o == nil {
		return t == o
	}
	t.ensure()
	o.ensure()
	return equalKeyed(t.s, t.slots, o.slots, identity(len(t.slots)))
}

// Compare orders t against o key by key in declaration order. It returns -1,
// 0 or +1 and panics when a field type has no ordering. A nil tuple orders
// before any other.
func (t *Tuple[S]) Compare(o *Tuple[S]) int {
	if t == nil || o == nil {
		return compareNil(t == nil, o == nil)
	}
	t.ensure()
	o.ensure()
	if err := checkOrderable(t.s); err != nil {
		panic(err)
	}
	return compareKeyed(t.s, t.slots, o.slots, identity(len(t.slots)))
}

// String renders t as name{key: value, ...} for diagnostics.
func (t *Tuple[S]) String() string {
	if t == nil {
		return "<nil>"
	}
	t.ensure()
	b := &strings.Builder{}
	b.WriteString(t.s.name)
	b.WriteByte('{')
	for i, d := range t.s.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%s: %v", d.key, d.ops.load(t.slots[i]))
	}
	b.WriteByte('}')
	return b.String()
}

// Reference marks a Make argument that becomes a reference slot.
type Reference struct{ ptr any }

// ByRef wraps p so that Make stores p itself in the slot instead of a copy of
// *p. Writes through the tuple then land in *p and vice versa.
func ByRef[V any](p *V) Reference {
	if p == nil {
		panic("namedtuple.ByRef: pointer must not be nil")
	}
	return Reference{ptr: p}
}

func identity(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}
	return m
}
