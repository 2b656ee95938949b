package namedtuple

import (
	"math"
	"reflect"

	"github.com/reoring/namedtuple/internal/order"
)

// Descriptor pairs a Key with a value type. It is a schema entry, not a value.
// Obtain it via Named so that the value operations for the type are captured
// alongside the key.
type Descriptor struct {
	key       Key
	typ       reflect.Type
	orderable bool
	ops       slotOps
}

// slotOps holds the operations on boxed slot values (*V) for one value type.
type slotOps struct {
	zero    func() any
	assign  func(box any, v any) bool
	equal   func(a, b any) bool
	compare func(a, b any) (int, bool)
	load    func(box any) any
	copy    func(box any) any
}

// Named declares a field with the given key and value type V.
//
//	namedtuple.Named[int]("age")
func Named[V any](key string) Descriptor {
	t := reflect.TypeFor[V]()
	return Descriptor{
		key:       NewKey(key),
		typ:       t,
		orderable: order.Orderable(t),
		ops: slotOps{
			zero:    zeroBox[V],
			assign:  assignBox[V],
			equal:   equalBox[V],
			compare: compareBox[V],
			load:    loadBox[V],
			copy:    copyBox[V],
		},
	}
}

func zeroBox[V any]() any { return newZero[V]() }

func assignBox[V any](box any, v any) bool {
	if !assignTo(box.(*V), v) {
		return false
	}
	detachNested(box)
	return true
}

func equalBox[V any](a, b any) bool { return order.Equal(a.(*V), b.(*V)) }

func compareBox[V any](a, b any) (int, bool) { return order.Compare(a.(*V), b.(*V)) }

func loadBox[V any](box any) any { return *box.(*V) }

func copyBox[V any](box any) any {
	p := new(V)
	*p = *box.(*V)
	detachNested(p)
	return p
}

// Key returns the descriptor key.
func (d Descriptor) Key() Key { return d.key }

// Type returns the declared value type.
func (d Descriptor) Type() reflect.Type { return d.typ }

// Orderable reports whether values of this field can be three-way compared.
func (d Descriptor) Orderable() bool { return d.orderable }

// Equal reports whether both descriptors carry the same key. The value type
// does not take part in descriptor identity.
func (d Descriptor) Equal(other Descriptor) bool { return d.key.Equal(other.key) }

// Is reports whether the descriptor's key equals k.
func (d Descriptor) Is(k Key) bool { return d.key.Equal(k) }

// Descriptors is an ordered list of field descriptors. Order defines both the
// storage layout and the key iteration order of tuples built from it.
type Descriptors []Descriptor

// Keys returns the keys in declaration order.
func (l Descriptors) Keys() []Key {
	out := make([]Key, len(l))
	for i, d := range l {
		out[i] = d.key
	}
	return out
}

// IndexOf returns the position of the first descriptor whose key equals k, or
// -1 when k is not declared.
func (l Descriptors) IndexOf(k Key) int { return IndexOfKey(l.Keys(), k) }

// Has reports whether k is declared.
func (l Descriptors) Has(k Key) bool { return IsOneOf(k, l.Keys()...) }

// Unique reports whether all keys are pairwise distinct.
func (l Descriptors) Unique() bool { return AllUnique(l.Keys()) }

// Check validates the list: every key is non-empty and no key repeats.
func (l Descriptors) Check() error {
	var iss Issues
	for i, d := range l {
		if d.key.IsZero() {
			iss = AppendIssues(iss, newIssue(CodeInvalidKey, "", i, nil))
		}
	}
	if err := CheckKeys(l.Keys()...); err != nil {
		dup, _ := AsIssues(err)
		iss = AppendIssues(iss, dup...)
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// newZero returns a box holding the zero value of V. Tuple-typed slots are
// initialised so that nested tuples are usable without construction.
func newZero[V any]() *V {
	p := new(V)
	if z, ok := any(p).(interface{ initZero() }); ok {
		z.initZero()
	}
	return p
}

// detachNested gives a tuple copied by value into p its own storage.
func detachNested(p any) {
	if d, ok := p.(interface{ detach() }); ok {
		d.detach()
	}
}

// assignTo stores v into *dst when v is assignable to V, or when both are
// numeric and v converts to V without changing its value.
func assignTo[V any](dst *V, v any) bool {
	if x, ok := v.(V); ok {
		*dst = x
		return true
	}
	t := reflect.TypeFor[V]()
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			var zero V
			*dst = zero
			return true
		}
		return false
	}
	out := reflect.ValueOf(dst).Elem()
	if rv.Type().AssignableTo(t) {
		out.Set(rv)
		return true
	}
	if isNumeric(rv.Kind()) && isNumeric(t.Kind()) && rv.Type().ConvertibleTo(t) && fits(rv, t) {
		out.Set(rv.Convert(t))
		return true
	}
	return false
}

// fits reports whether the numeric value rv survives conversion to t: it is
// in range, not negative for an unsigned t, and whole for an integer t.
// Precision lost between float sizes is accepted.
func fits(rv reflect.Value, t reflect.Type) bool {
	dst := reflect.New(t).Elem()
	switch {
	case rv.CanInt():
		i := rv.Int()
		switch {
		case dst.CanInt():
			return !dst.OverflowInt(i)
		case dst.CanUint():
			return i >= 0 && !dst.OverflowUint(uint64(i))
		}
		return !dst.OverflowFloat(float64(i))
	case rv.CanUint():
		u := rv.Uint()
		switch {
		case dst.CanInt():
			return u <= math.MaxInt64 && !dst.OverflowInt(int64(u))
		case dst.CanUint():
			return !dst.OverflowUint(u)
		}
		return true
	case rv.CanFloat():
		f := rv.Float()
		switch {
		case dst.CanInt():
			return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 && !dst.OverflowInt(int64(f))
		case dst.CanUint():
			return f == math.Trunc(f) && f >= 0 && f < math.MaxUint64 && !dst.OverflowUint(uint64(f))
		}
		return !dst.OverflowFloat(f)
	}
	return false
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
