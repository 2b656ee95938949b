// Package order implements value equality and three-way comparison for tuple
// slots. This package is internal and not part of the public API.
//
// Slots are boxed as *V, so every function here takes pointers to the
// compared values. Types may opt in with methods:
//
//	Equal(V) bool  or  (*V) Equal(*V) bool
//	Compare(V) int or  (*V) Compare(*V) int
package order

import (
	"cmp"
	"reflect"
)

var intType = reflect.TypeOf(0)

// Equal reports whether *a and *b are equal.
func Equal[V any](a, b *V) bool {
	if e, ok := any(*a).(interface{ Equal(V) bool }); ok {
		return e.Equal(*b)
	}
	if e, ok := any(a).(interface{ Equal(*V) bool }); ok {
		return e.Equal(b)
	}
	return equalValue(reflect.ValueOf(a).Elem(), reflect.ValueOf(b).Elem())
}

// Compare returns -1, 0 or +1 ordering *a against *b. ok is false when V has
// no ordering; Orderable reports the same answer without values.
func Compare[V any](a, b *V) (int, bool) {
	if c, ok := any(*a).(interface{ Compare(V) int }); ok {
		return sign(c.Compare(*b)), true
	}
	if c, ok := any(a).(interface{ Compare(*V) int }); ok {
		return sign(c.Compare(b)), true
	}
	return compareValue(reflect.ValueOf(a).Elem(), reflect.ValueOf(b).Elem())
}

// Orderable reports whether Compare can order values of type t.
func Orderable(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if hasCompare(t) || hasCompare(reflect.PointerTo(t)) {
		return true
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.String, reflect.Bool:
		return true
	case reflect.Array, reflect.Slice:
		return Orderable(t.Elem())
	}
	return false
}

// EqualAny compares two values of possibly different dynamic types; values of
// different types are never equal.
func EqualAny(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}
	if m, ok := equalMethod(va); ok {
		return m.Call([]reflect.Value{vb})[0].Bool()
	}
	if pa := addr(va); hasEqual(pa.Type()) {
		return pa.MethodByName("Equal").Call([]reflect.Value{addr(vb)})[0].Bool()
	}
	return equalValue(va, vb)
}

// CompareAny orders two values of the same dynamic type.
func CompareAny(a, b any) (int, bool) {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() || va.Type() != vb.Type() {
		return 0, false
	}
	return compareValue(va, vb)
}

func equalValue(a, b reflect.Value) bool {
	if a.Comparable() && b.Comparable() {
		return a.Equal(b)
	}
	return reflect.DeepEqual(a.Interface(), b.Interface())
}

func compareValue(a, b reflect.Value) (int, bool) {
	t := a.Type()
	if hasCompare(t) {
		return sign(int(a.MethodByName("Compare").Call([]reflect.Value{b})[0].Int())), true
	}
	if pt := reflect.PointerTo(t); hasCompare(pt) {
		return sign(int(addr(a).MethodByName("Compare").Call([]reflect.Value{addr(b)})[0].Int())), true
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint()), true
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float()), true
	case reflect.String:
		return cmp.Compare(a.String(), b.String()), true
	case reflect.Bool:
		return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool())), true
	case reflect.Array, reflect.Slice:
		if !Orderable(t.Elem()) {
			return 0, false
		}
		n := min(a.Len(), b.Len())
		for i := 0; i < n; i++ {
			if c, _ := compareValue(a.Index(i), b.Index(i)); c != 0 {
				return c, true
			}
		}
		return cmp.Compare(a.Len(), b.Len()), true
	}
	return 0, false
}

func hasCompare(t reflect.Type) bool { return hasMethod(t, "Compare", intType) }

func hasEqual(t reflect.Type) bool { return hasMethod(t, "Equal", reflect.TypeOf(false)) }

// hasMethod reports whether t has name(t) out.
func hasMethod(t reflect.Type, name string, out reflect.Type) bool {
	m, ok := t.MethodByName(name)
	if !ok {
		return false
	}
	ft := m.Type
	first := 1
	if t.Kind() == reflect.Interface {
		first = 0
	}
	return ft.NumIn() == first+1 && ft.In(first) == t && ft.NumOut() == 1 && ft.Out(0) == out
}

func equalMethod(v reflect.Value) (reflect.Value, bool) {
	if !hasEqual(v.Type()) {
		return reflect.Value{}, false
	}
	return v.MethodByName("Equal"), true
}

func addr(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v.Addr()
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}
