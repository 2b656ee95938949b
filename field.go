package namedtuple

import (
	"fmt"
	"reflect"
)

// Field identifies one field of the schema for S with value type V.
// Obtain it via FieldOf; the key is resolved to its position once, so every
// access through the handle is a direct positional access. Using a field of
// another schema, or with the wrong value type, does not compile.
type Field[S any, V any] struct {
	key   Key
	index int
}

// FieldOf returns the handle for key in s. It panics when key is not declared
// by s or when its declared type is not V:
//
//	var Age = namedtuple.FieldOf[person, int](Person, "age")
func FieldOf[S any, V any](s *Schema[S], key string) Field[S, V] {
	f, err := LookupField[S, V](s, key)
	if err != nil {
		panic(err)
	}
	return f
}

// LookupField is like FieldOf but returns an error instead of panicking.
func LookupField[S any, V any](s *Schema[S], key string) (Field[S, V], error) {
	if s == nil {
		panic("namedtuple.LookupField: schema must not be nil")
	}
	k := NewKey(key)
	if !s.Has(k) {
		iss := Issues{newIssue(CodeUnknownKey, key, -1, map[string]string{"schema": s.s.name})}
		return Field[S, V]{}, fmt.Errorf("namedtuple: field %s.%s: %w", s.s.name, key, iss)
	}
	i := s.IndexOf(k)
	if want := reflect.TypeFor[V](); s.s.fields[i].typ != want {
		iss := Issues{typeIssue(s.s.fields[i], i, want)}
		return Field[S, V]{}, fmt.Errorf("namedtuple: field %s.%s: %w", s.s.name, key, iss)
	}
	return Field[S, V]{key: k, index: i}, nil
}

// Key returns the field key.
func (f Field[S, V]) Key() Key { return f.key }

// Index returns the field position.
func (f Field[S, V]) Index() int { return f.index }

// IsZero reports whether f was not obtained from FieldOf.
func (f Field[S, V]) IsZero() bool { return f.key.IsZero() }

func (f Field[S, V]) mustBound() {
	if f.key.IsZero() {
		panic("namedtuple: use of zero Field; obtain fields via FieldOf")
	}
}
