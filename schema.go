package namedtuple

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"sync"
)

// schema is the formed, immutable descriptor list shared by every Schema[S]
// handle and Tuple[S] of one tag type.
type schema struct {
	name   string
	tag    reflect.Type
	fields Descriptors
	keys   []Key
}

var (
	mu       sync.RWMutex
	registry = make(map[reflect.Type]*schema)
)

// Schema is the formed shape of Tuple[S]. The tag type S is an otherwise
// unused marker that ties tuples and field handles to exactly one schema:
//
//	type person struct{}
//
//	var Person = namedtuple.MustDeclare[person](
//		namedtuple.Named[string]("name"),
//		namedtuple.Named[int]("age"),
//	)
type Schema[S any] struct {
	s *schema
}

// Declare forms the schema for tag type S. The descriptor list is checked for
// empty and duplicate keys before anything is registered; a tag type can be
// declared only once per process.
func Declare[S any](fields ...Descriptor) (*Schema[S], error) {
	tag := reflect.TypeFor[S]()
	name := tag.Name()
	if name == "" {
		name = tag.String()
	}
	list := append(Descriptors(nil), fields...)
	if err := list.Check(); err != nil {
		return nil, fmt.Errorf("namedtuple: declare %s: %w", name, err)
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[tag]; exists {
		iss := Issues{newIssue(CodeSchemaExists, "", -1, map[string]string{"schema": name})}
		return nil, fmt.Errorf("namedtuple: declare %s: %w", name, iss)
	}
	s := &schema{name: name, tag: tag, fields: list, keys: list.Keys()}
	registry[tag] = s
	return &Schema[S]{s: s}, nil
}

// MustDeclare is like Declare but panics on error. It is meant for
// package-level declarations, where a bad schema stops the program before any
// tuple exists.
func MustDeclare[S any](fields ...Descriptor) *Schema[S] {
	s, err := Declare[S](fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// SchemaOf returns the schema declared for S.
func SchemaOf[S any]() (*Schema[S], bool) {
	s := lookup(reflect.TypeFor[S]())
	if s == nil {
		return nil, false
	}
	return &Schema[S]{s: s}, true
}

// Declared returns the names of all declared schemas, sorted.
func Declared() []string {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]string, 0, len(registry))
	for _, s := range registry {
		out = append(out, s.name)
	}
	sort.Strings(out)
	return out
}

func lookup(tag reflect.Type) *schema {
	mu.RLock()
	defer mu.RUnlock()
	return registry[tag]
}

func mustLookup[S any]() *schema {
	tag := reflect.TypeFor[S]()
	s := lookup(tag)
	if s == nil {
		panic(Issues{newIssue(CodeUnboundSchema, "", -1, map[string]string{"schema": tag.String()})})
	}
	return s
}

// Name returns the schema name (the tag type name).
func (s *Schema[S]) Name() string { return s.s.name }

// Size returns the number of fields.
func (s *Schema[S]) Size() int { return len(s.s.fields) }

// Fields returns a copy of the descriptor list.
func (s *Schema[S]) Fields() Descriptors { return append(Descriptors(nil), s.s.fields...) }

// Keys returns the keys in declaration order.
func (s *Schema[S]) Keys() []Key { return append([]Key(nil), s.s.keys...) }

// IndexOf returns the position of k, or -1 when k is not declared.
func (s *Schema[S]) IndexOf(k Key) int { return IndexOfKey(s.s.keys, k) }

// Has reports whether k is declared.
func (s *Schema[S]) Has(k Key) bool { return IsOneOf(k, s.s.keys...) }

// TypeAt returns the value type of position i.
func (s *Schema[S]) TypeAt(i int) reflect.Type { return s.s.fields[i].typ }

// New returns a tuple with every slot set to its zero value.
func (s *Schema[S]) New() *Tuple[S] {
	t := &Tuple[S]{}
	t.init(s.s)
	return t
}

// Make returns a tuple holding values, one per slot in positional order.
// A value may be anything assignable to the slot type, a number convertible
// to a numeric slot type, or ByRef(p) with p of type *V for a slot of type V;
// the latter makes the slot refer to *p instead of holding a copy.
func (s *Schema[S]) Make(values ...any) (*Tuple[S], error) {
	if len(values) != len(s.s.fields) {
		iss := Issues{newIssue(CodeSizeMismatch, "", -1, map[string]string{
			"expected": strconv.Itoa(len(s.s.fields)),
			"got":      strconv.Itoa(len(values)),
		})}
		return nil, fmt.Errorf("namedtuple: make %s: %w", s.s.name, iss)
	}
	t := &Tuple[S]{s: s.s, slots: make([]any, len(values))}
	var iss Issues
	for i, v := range values {
		d := s.s.fields[i]
		if r, ok := v.(Reference); ok {
			if reflect.TypeOf(r.ptr) != reflect.PointerTo(d.typ) {
				iss = AppendIssues(iss, typeIssue(d, i, reflect.TypeOf(r.ptr)))
				continue
			}
			t.slots[i] = r.ptr
			t.markRef(i)
			continue
		}
		box := d.ops.zero()
		if !d.ops.assign(box, v) {
			iss = AppendIssues(iss, typeIssue(d, i, reflect.TypeOf(v)))
			continue
		}
		t.slots[i] = box
	}
	if len(iss) > 0 {
		return nil, fmt.Errorf("namedtuple: make %s: %w", s.s.name, iss)
	}
	return t, nil
}

// MustMake is like Make but panics on error.
func (s *Schema[S]) MustMake(values ...any) *Tuple[S] {
	t, err := s.Make(values...)
	if err != nil {
		panic(err)
	}
	return t
}

func typeIssue(d Descriptor, i int, got reflect.Type) Issue {
	gotName := "nil"
	if got != nil {
		gotName = got.String()
	}
	return newIssue(CodeInvalidType, d.key.String(), i, map[string]string{
		"expected": d.typ.String(),
		"got":      gotName,
	})
}
