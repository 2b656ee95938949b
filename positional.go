package namedtuple

import (
	"fmt"
	"reflect"
	"strconv"
)

// Positional is the plain positional-tuple contract: a fixed number of
// values addressed by index, each with a static type.
type Positional interface {
	Size() int
	At(i int) any
	TypeAt(i int) reflect.Type
}

// Values is a plain positional tuple. Values returned by Tuple.Positional
// share storage with the tuple; Values built by Pack own their storage.
type Values struct {
	boxes []reflect.Value // pointers to the slot values
}

var _ Positional = Values{}

// Pack builds a positional tuple from values. The static type of each
// position is the dynamic type of its value; nil positions have type any.
func Pack(values ...any) Values {
	boxes := make([]reflect.Value, len(values))
	for i, v := range values {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() {
			boxes[i] = reflect.New(reflect.TypeFor[any]())
			continue
		}
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		boxes[i] = p
	}
	return Values{boxes: boxes}
}

func valuesOf(slots []any) Values {
	boxes := make([]reflect.Value, len(slots))
	for i, box := range slots {
		boxes[i] = reflect.ValueOf(box)
	}
	return Values{boxes: boxes}
}

// Size returns the number of positions.
func (v Values) Size() int { return len(v.boxes) }

// At returns the value at position i.
func (v Values) At(i int) any { return v.boxes[i].Elem().Interface() }

// TypeAt returns the static type of position i.
func (v Values) TypeAt(i int) reflect.Type { return v.boxes[i].Type().Elem() }

// Ptr returns a pointer (*T) to the value at position i.
func (v Values) Ptr(i int) any { return v.boxes[i].Interface() }

// Slice returns a copy of the values.
func (v Values) Slice() []any {
	out := make([]any, len(v.boxes))
	for i := range v.boxes {
		out[i] = v.At(i)
	}
	return out
}

// Unpack copies every position into the matching destination pointer, the
// way a destructuring assignment binds names to positions:
//
//	var name string
//	var age int
//	err := t.Positional().Unpack(&name, &age)
//
// A nil destination skips its position.
func (v Values) Unpack(dst ...any) error {
	if len(dst) != len(v.boxes) {
		return fmt.Errorf("namedtuple: unpack: %w", Issues{newIssue(CodeSizeMismatch, "", -1, map[string]string{
			"expected": strconv.Itoa(len(v.boxes)),
			"got":      strconv.Itoa(len(dst)),
		})})
	}
	var iss Issues
	for i, d := range dst {
		if d == nil {
			continue
		}
		dv := reflect.ValueOf(d)
		src := v.boxes[i].Elem()
		if dv.Kind() != reflect.Pointer || dv.IsNil() || !src.Type().AssignableTo(dv.Type().Elem()) {
			iss = AppendIssues(iss, newIssue(CodeInvalidType, "", i, map[string]string{
				"key":      "#" + strconv.Itoa(i),
				"expected": "*" + src.Type().String(),
				"got":      dv.Type().String(),
			}))
			continue
		}
		dv.Elem().Set(src)
	}
	if len(iss) > 0 {
		return fmt.Errorf("namedtuple: unpack: %w", iss)
	}
	return nil
}

// GetAt returns the value at position i of p. It panics when the position's
// type is not V.
func GetAt[V any](p Positional, i int) V {
	mustTypeAt[V](p, i)
	v, _ := p.At(i).(V)
	return v
}

// RefAt returns a pointer to position i of v. It panics when the position's
// type is not V.
func RefAt[V any](v Values, i int) *V {
	mustTypeAt[V](v, i)
	return v.Ptr(i).(*V)
}

// Unpack2 destructures a two-position tuple.
func Unpack2[A any, B any](p Positional) (A, B) {
	mustSize(p, 2)
	return GetAt[A](p, 0), GetAt[B](p, 1)
}

// Unpack3 destructures a three-position tuple.
func Unpack3[A any, B any, C any](p Positional) (A, B, C) {
	mustSize(p, 3)
	return GetAt[A](p, 0), GetAt[B](p, 1), GetAt[C](p, 2)
}

// Unpack4 destructures a four-position tuple.
func Unpack4[A any, B any, C any, D any](p Positional) (A, B, C, D) {
	mustSize(p, 4)
	return GetAt[A](p, 0), GetAt[B](p, 1), GetAt[C](p, 2), GetAt[D](p, 3)
}

func mustTypeAt[V any](p Positional, i int) {
	if want, got := reflect.TypeFor[V](), p.TypeAt(i); want != got {
		panic(Issues{newIssue(CodeInvalidType, "#"+strconv.Itoa(i), i, map[string]string{
			"expected": got.String(),
			"got":      want.String(),
		})})
	}
}

func mustSize(p Positional, n int) {
	if p.Size() != n {
		panic(Issues{newIssue(CodeSizeMismatch, "", -1, map[string]string{
			"expected": strconv.Itoa(p.Size()),
			"got":      strconv.Itoa(n),
		})})
	}
}
