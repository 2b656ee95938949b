package namedtuple

import (
	"fmt"
	"strconv"

	"github.com/reoring/namedtuple/internal/order"
)

// Conformable reports whether tuples of a and b can be compared key by key:
// both schemas have the same size, every key of a is declared by b, and each
// key has the same value type on both sides. Schemas whose keys are a
// permutation of each other conform.
func Conformable[A any, B any](a *Schema[A], b *Schema[B]) error {
	_, err := conform(a.s, b.s)
	return err
}

// Equal reports whether a and b hold equal values for every key of a.
// Values are matched by key, not by position, so tuples whose schemas
// declare the same keys in a different order can be equal.
// Equal panics when the schemas do not conform; see Conformable.
func Equal[A any, B any](a *Tuple[A], b *Tuple[B]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	a.ensure()
	b.ensure()
	m, err := conform(a.s, b.s)
	if err != nil {
		panic(err)
	}
	return equalKeyed(a.s, a.slots, b.slots, m)
}

// Compare orders a against b. It walks the keys of a in the order a's schema
// declares them; the first key whose values differ decides the result.
// The result is -1, 0 or +1; tuples without fields always compare 0.
// Compare panics when the schemas do not conform or when a field of a has no
// ordering. A nil tuple orders before any other.
func Compare[A any, B any](a *Tuple[A], b *Tuple[B]) int {
	if a == nil || b == nil {
		return compareNil(a == nil, b == nil)
	}
	a.ensure()
	b.ensure()
	m, err := conform(a.s, b.s)
	if err != nil {
		panic(err)
	}
	if err := checkOrderable(a.s); err != nil {
		panic(err)
	}
	return compareKeyed(a.s, a.slots, b.slots, m)
}

// Less reports whether a orders before b.
func Less[A any, B any](a *Tuple[A], b *Tuple[B]) bool { return Compare(a, b) < 0 }

// EqualPositional compares t with a plain positional tuple index by index.
// It panics when the sizes differ or a value type does not match its slot.
func EqualPositional[S any](t *Tuple[S], p Positional) bool {
	t.ensure()
	if err := conformPositional(t.s, p); err != nil {
		panic(err)
	}
	for i, box := range t.slots {
		if !order.EqualAny(t.s.fields[i].ops.load(box), p.At(i)) {
			return false
		}
	}
	return true
}

// ComparePositional orders t against a plain positional tuple index by index.
// It panics under the same conditions as EqualPositional and when a field
// has no ordering.
func ComparePositional[S any](t *Tuple[S], p Positional) int {
	t.ensure()
	if err := conformPositional(t.s, p); err != nil {
		panic(err)
	}
	if err := checkOrderable(t.s); err != nil {
		panic(err)
	}
	for i, box := range t.slots {
		c, _ := order.CompareAny(t.s.fields[i].ops.load(box), p.At(i))
		if c != 0 {
			return c
		}
	}
	return 0
}

func compareNil(aNil, bNil bool) int {
	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return -1
	}
	return 1
}

// conform maps every position of l to the position of the same key in r.
func conform(l, r *schema) ([]int, error) {
	if l == r {
		return identity(len(l.fields)), nil
	}
	if len(l.fields) != len(r.fields) {
		iss := Issues{newIssue(CodeSizeMismatch, "", -1, map[string]string{
			"expected": strconv.Itoa(len(l.fields)),
			"got":      strconv.Itoa(len(r.fields)),
		})}
		return nil, fmt.Errorf("namedtuple: compare %s with %s: %w", l.name, r.name, iss)
	}
	m := make([]int, len(l.fields))
	var iss Issues
	for i, d := range l.fields {
		if !IsOneOf(d.key, r.keys...) {
			iss = AppendIssues(iss, newIssue(CodeUnknownKey, d.key.String(), i, map[string]string{"schema": r.name}))
			continue
		}
		j := IndexOfKey(r.keys, d.key)
		if r.fields[j].typ != d.typ {
			iss = AppendIssues(iss, typeIssue(d, i, r.fields[j].typ))
			continue
		}
		m[i] = j
	}
	if len(iss) > 0 {
		return nil, fmt.Errorf("namedtuple: compare %s with %s: %w", l.name, r.name, iss)
	}
	return m, nil
}

func conformPositional(s *schema, p Positional) error {
	if p.Size() != len(s.fields) {
		iss := Issues{newIssue(CodeSizeMismatch, "", -1, map[string]string{
			"expected": strconv.Itoa(len(s.fields)),
			"got":      strconv.Itoa(p.Size()),
		})}
		return fmt.Errorf("namedtuple: compare %s positionally: %w", s.name, iss)
	}
	var iss Issues
	for i, d := range s.fields {
		if got := p.TypeAt(i); got != d.typ {
			iss = AppendIssues(iss, typeIssue(d, i, got))
		}
	}
	if len(iss) > 0 {
		return fmt.Errorf("namedtuple: compare %s positionally: %w", s.name, iss)
	}
	return nil
}

func checkOrderable(s *schema) error {
	var iss Issues
	for i, d := range s.fields {
		if !d.orderable {
			iss = AppendIssues(iss, newIssue(CodeUnorderable, d.key.String(), i, map[string]string{"expected": d.typ.String()}))
		}
	}
	if len(iss) > 0 {
		return fmt.Errorf("namedtuple: order %s: %w", s.name, iss)
	}
	return nil
}

func equalKeyed(l *schema, ls, rs []any, m []int) bool {
	for i, d := range l.fields {
		if !d.ops.equal(ls[i], rs[m[i]]) {
			return false
		}
	}
	return true
}

func compareKeyed(l *schema, ls, rs []any, m []int) int {
	for i, d := range l.fields {
		if c, _ := d.ops.compare(ls[i], rs[m[i]]); c != 0 {
			return c
		}
	}
	return 0
}
