package order

import (
	"math"
	"reflect"
	"testing"
	"time"
)

type version struct{ major, minor int }

func (v version) Compare(o version) int {
	if v.major != o.major {
		return v.major - o.major
	}
	return v.minor - o.minor
}

type box struct{ items []int }

func (b *box) Equal(o *box) bool { return len(b.items) == len(o.items) }

func TestEqual(t *testing.T) {
	a, b := 3, 3
	if !Equal(&a, &b) {
		t.Fatalf("ints")
	}
	s1, s2 := []int{1, 2}, []int{1, 2}
	if !Equal(&s1, &s2) {
		t.Fatalf("slices compare by content")
	}
	b1, b2 := box{items: []int{1}}, box{items: []int{9}}
	if !Equal(&b1, &b2) {
		t.Fatalf("pointer-receiver Equal method must be used")
	}
	t1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.In(time.FixedZone("x", 7200))
	if !Equal(&t1, &t2) {
		t.Fatalf("Equal method on time.Time must be used")
	}
	var e1, e2 any = []int{1}, []int{1}
	if !Equal(&e1, &e2) {
		t.Fatalf("interfaces holding slices")
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		got  func() (int, bool)
		want int
		ok   bool
	}{
		{"int", func() (int, bool) { a, b := 1, 2; return Compare(&a, &b) }, -1, true},
		{"uint", func() (int, bool) { a, b := uint8(9), uint8(2); return Compare(&a, &b) }, 1, true},
		{"float", func() (int, bool) { a, b := 1.5, 1.5; return Compare(&a, &b) }, 0, true},
		{"nan first", func() (int, bool) { a, b := math.NaN(), -1.0; return Compare(&a, &b) }, -1, true},
		{"string", func() (int, bool) { a, b := "b", "a"; return Compare(&a, &b) }, 1, true},
		{"bool", func() (int, bool) { a, b := false, true; return Compare(&a, &b) }, -1, true},
		{"method", func() (int, bool) { a, b := version{1, 9}, version{2, 0}; return Compare(&a, &b) }, -1, true},
		{"prefix", func() (int, bool) { a, b := []int{1}, []int{1, 0}; return Compare(&a, &b) }, -1, true},
		{"array", func() (int, bool) { a, b := [2]string{"x", "b"}, [2]string{"x", "a"}; return Compare(&a, &b) }, 1, true},
		{"map", func() (int, bool) { a, b := map[int]int{}, map[int]int{}; return Compare(&a, &b) }, 0, false},
	}
	for _, c := range cases {
		got, ok := c.got()
		if got != c.want || ok != c.ok {
			t.Fatalf("%s: got (%d, %v), want (%d, %v)", c.name, got, ok, c.want, c.ok)
		}
	}
}

func TestOrderable(t *testing.T) {
	cases := []struct {
		t    reflect.Type
		want bool
	}{
		{reflect.TypeFor[int](), true},
		{reflect.TypeFor[string](), true},
		{reflect.TypeFor[[]float64](), true},
		{reflect.TypeFor[[3]bool](), true},
		{reflect.TypeFor[version](), true},
		{reflect.TypeFor[time.Time](), true},
		{reflect.TypeFor[map[string]int](), false},
		{reflect.TypeFor[[]map[string]int](), false},
		{reflect.TypeFor[*int](), false},
		{reflect.TypeFor[box](), false},
		{reflect.TypeFor[any](), false},
	}
	for _, c := range cases {
		if got := Orderable(c.t); got != c.want {
			t.Fatalf("Orderable(%v) = %v, want %v", c.t, got, c.want)
		}
	}
}

func TestAnyVariants(t *testing.T) {
	if !EqualAny(1, 1) || EqualAny(1, int64(1)) || EqualAny(nil, 0) || !EqualAny(nil, nil) {
		t.Fatalf("EqualAny type handling")
	}
	if !EqualAny(box{items: []int{1}}, box{items: []int{2}}) {
		t.Fatalf("EqualAny must find pointer-receiver Equal")
	}
	if c, ok := CompareAny(version{1, 0}, version{0, 5}); !ok || c != 1 {
		t.Fatalf("CompareAny method: %d %v", c, ok)
	}
	if _, ok := CompareAny(1, "1"); ok {
		t.Fatalf("CompareAny across types must fail")
	}
}
