// Package namedtuple provides statically keyed heterogeneous tuples:
//
// - Schemas: an ordered list of (Key, value type) descriptors, checked for duplicate keys when declared
// - Tuples: positional storage with typed, key-addressed Get/Ref/Take/Set through Field handles
// - Keyed comparison: Equal/Compare match values by key, so permuted schemas compare naturally
// - Positional interop: an explicit Values view, Pack, GetAt and Unpack2..4 for destructuring
//
// Design policy:
// - Keys are fixed at declaration; there are no runtime-chosen keys.
// - Field[S, V] ties a key to its schema (tag type S) and value type V, so a foreign key or a
// mistyped value is a compile error. The key is resolved to its position once.
// - Declaration problems (empty or duplicate keys) are reported before any tuple exists;
// MustDeclare turns them into an initialization-time panic.
// - Comparison walks the keys of the left operand in its declared order.
//
// Typical usage:
//
//	type person struct{}
//
//	var (
//		Person = namedtuple.MustDeclare[person](
//			namedtuple.Named[string]("name"),
//			namedtuple.Named[int]("age"),
//		)
//		Name = namedtuple.FieldOf[person, string](Person, "name")
//		Age  = namedtuple.FieldOf[person, int](Person, "age")
//	)
//
//	t := Person.MustMake("Ann", 41)
//	namedtuple.Set(t, Age, 42)
//	age := namedtuple.Get(t, Age)
//
// The namedtuplegen command generates such declarations from a YAML or JSON
// manifest and rejects duplicate keys at build time.
package namedtuple
