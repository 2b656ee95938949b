package namedtuple

// Get returns a copy of the value of f in t. A nested tuple is returned with
// its own storage.
func Get[S any, V any](t *Tuple[S], f Field[S, V]) V {
	v := *slot(t, f)
	detachNested(&v)
	return v
}

// Ref returns a pointer into the storage of t for f. Writes through the
// pointer are visible to later reads of t.
func Ref[S any, V any](t *Tuple[S], f Field[S, V]) *V { return slot(t, f) }

// Take moves the value of f out of t: it returns the value and leaves the
// slot holding a fresh zero value. A reference slot is detached from its
// variable, which keeps its value.
func Take[S any, V any](t *Tuple[S], f Field[S, V]) V {
	v := *slot(t, f)
	t.slots[f.index] = newZero[V]()
	if t.refs != nil {
		t.refs[f.index] = false
	}
	return v
}

// Set assigns v to f in t.
func Set[S any, V any](t *Tuple[S], f Field[S, V], v V) {
	p := slot(t, f)
	*p = v
	detachNested(p)
}

func slot[S any, V any](t *Tuple[S], f Field[S, V]) *V {
	f.mustBound()
	t.ensure()
	return t.slots[f.index].(*V)
}
