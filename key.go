package namedtuple

// Key is the immutable textual identity of a tuple field.
// Keys are fixed when a schema is declared and never change afterwards.
type Key struct {
	text string
}

// NewKey returns the Key for text.
func NewKey(text string) Key { return Key{text: text} }

// String returns the key text.
func (k Key) String() string { return k.text }

// Len returns the key length in bytes. Go strings carry no terminator, so the
// length is exactly the number of key characters.
func (k Key) Len() int { return len(k.text) }

// IsZero reports whether k is the empty key.
func (k Key) IsZero() bool { return k.text == "" }

// Equal reports whether both keys have the same length and the same bytes.
func (k Key) Equal(other Key) bool {
	if k.Len() != other.Len() {
		return false
	}
	for i := 0; i < len(k.text); i++ {
		if k.text[i] != other.text[i] {
			return false
		}
	}
	return true
}

// EqualText reports whether v spells the key.
func (k Key) EqualText(v string) bool { return k.Equal(Key{text: v}) }
