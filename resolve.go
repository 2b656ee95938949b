package namedtuple

import "strconv"

// IsOneOf reports whether needle equals any of keys.
func IsOneOf(needle Key, keys ...Key) bool {
	found := false
	for _, k := range keys {
		found = found || needle.Equal(k)
	}
	return found
}

// IndexOfKey returns the position of the first key in haystack equal to
// needle, or -1 when needle is absent. Callers are expected to establish
// membership with IsOneOf first; -1 is never a valid slot.
func IndexOfKey(haystack []Key, needle Key) int {
	for i, k := range haystack {
		if needle.Equal(k) {
			return i
		}
	}
	return -1
}

// AllUnique reports whether keys are pairwise distinct.
//
// Each key is resolved to the first position holding an equal key and that
// position is marked. A duplicate resolves to the earlier position, so the
// position owned by the duplicate is never marked.
func AllUnique(keys []Key) bool {
	seen := markFirstOccurrences(keys)
	for _, ok := range seen {
		if !ok {
			return false
		}
	}
	return true
}

// CheckKeys runs the uniqueness check and reports one duplicate_key issue
// for every position whose key was already declared earlier in keys.
func CheckKeys(keys ...Key) error {
	seen := markFirstOccurrences(keys)
	var iss Issues
	for i, ok := range seen {
		if ok {
			continue
		}
		first := IndexOfKey(keys, keys[i])
		iss = AppendIssues(iss, newIssue(CodeDuplicateKey, keys[i].String(), i,
			map[string]string{"first": strconv.Itoa(first)}))
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func markFirstOccurrences(keys []Key) []bool {
	seen := make([]bool, len(keys))
	for _, k := range keys {
		seen[IndexOfKey(keys, k)] = true
	}
	return seen
}
