package query

import "strings"

// keySep joins key parts into the canonical string form. The unit
// separator cannot appear in resource names or identifiers, so the
// canonical form is collision-free.
const keySep = "\x1f"

// Key identifies a cached read: an ordered sequence of primitive parts
// (resource family, resource id, filter parameters). Keys are value
// typed — two keys with equal parts address the same cache state.
type Key []string

// K builds a Key from its parts.
func K(parts ...string) Key {
	return Key(parts)
}

// String returns the canonical serialized form. Canonicalization (stable
// part ordering) is the load-bearing invariant for structural equality,
// not object identity.
func (k Key) String() string {
	return strings.Join(k, keySep)
}

// Family returns the resource family, the first key part. Staleness
// windows are configured per family.
func (k Key) Family() string {
	if len(k) == 0 {
		return ""
	}
	return k[0]
}

// HasPrefix reports whether k extends prefix. Every key is an extension
// of the empty prefix. Invalidating [resource, "X"] must also invalidate
// [resource, "X", subresource]; this is the matching rule behind that.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i, part := range prefix {
		if k[i] != part {
			return false
		}
	}
	return true
}

// Equal reports structural equality.
func (k Key) Equal(other Key) bool {
	return len(k) == len(other) && k.HasPrefix(other)
}
