// Package query implements the keyed cache that sits between views and
// domain services.
//
// Each read is addressed by a Key — an ordered sequence of primitive
// parts whose canonical string form defines structural equality. The
// Store keeps one entry per key with the last known value, a staleness
// timestamp, and in-flight request state. Reads deduplicate through
// singleflight, stale entries serve immediately while revalidating in
// the background, and mutations declare the key prefixes they
// invalidate so dependent reads refetch instead of drifting from server
// state.
//
// A per-key sequence number guards against out-of-order completion: a
// slower, earlier-issued response can never overwrite an entry once a
// later response has landed or the key has been invalidated.
package query
