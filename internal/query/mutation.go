package query

import "context"

// MutateFunc performs a write through a domain service.
type MutateFunc[T any] func(ctx context.Context) (T, error)

// Mutate runs a mutation and, on success, invalidates every declared
// target (exact keys or key prefixes) before returning. A read issued
// synchronously from the caller's success path therefore observes the
// post-mutation cache state: the stale entries are already marked, even
// though their refetches happen lazily.
//
// On failure nothing is invalidated and the error surfaces unchanged.
func Mutate[T any](ctx context.Context, s *Store, fn MutateFunc[T], invalidates ...Key) (T, error) {
	var zero T

	value, err := fn(ctx)
	if err != nil {
		return zero, err
	}

	for _, prefix := range invalidates {
		s.Invalidate(prefix)
	}
	return value, nil
}

// MutateVoid is Mutate for operations without a meaningful result.
func MutateVoid(ctx context.Context, s *Store, fn func(ctx context.Context) error, invalidates ...Key) error {
	_, err := Mutate(ctx, s, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}, invalidates...)
	return err
}
