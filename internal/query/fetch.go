package query

import (
	"context"
	"log/slog"

	"github.com/edtrack/edtrack-go/internal/apperr"
)

// FetchFunc loads the value for a key through a domain service.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// fetchOptions holds per-read settings.
type fetchOptions struct {
	forceRefresh bool
}

// FetchOption customizes a single read.
type FetchOption func(*fetchOptions)

// ForceRefresh bypasses the cached value and blocks on a fresh fetch.
func ForceRefresh() FetchOption {
	return func(o *fetchOptions) { o.forceRefresh = true }
}

// Fetch resolves a read for key.
//
//   - A fresh cached value is returned without a network call.
//   - Concurrent reads for the same key coalesce into one outstanding
//     request.
//   - A stale cached value is returned immediately while a background
//     refetch revalidates it (stale-while-revalidate), unless
//     ForceRefresh is given.
//   - On failure any previous cached value stays intact; the classified
//     error surfaces to the caller and is never cached.
func Fetch[T any](ctx context.Context, s *Store, key Key, fn FetchFunc[T], opts ...FetchOption) (T, error) {
	var options fetchOptions
	for _, opt := range opts {
		opt(&options)
	}

	s.mu.Lock()
	e := s.ensure(key)

	if e.hasValue && !options.forceRefresh {
		fresh := !e.stale && s.now().Sub(e.fetchedAt) < s.staleAfter(key)
		cached, ok := e.value.(T)
		if ok && fresh {
			s.stats.Hits++
			s.mu.Unlock()
			return cached, nil
		}
		if ok {
			// Serve the stale value now, revalidate behind the caller.
			s.stats.Hits++
			s.stats.Revalidations++
			seq := e.issue()
			s.mu.Unlock()

			s.background.Add(1)
			go func() {
				defer s.background.Done()
				revalidate(context.WithoutCancel(ctx), s, key, seq, fn)
			}()
			return cached, nil
		}
		// Type mismatch for the stored value: fall through to a blocking
		// fetch, which overwrites it.
	}

	s.stats.Misses++
	seq := e.issue()
	s.mu.Unlock()

	return blockingFetch(ctx, s, key, seq, fn)
}

// issue hands out the next request sequence number for the entry.
// Callers must hold s.mu.
func (e *entry) issue() uint64 {
	e.issued++
	return e.issued
}

// blockingFetch runs fn through singleflight so concurrent reads for the
// same key trigger exactly one call, then applies the response under the
// sequence guard.
func blockingFetch[T any](ctx context.Context, s *Store, key Key, seq uint64, fn FetchFunc[T]) (T, error) {
	var zero T

	result, err, _ := s.group.Do(key.String(), func() (any, error) {
		return fn(ctx)
	})
	if err != nil {
		// Failures are surfaced, never cached; a previous value stays.
		return zero, apperr.Classify(err)
	}

	value, ok := result.(T)
	if !ok {
		return zero, apperr.New(apperr.KindClient, "cached value has unexpected type", nil)
	}

	s.apply(key, seq, value)
	return value, nil
}

// revalidate refreshes a stale entry in the background. Errors are
// logged and otherwise dropped: the caller already has the stale value,
// and the entry stays marked stale so the next read tries again.
func revalidate[T any](ctx context.Context, s *Store, key Key, seq uint64, fn FetchFunc[T]) {
	result, err, _ := s.group.Do(key.String(), func() (any, error) {
		return fn(ctx)
	})
	if err != nil {
		s.logger.WarnContext(ctx, "background revalidation failed",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
		return
	}

	if value, ok := result.(T); ok {
		s.apply(key, seq, value)
	}
}

// apply writes a response into the entry unless it lost the sequence
// race: responses issued before the latest invalidation (seq <= floor)
// or older than the applied one (seq < applied) are discarded, so an
// out-of-order slow response never overwrites newer data.
func (s *Store) apply(key Key, seq uint64, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.ensure(key)

	if seq <= e.floor || seq < e.applied {
		return
	}

	e.value = value
	e.hasValue = true
	e.fetchedAt = s.now()
	e.stale = false
	e.applied = seq
}
