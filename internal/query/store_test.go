package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/edtrack/edtrack-go/internal/apperr"
	"github.com/edtrack/edtrack-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(staleAfter time.Duration) *Store {
	return NewStore(config.CacheConfig{DefaultStaleAfter: staleAfter}, nil)
}

func TestFetchPopulatesAndServesFromCache(t *testing.T) {
	t.Parallel()

	store := newTestStore(time.Minute)
	key := K("courses", "123")

	var calls atomic.Int32
	fn := func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "go-basics", nil
	}

	first, err := Fetch(context.Background(), store, key, fn)
	require.NoError(t, err)

	// Second call within the staleness window: structurally equal value,
	// no second network call.
	second, err := Fetch(context.Background(), store, key, fn)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int64(1), store.Stats().Hits)
	assert.Equal(t, int64(1), store.Stats().Misses)
}

func TestConcurrentReadsCoalesceIntoOneCall(t *testing.T) {
	t.Parallel()

	store := newTestStore(time.Minute)
	key := K("courses")

	var calls atomic.Int32
	release := make(chan struct{})
	fn := func(ctx context.Context) ([]string, error) {
		calls.Add(1)
		<-release
		return []string{"a", "b"}, nil
	}

	const readers = 8
	results := make([][]string, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := Fetch(context.Background(), store, key, fn)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	// Give every reader time to attach to the in-flight request.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "all reads must share one network call")
	for _, r := range results {
		assert.Equal(t, []string{"a", "b"}, r)
	}
}

func TestFailureLeavesPreviousValueIntact(t *testing.T) {
	t.Parallel()

	store := newTestStore(time.Minute)
	key := K("courses", "123")

	_, err := Fetch(context.Background(), store, key, func(ctx context.Context) (string, error) {
		return "cached", nil
	})
	require.NoError(t, err)

	// Force a refresh that fails.
	_, err = Fetch(context.Background(), store, key, func(ctx context.Context) (string, error) {
		return "", apperr.New(apperr.KindServer, "backend exploded", nil)
	}, ForceRefresh())

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindServer))

	// Previous value is still there; the failure was not cached.
	cached, ok := store.Peek(key)
	require.True(t, ok)
	assert.Equal(t, "cached", cached)
}

func TestPlainErrorIsClassifiedAtTheBoundary(t *testing.T) {
	t.Parallel()

	store := newTestStore(time.Minute)

	_, err := Fetch(context.Background(), store, K("courses"), func(ctx context.Context) (string, error) {
		return "", errors.New("plain failure")
	})

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.KindClient, appErr.Kind)
}

func TestStaleWhileRevalidate(t *testing.T) {
	t.Parallel()

	store := newTestStore(time.Minute)
	key := K("courses", "123")

	current := time.Unix(1000, 0)
	var mu sync.Mutex
	store.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}

	_, err := Fetch(context.Background(), store, key, func(ctx context.Context) (string, error) {
		return "v1", nil
	})
	require.NoError(t, err)

	// Pass the staleness window.
	mu.Lock()
	current = current.Add(2 * time.Minute)
	mu.Unlock()

	// The stale value is served immediately; the refetch happens behind
	// the caller.
	got, err := Fetch(context.Background(), store, key, func(ctx context.Context) (string, error) {
		return "v2", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	store.Wait()

	cached, ok := store.Peek(key)
	require.True(t, ok)
	assert.Equal(t, "v2", cached)
}

func TestForceRefreshBlocksForFreshValue(t *testing.T) {
	t.Parallel()

	store := newTestStore(time.Minute)
	key := K("courses", "123")

	_, err := Fetch(context.Background(), store, key, func(ctx context.Context) (string, error) {
		return "v1", nil
	})
	require.NoError(t, err)

	got, err := Fetch(context.Background(), store, key, func(ctx context.Context) (string, error) {
		return "v2", nil
	}, ForceRefresh())
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
}

func TestInvalidatePrefixMarksSubkeysStale(t *testing.T) {
	t.Parallel()

	store := newTestStore(time.Minute)
	courseKey := K("courses", "abc")
	lessonsKey := K("courses", "abc", "lessons")
	otherKey := K("courses", "xyz")

	fetchCount := func(key Key, value string, calls *atomic.Int32) {
		_, err := Fetch(context.Background(), store, key, func(ctx context.Context) (string, error) {
			calls.Add(1)
			return value, nil
		})
		require.NoError(t, err)
	}

	var courseCalls, lessonCalls, otherCalls atomic.Int32
	fetchCount(courseKey, "course", &courseCalls)
	fetchCount(lessonsKey, "lessons", &lessonCalls)
	fetchCount(otherKey, "other", &otherCalls)

	// Invalidating the course prefix also invalidates its subresources,
	// but not sibling keys.
	store.Invalidate(K("courses", "abc"))

	fetchCount(courseKey, "course2", &courseCalls)
	fetchCount(lessonsKey, "lessons2", &lessonCalls)
	fetchCount(otherKey, "other2", &otherCalls)
	store.Wait()

	assert.Equal(t, int32(2), courseCalls.Load())
	assert.Equal(t, int32(2), lessonCalls.Load())
	assert.Equal(t, int32(1), otherCalls.Load(), "sibling key must stay cached")
}

func TestOutOfOrderResponseDoesNotOverwrite(t *testing.T) {
	t.Parallel()

	store := newTestStore(time.Minute)
	key := K("courses", "123")

	releaseR1 := make(chan struct{})
	r1Done := make(chan struct{})

	// R1: issued first, resolves last.
	go func() {
		defer close(r1Done)
		_, _ = Fetch(context.Background(), store, key, func(ctx context.Context) (string, error) {
			<-releaseR1
			return "r1-stale", nil
		})
	}()

	// Let R1 get in flight, then invalidate the key.
	time.Sleep(50 * time.Millisecond)
	store.Invalidate(key)

	// R2: issued after the invalidation, resolves immediately.
	got, err := Fetch(context.Background(), store, key, func(ctx context.Context) (string, error) {
		return "r2-fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "r2-fresh", got)

	// Now let R1's slow response land. It must be discarded.
	close(releaseR1)
	<-r1Done

	cached, ok := store.Peek(key)
	require.True(t, ok)
	assert.Equal(t, "r2-fresh", cached)
}

func TestSubscribeRefCountsAndSweep(t *testing.T) {
	t.Parallel()

	store := newTestStore(time.Minute)
	key := K("courses", "123")

	release1 := store.Subscribe(key)
	release2 := store.Subscribe(key)

	_, err := Fetch(context.Background(), store, key, func(ctx context.Context) (string, error) {
		return "v1", nil
	})
	require.NoError(t, err)

	// Still observed: sweep keeps the entry.
	release1()
	assert.Zero(t, store.Sweep())
	_, ok := store.Peek(key)
	assert.True(t, ok)

	// Last observer gone: the entry is garbage-eligible.
	release2()
	assert.Equal(t, 1, store.Sweep())
	_, ok = store.Peek(key)
	assert.False(t, ok)

	// Releasing twice must not underflow the refcount.
	release2()
	release1()
	assert.Zero(t, store.Sweep())
}

func TestStaleAfterPerFamily(t *testing.T) {
	t.Parallel()

	store := NewStore(config.CacheConfig{
		DefaultStaleAfter: time.Minute,
		StaleAfter: map[string]time.Duration{
			"reports": time.Second,
		},
	}, nil)

	assert.Equal(t, time.Second, store.staleAfter(K("reports", "progress")))
	assert.Equal(t, time.Minute, store.staleAfter(K("courses", "abc")))
}
