package query

import (
	"log/slog"
	"sync"
	"time"

	"github.com/edtrack/edtrack-go/internal/config"
	"golang.org/x/sync/singleflight"
)

// entry holds the cache state for one canonical key.
type entry struct {
	key Key

	value     any
	hasValue  bool
	fetchedAt time.Time
	stale     bool

	// issued is the highest sequence number handed to a request for this
	// key; applied is the sequence of the response currently held. A
	// response only lands if its sequence beats both applied and the
	// invalidation floor.
	issued  uint64
	applied uint64
	floor   uint64

	// refs counts active subscriptions. Entries with zero refs are
	// garbage-eligible on Sweep.
	refs int
}

// Stats reports cache effectiveness counters.
type Stats struct {
	Hits          int64
	Misses        int64
	Revalidations int64
	Invalidations int64
}

// Store is the query cache: one entry per canonical key, single-writer
// updates behind a mutex, request coalescing through singleflight.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	stats   Stats

	cfg    config.CacheConfig
	group  singleflight.Group
	logger *slog.Logger

	// now is replaceable in tests.
	now func() time.Time

	// background tracks revalidation goroutines so tests can drain them.
	background sync.WaitGroup
}

// NewStore creates an empty Store with the given staleness configuration.
func NewStore(cfg config.CacheConfig, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		entries: make(map[string]*entry),
		cfg:     cfg,
		logger:  log.With(slog.String("component", "query_store")),
		now:     time.Now,
	}
}

// staleAfter returns the staleness window for a key, by family with a
// store-wide default.
func (s *Store) staleAfter(key Key) time.Duration {
	if d, ok := s.cfg.StaleAfter[key.Family()]; ok {
		return d
	}
	return s.cfg.DefaultStaleAfter
}

// ensure returns the entry for key, creating it lazily.
// Callers must hold s.mu.
func (s *Store) ensure(key Key) *entry {
	canonical := key.String()
	e, ok := s.entries[canonical]
	if !ok {
		e = &entry{key: key}
		s.entries[canonical] = e
	}
	return e
}

// Subscribe registers an observer for key and returns the matching
// release function. Entries are created lazily on first subscription and
// become garbage-eligible when the last observer releases.
func (s *Store) Subscribe(key Key) func() {
	s.mu.Lock()
	e := s.ensure(key)
	e.refs++
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			e.refs--
			s.mu.Unlock()
		})
	}
}

// Sweep removes entries with no active subscriptions and returns how
// many were dropped. Reference counting, not wall clock, decides
// eligibility.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for canonical, e := range s.entries {
		if e.refs <= 0 {
			delete(s.entries, canonical)
			dropped++
		}
	}
	return dropped
}

// Invalidate marks every entry matching the prefix (exact key or any
// extension of it) stale and raises its invalidation floor so in-flight
// responses issued before this point can no longer land. The next read
// for a matching key refetches.
func (s *Store) Invalidate(prefix Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if !e.key.HasPrefix(prefix) {
			continue
		}
		e.stale = true
		e.issued++
		e.floor = e.issued
		s.stats.Invalidations++
		s.group.Forget(e.key.String())
	}
}

// Peek returns the cached value for key without triggering any fetch.
func (s *Store) Peek(key Key) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key.String()]
	if !ok || !e.hasValue {
		return nil, false
	}
	return e.value, true
}

// Stats returns a snapshot of the cache counters.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Wait blocks until outstanding background revalidations finish.
// Intended for tests and shutdown.
func (s *Store) Wait() {
	s.background.Wait()
}
