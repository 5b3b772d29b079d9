// Package rescache is the get-or-compute cache keyed by logical resource
// identity. Entries expire by wall clock; expired or absent entries trigger
// recomputation via the underlying request. Concurrent misses on the same key
// may both recompute and the last writer wins; there is no single-flight
// deduplication.
package rescache

import (
	"context"
	"sync"
	"time"
)

// Logical resource keys shared by the endpoint bindings. Mutating bindings
// must invalidate every key whose data they could have changed.
const (
	KeyOrganizations = "organizations"
	KeyAssessments   = "assessments"
)

// AssessmentSummaryKey returns the per-assessment summary key.
func AssessmentSummaryKey(assessmentID string) string {
	return "assessment-summary:" + assessmentID
}

// Store is the cache collaborator contract. Implementations must be safe for
// concurrent use.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Invalidate(key string)
}

type entry struct {
	value     any
	expiresAt time.Time
}

// MemoryStore is the default in-process Store. Expiry is checked on Get and
// expired entries are dropped there.
type MemoryStore struct {
	mu    sync.Mutex
	store map[string]entry
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{store: make(map[string]entry), now: time.Now}
}

func (m *MemoryStore) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.store[key]
	if !ok {
		return nil, false
	}
	if !m.now().Before(e.expiresAt) {
		delete(m.store, key)
		return nil, false
	}
	return e.value, true
}

func (m *MemoryStore) Set(key string, value any, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[key] = entry{value: value, expiresAt: m.now().Add(ttl)}
}

func (m *MemoryStore) Invalidate(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.store, key)
}

// GetOrCompute returns the live cached value under key, or invokes compute,
// stores the result with expiry now+ttl and returns it. Errors from compute
// are propagated unchanged and nothing is stored.
func GetOrCompute[T any](ctx context.Context, s Store, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	if v, ok := s.Get(key); ok {
		if typed, ok := v.(T); ok {
			cacheHitsTotal.WithLabelValues(key).Inc()
			return typed, nil
		}
	}
	cacheMissesTotal.WithLabelValues(key).Inc()

	v, err := compute(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	s.Set(key, v, ttl)
	return v, nil
}
