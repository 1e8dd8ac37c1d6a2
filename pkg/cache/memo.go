package cache

import (
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memo is a concurrency-safe memoization cache. The zero value is not
// usable; construct with NewMemo.
type Memo[V any] struct {
	mu    sync.RWMutex
	items map[string]V
	group singleflight.Group
}

// NewMemo creates an empty memoization cache.
func NewMemo[V any]() *Memo[V] {
	return &Memo[V]{items: make(map[string]V)}
}

// Get retrieves a memoized value by key.
func (m *Memo[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok
}

// GetOrCompute returns the memoized value for key, calling fn to compute it
// on a miss. Concurrent misses for the same key run fn once. If fn returns
// an error, nothing is stored and the error is returned.
func (m *Memo[V]) GetOrCompute(key string, fn func() (V, error)) (V, error) {
	if v, ok := m.Get(key); ok {
		return v, nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		// Re-check under singleflight: a racing call may have stored the
		// value between the fast path and here.
		if v, ok := m.Get(key); ok {
			return v, nil
		}
		v, err := fn()
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.items[key] = v
		m.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Len returns the number of memoized entries.
func (m *Memo[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Clear removes all entries.
func (m *Memo[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]V)
}

// Key builds a composite cache key from an artifact kind and its parts.
// The separator makes keys unambiguous as long as parts contain no '\x1f'.
func Key(kind string, parts ...string) string {
	if len(parts) == 0 {
		return kind
	}
	return kind + "\x1f" + strings.Join(parts, "\x1f")
}
