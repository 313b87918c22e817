// Package decaymap is a generic in-memory map where every entry has an
// expiration time. Expired entries are invisible to readers and are reaped
// either lazily on access or in bulk via Cleanup.
package decaymap

import (
	"sync"
	"time"
)

func zilch[T any]() T {
	var zero T
	return zero
}

type entry[V any] struct {
	value  V
	expiry time.Time
}

type Impl[K comparable, V any] struct {
	lock sync.RWMutex
	data map[K]entry[V]
}

func New[K comparable, V any]() *Impl[K, V] {
	return &Impl[K, V]{
		data: map[K]entry[V]{},
	}
}

// Get returns the value for key if it exists and has not expired.
func (m *Impl[K, V]) Get(key K) (V, bool) {
	m.lock.RLock()
	e, ok := m.data[key]
	m.lock.RUnlock()

	if !ok {
		return zilch[V](), false
	}

	if time.Now().After(e.expiry) {
		m.lock.Lock()
		// Check again in case another goroutine raced the write lock.
		if e, ok := m.data[key]; ok && time.Now().After(e.expiry) {
			delete(m.data, key)
		}
		m.lock.Unlock()
		return zilch[V](), false
	}

	return e.value, true
}

// Set stores value under key for the given ttl.
func (m *Impl[K, V]) Set(key K, value V, ttl time.Duration) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.data[key] = entry[V]{
		value:  value,
		expiry: time.Now().Add(ttl),
	}
}

// Delete removes key from the map, reporting whether it was present.
func (m *Impl[K, V]) Delete(key K) bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	_, ok := m.data[key]
	delete(m.data, key)
	return ok
}

// Take atomically removes key from the map and returns its value. This is the
// primitive that makes challenge consumption single-use: two concurrent Take
// calls for the same key cannot both succeed.
func (m *Impl[K, V]) Take(key K) (V, bool) {
	m.lock.Lock()
	defer m.lock.Unlock()

	e, ok := m.data[key]
	if !ok {
		return zilch[V](), false
	}

	delete(m.data, key)

	if time.Now().After(e.expiry) {
		return zilch[V](), false
	}

	return e.value, true
}

// Cleanup removes all expired entries.
func (m *Impl[K, V]) Cleanup() {
	now := time.Now()

	m.lock.Lock()
	defer m.lock.Unlock()

	for key, e := range m.data {
		if now.After(e.expiry) {
			delete(m.data, key)
		}
	}
}

// Len returns the number of entries, including any not yet reaped.
func (m *Impl[K, V]) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return len(m.data)
}
