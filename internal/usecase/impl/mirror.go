package impl

import (
	"sync"
	"sync/atomic"
)

// mirror guards a mirrored value. Every refetch takes a ticket when it starts and
// its result is applied only if no later-started refetch was applied before it,
// and only while the source it was read from is still current.
type mirror[S comparable, V any] struct {
	mu      sync.RWMutex
	source  S
	value   V
	seq     atomic.Uint64
	applied uint64
}

// begin returns the current source and a fresh ticket.
func (m *mirror[S, V]) begin() (S, uint64) {
	m.mu.RLock()
	source := m.source
	m.mu.RUnlock()

	return source, m.seq.Add(1)
}

// apply stores value when ticket is the newest applied for source.
func (m *mirror[S, V]) apply(source S, ticket uint64, value V) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.source != source || ticket <= m.applied {
		return false
	}
	m.applied = ticket
	m.value = value

	return true
}

// reset switches the source and drops any refetch still in flight.
func (m *mirror[S, V]) reset(source S, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.source = source
	m.value = value
	m.applied = m.seq.Load()
}

func (m *mirror[S, V]) get() V {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.value
}

func (m *mirror[S, V]) current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.source
}

// update rewrites the value in place, for writes whose result is known locally.
func (m *mirror[S, V]) update(fn func(V) V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.value = fn(m.value)
}

// amend rewrites the value only while source is still current.
func (m *mirror[S, V]) amend(source S, fn func(V) V) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.source != source {
		return false
	}
	m.value = fn(m.value)

	return true
}
