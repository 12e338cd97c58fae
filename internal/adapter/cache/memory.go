package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"quickcamp/internal/core/domain"
	"quickcamp/internal/core/port"
)

type memoryEntry struct {
	items   []domain.ReferenceItem
	expires time.Time
}

// Memory is a process local reference cache. Entries expire after ttl; a
// non-positive ttl keeps them until overwritten.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

var _ port.ReferenceCache = (*Memory)(nil)

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{ttl: ttl, now: time.Now, entries: make(map[string]memoryEntry)}
}

func (m *Memory) Get(_ context.Context, key string) ([]domain.ReferenceItem, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && m.now().After(e.expires) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, false, nil
	}
	return slices.Clone(e.items), true, nil
}

func (m *Memory) Set(_ context.Context, key string, items []domain.ReferenceItem) error {
	e := memoryEntry{items: slices.Clone(items)}
	if m.ttl > 0 {
		e.expires = m.now().Add(m.ttl)
	}
	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}
