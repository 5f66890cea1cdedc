// Package locks provides per-user mutual exclusion for wallet operations.
package locks

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type keyedEntry struct {
	ch   chan struct{} // Holds one token while the key is locked
	refs int
}

// KeyedMutex is an in-process lock keyed by user id. Entries are removed once
// no goroutine holds or waits for them.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*keyedEntry
}

// NewKeyedMutex creates a new KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{entries: make(map[uuid.UUID]*keyedEntry)}
}

// WithUserLock runs fn while holding the lock of userID. Waiting stops when ctx is done.
func (m *KeyedMutex) WithUserLock(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context) error) error {
	e := m.acquire(userID)
	defer m.release(userID, e)

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-e.ch }()

	return fn(ctx)
}

func (m *KeyedMutex) acquire(userID uuid.UUID) *keyedEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[userID]
	if !ok {
		e = &keyedEntry{ch: make(chan struct{}, 1)}
		m.entries[userID] = e
	}
	e.refs++
	return e
}

func (m *KeyedMutex) release(userID uuid.UUID, e *keyedEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(m.entries, userID)
	}
}

// size reports the number of live entries.
func (m *KeyedMutex) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
