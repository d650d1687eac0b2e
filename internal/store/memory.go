package store

import (
	"context"
	"sync"
)

// MemoryStore keeps everything in a map. Used by the memory backend and tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MemoryStore) Atomic(ctx context.Context, fn func(tx Store) error) error {
	buf := newBuffer(m)
	if err := fn(buf); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range buf.deletes {
		delete(m.data, key)
	}
	for _, key := range buf.pendingWrites() {
		m.data[key] = buf.writes[key]
	}
	return nil
}

// Len reports the number of stored keys.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
