package store

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// Memory 인메모리 저장소. Put/Get 모두 복사본을 다룬다.
type Memory struct {
	mu   sync.RWMutex
	sets map[string][]int
}

func NewMemory() *Memory {
	return &Memory{sets: make(map[string][]int)}
}

func (m *Memory) Put(key string, data []int) error {
	cp := make([]int, len(data))
	copy(cp, data)

	m.mu.Lock()
	m.sets[key] = cp
	m.mu.Unlock()
	return nil
}

func (m *Memory) Get(key string) ([]int, error) {
	m.mu.RLock()
	data, ok := m.sets[key]
	m.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "key %q", key)
	}

	cp := make([]int, len(data))
	copy(cp, data)
	return cp, nil
}

func (m *Memory) Close() error { return nil }
