package db

import (
	"context"
	"sync"
)

// Memory is an in-process Store. Setting FailGet or FailSet makes the corresponding
// operations return that error, which lets tests exercise the persistence failure paths.
type Memory struct {
	mu      sync.Mutex
	values  map[string]string
	FailGet error
	FailSet error
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

// Get returns the value stored under key.
func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailGet != nil {
		return "", false, m.FailGet
	}

	value, ok := m.values[key]

	return value, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSet != nil {
		return m.FailSet
	}

	m.values[key] = value

	return nil
}

// Remove deletes key.
func (m *Memory) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSet != nil {
		return m.FailSet
	}

	delete(m.values, key)

	return nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
