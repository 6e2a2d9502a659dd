package kvstore

import (
	"context"
	"sync"
)

// MockStore is an in-memory Store for tests. The *Func fields let a test
// inject failures; call records capture every write.
type MockStore struct {
	mu   sync.Mutex
	data map[string]string

	GetFunc    func(key string) (string, bool)
	SetFunc    func(key, value string) error
	RemoveFunc func(key string) error

	SetCalls    []string
	RemoveCalls []string
}

// NewMock creates an empty in-memory store.
func NewMock() *MockStore {
	return &MockStore{data: make(map[string]string)}
}

// Seed pre-populates a key without recording a call.
func (m *MockStore) Seed(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func (m *MockStore) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(key)
	}
	v, ok := m.data[key]
	return v, ok
}

func (m *MockStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls = append(m.SetCalls, key)
	if m.SetFunc != nil {
		return m.SetFunc(key, value)
	}
	m.data[key] = value
	return nil
}

func (m *MockStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveCalls = append(m.RemoveCalls, key)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(key)
	}
	delete(m.data, key)
	return nil
}

// Has reports whether a key currently exists.
func (m *MockStore) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}
