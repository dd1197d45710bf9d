package storage

import (
	"context"
	"sync"
)

// MockStore is an in-memory implementation of Store for testing and for
// running without Redis.
type MockStore struct {
	mu       sync.Mutex
	rebooted bool
	pingErr  error
	saveErr  error
}

// Ensure MockStore implements Store interface
var _ Store = (*MockStore)(nil)

// NewMockStore creates a new mock store
func NewMockStore() *MockStore {
	return &MockStore{}
}

// SetPingError makes Ping fail with the given error
func (m *MockStore) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingErr = err
}

// SetSaveError makes SaveRebooted fail with the given error
func (m *MockStore) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr = err
}

func (m *MockStore) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pingErr
}

func (m *MockStore) Close() error { return nil }

func (m *MockStore) SaveRebooted(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.rebooted = true
	return nil
}

func (m *MockStore) Rebooted(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rebooted, nil
}
