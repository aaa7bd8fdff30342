package entitlement

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore implements Store with an in-memory map.
// Intended for development and tests; Set stands in for the webhook-driven
// writes the external processor performs in production.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]Record
}

// NewMemoryStore creates an empty in-memory entitlement store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[uuid.UUID]Record)}
}

func (m *MemoryStore) Get(ctx context.Context, userID uuid.UUID) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.records[userID]
	if !exists {
		return nil, ErrNotFound
	}

	recordCopy := record
	return &recordCopy, nil
}

// Set stores a record for a user, replacing any existing one.
func (m *MemoryStore) Set(userID uuid.UUID, record Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[userID] = record
}

// Remove deletes the record for a user.
func (m *MemoryStore) Remove(userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, userID)
}
