package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/vyrodovalexey/contacts-api/internal/model"
)

// MemoryStore implements Store with an in-process map.
type MemoryStore struct {
	mu       sync.RWMutex
	contacts map[string]model.Contact
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a new MemoryStore instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		contacts: make(map[string]model.Contact),
	}
}

// Create stores a copy of contact if its name is not present yet.
func (s *MemoryStore) Create(ctx context.Context, contact *model.Contact) (bool, error) {
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("create contact: %w", ctx.Err())
	default:
	}

	if contact == nil {
		return false, ErrNilContact
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.contacts[contact.Name]; exists {
		return false, nil
	}

	s.contacts[contact.Name] = *contact

	return true, nil
}

// Retrieve returns a copy of the contact stored under name.
func (s *MemoryStore) Retrieve(ctx context.Context, name string) (*model.Contact, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("retrieve contact: %w", ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	contact, exists := s.contacts[name]
	if !exists {
		return nil, nil
	}

	return &contact, nil
}

// Len returns the number of stored contacts.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.contacts)
}

// Close is a no-op; the map lives as long as the process.
func (s *MemoryStore) Close() error {
	return nil
}
