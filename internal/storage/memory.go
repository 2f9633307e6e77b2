package storage

import (
	"errors"
	"sort"
	"sync"
)

// InMemoryItemStore is a thread-safe in-memory implementation of ItemStore.
type InMemoryItemStore struct {
	mu    sync.RWMutex
	items map[string]*Record
	next  uint64
}

// NewInMemoryItemStore creates a new InMemoryItemStore.
func NewInMemoryItemStore() *InMemoryItemStore {
	return &InMemoryItemStore{
		items: make(map[string]*Record),
	}
}

// Get retrieves a copy of an item by ID. Returns nil if not found.
func (s *InMemoryItemStore) Get(id string) *Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.items[id]
	if !ok {
		return nil
	}
	return r.Clone()
}

// Put stores or replaces an item. The store keeps its own copy.
func (s *InMemoryItemStore) Put(r *Record) error {
	if r == nil {
		return nil
	}
	if r.ID == "" {
		return errors.New("storage: record has no ID")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := r.Clone()
	if existing, ok := s.items[r.ID]; ok {
		cp.seq = existing.seq
	} else {
		s.next++
		cp.seq = s.next
	}
	s.items[r.ID] = cp
	return nil
}

// Delete removes an item by ID. Returns true if deleted, false if not found.
func (s *InMemoryItemStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.items[id]; exists {
		delete(s.items, id)
		return true
	}
	return false
}

// List returns all stored items in insertion order.
func (s *InMemoryItemStore) List() []*Record {
	return s.list(func(*Record) bool { return true })
}

// ListByFolder returns the items of one folder in insertion order.
func (s *InMemoryItemStore) ListByFolder(folder string) []*Record {
	return s.list(func(r *Record) bool { return r.Folder == folder })
}

func (s *InMemoryItemStore) list(keep func(*Record) bool) []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Record, 0, len(s.items))
	for _, r := range s.items {
		if keep(r) {
			result = append(result, r.Clone())
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].seq < result[j].seq
	})
	return result
}

// Count returns the number of stored items.
func (s *InMemoryItemStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Clear removes all stored items.
func (s *InMemoryItemStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*Record)
}

// Exists checks if an item with the given ID exists.
func (s *InMemoryItemStore) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.items[id]
	return exists
}

// Ensure InMemoryItemStore implements ItemStore.
var _ ItemStore = (*InMemoryItemStore)(nil)
