// Package shop holds the cart and wishlist collaborators. The assistant
// only ever reads their item counts; mutation belongs to the storefront.
package shop

import "sync"

// Counter is the read-only view the assistant is given.
type Counter interface {
	ItemCount() int
}

// ItemStore is an in-memory set of product IDs backing a cart or wishlist.
type ItemStore struct {
	mu    sync.RWMutex
	items map[string]struct{}
}

// NewItemStore returns an empty store.
func NewItemStore() *ItemStore {
	return &ItemStore{items: make(map[string]struct{})}
}

// Add puts a product in the store. Adding an existing product is a no-op.
func (s *ItemStore) Add(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[productID] = struct{}{}
}

// Remove takes a product out of the store.
func (s *ItemStore) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, productID)
}

// Contains reports whether a product is in the store.
func (s *ItemStore) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[productID]
	return ok
}

// Clear empties the store.
func (s *ItemStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]struct{})
}

// ItemCount returns the number of distinct products in the store.
func (s *ItemStore) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
