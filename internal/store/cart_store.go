package store

import (
	"sort"
	"sync"

	"khalti-storefront-demo/internal/model"
)

// CartStore holds live carts keyed by session. Mutations are atomic from the
// caller's perspective; none of them can fail.
type CartStore interface {
	Get(sessionID string) model.Cart
	Add(sessionID string, item model.LineItem)
	Remove(sessionID string, productID int64)
	SetQuantity(sessionID string, productID int64, quantity int)
	Clear(sessionID string)
}

type memoryCartStore struct {
	mu    sync.RWMutex
	carts map[string]map[int64]model.LineItem
}

func NewMemoryCartStore() CartStore {
	return &memoryCartStore{
		carts: make(map[string]map[int64]model.LineItem),
	}
}

// Get returns a snapshot; the caller cannot mutate store state through it.
func (s *memoryCartStore) Get(sessionID string) model.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.carts[sessionID]
	items := make([]model.LineItem, 0, len(entries))
	for _, item := range entries {
		items = append(items, item)
	}
	// Map iteration order is random; keep snapshots stable for callers.
	sort.Slice(items, func(i, j int) bool {
		return items[i].ProductID < items[j].ProductID
	})

	return model.Cart{Items: items}
}

// Add inserts a new entry or merges quantity into an existing one.
// A non-positive requested quantity counts as 1.
func (s *memoryCartStore) Add(sessionID string, item model.LineItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.carts[sessionID]
	if entries == nil {
		entries = make(map[int64]model.LineItem)
		s.carts[sessionID] = entries
	}

	if existing, ok := entries[item.ProductID]; ok {
		existing.Quantity += item.Quantity
		entries[item.ProductID] = existing
		return
	}
	entries[item.ProductID] = item
}

func (s *memoryCartStore) Remove(sessionID string, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts[sessionID], productID)
}

// SetQuantity sets the quantity directly; anything <= 0 removes the entry,
// so a zero-quantity line can never be stored.
func (s *memoryCartStore) SetQuantity(sessionID string, productID int64, quantity int) {
	if quantity <= 0 {
		s.Remove(sessionID, productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.carts[sessionID]
	item, ok := entries[productID]
	if !ok {
		return
	}
	item.Quantity = quantity
	entries[productID] = item
}

func (s *memoryCartStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
}
