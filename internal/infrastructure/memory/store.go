// Package memory provides in-memory implementations of every persistence
// port, backed by one shared Store. The test suite runs the full application
// against it; nothing here talks to a database.
package memory

import (
	"sync"

	"github.com/smartpark/sims-api/internal/domain/entity"
)

// Store is the shared in-memory state. Entities are held by value so a
// snapshot is a plain map copy.
type Store struct {
	mu       sync.RWMutex
	parts    map[string]entity.SparePart
	stockIn  map[string]entity.StockInEntry
	stockOut map[string]entity.StockOutEntry
	users    map[string]entity.User
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		parts:    make(map[string]entity.SparePart),
		stockIn:  make(map[string]entity.StockInEntry),
		stockOut: make(map[string]entity.StockOutEntry),
		users:    make(map[string]entity.User),
	}
}

type snapshot struct {
	parts    map[string]entity.SparePart
	stockIn  map[string]entity.StockInEntry
	stockOut map[string]entity.StockOutEntry
	users    map[string]entity.User
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		parts:    copyMap(s.parts),
		stockIn:  copyMap(s.stockIn),
		stockOut: copyMap(s.stockOut),
		users:    copyMap(s.users),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parts = snap.parts
	s.stockIn = snap.stockIn
	s.stockOut = snap.stockOut
	s.users = snap.users
}

func copyMap[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
