package memory

import (
	"context"
	"sort"

	"github.com/smartpark/sims-api/internal/domain/entity"
	"github.com/smartpark/sims-api/internal/domain/repository"
)

var _ repository.StockInRepository = (*StockInRepository)(nil)

// StockInRepository in-memory StockInRepository.
type StockInRepository struct {
	store *Store
}

// NewStockInRepository builds the repository over the store.
func NewStockInRepository(store *Store) *StockInRepository {
	return &StockInRepository{store: store}
}

// Create stores a ledger entry.
func (r *StockInRepository) Create(ctx context.Context, entry *entity.StockInEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.stockIn[entry.ID] = *entry
	return nil
}

// GetByID returns a copy of the entry, or nil when it does not exist.
func (r *StockInRepository) GetByID(ctx context.Context, id string) (*entity.StockInEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if e, ok := r.store.stockIn[id]; ok {
		return &e, nil
	}
	return nil, nil
}

// List returns all entries, movement date descending.
func (r *StockInRepository) List(ctx context.Context) ([]*entity.StockInEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	entries := make([]*entity.StockInEntry, 0, len(r.store.stockIn))
	for id := range r.store.stockIn {
		e := r.store.stockIn[id]
		entries = append(entries, &e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.After(entries[j].Date)
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}
