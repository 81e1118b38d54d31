package memory

import (
	"context"
	"sort"
	"time"

	"github.com/smartpark/sims-api/internal/domain/entity"
	"github.com/smartpark/sims-api/internal/domain/repository"
)

var _ repository.StockOutRepository = (*StockOutRepository)(nil)

// StockOutRepository in-memory StockOutRepository.
type StockOutRepository struct {
	store *Store
}

// NewStockOutRepository builds the repository over the store.
func NewStockOutRepository(store *Store) *StockOutRepository {
	return &StockOutRepository{store: store}
}

// Create stores a ledger entry.
func (r *StockOutRepository) Create(ctx context.Context, entry *entity.StockOutEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.stockOut[entry.ID] = *entry
	return nil
}

// GetByID returns a copy of the entry, or nil when it does not exist.
func (r *StockOutRepository) GetByID(ctx context.Context, id string) (*entity.StockOutEntry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if e, ok := r.store.stockOut[id]; ok {
		return &e, nil
	}
	return nil, nil
}

// Update rewrites an entry's mutable fields.
func (r *StockOutRepository) Update(ctx context.Context, entry *entity.StockOutEntry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if stored, ok := r.store.stockOut[entry.ID]; ok {
		stored.SparePartID = entry.SparePartID
		stored.Quantity = entry.Quantity
		stored.UnitPrice = entry.UnitPrice
		stored.Date = entry.Date
		r.store.stockOut[entry.ID] = stored
	}
	return nil
}

// Delete removes an entry and reports whether it existed.
func (r *StockOutRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.stockOut[id]; !ok {
		return false, nil
	}
	delete(r.store.stockOut, id)
	return true, nil
}

// List returns all entries, movement date descending.
func (r *StockOutRepository) List(ctx context.Context) ([]*entity.StockOutEntry, error) {
	entries := r.all()
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.After(entries[j].Date)
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

// ListByDateRange returns entries with from <= date < to, newest created first.
func (r *StockOutRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]*entity.StockOutEntry, error) {
	var filtered []*entity.StockOutEntry
	for _, e := range r.all() {
		if !e.Date.Before(from) && e.Date.Before(to) {
			filtered = append(filtered, e)
		}
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].CreatedAt.After(filtered[j].CreatedAt) })
	return filtered, nil
}

func (r *StockOutRepository) all() []*entity.StockOutEntry {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	entries := make([]*entity.StockOutEntry, 0, len(r.store.stockOut))
	for id := range r.store.stockOut {
		e := r.store.stockOut[id]
		entries = append(entries, &e)
	}
	return entries
}
