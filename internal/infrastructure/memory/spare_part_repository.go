package memory

import (
	"context"
	"sort"
	"time"

	"github.com/smartpark/sims-api/internal/domain/entity"
	"github.com/smartpark/sims-api/internal/domain/repository"
)

var _ repository.SparePartRepository = (*SparePartRepository)(nil)

// SparePartRepository in-memory SparePartRepository.
type SparePartRepository struct {
	store *Store
}

// NewSparePartRepository builds the repository over the store.
func NewSparePartRepository(store *Store) *SparePartRepository {
	return &SparePartRepository{store: store}
}

// Create stores a new part.
func (r *SparePartRepository) Create(ctx context.Context, part *entity.SparePart) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.parts[part.ID] = *part
	return nil
}

// GetByID returns a copy of the part, or nil when it does not exist.
func (r *SparePartRepository) GetByID(ctx context.Context, id string) (*entity.SparePart, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if p, ok := r.store.parts[id]; ok {
		return &p, nil
	}
	return nil, nil
}

// GetForUpdate is GetByID here: the TxRunner's mutex already serializes
// transactions, so no row lock is needed.
func (r *SparePartRepository) GetForUpdate(ctx context.Context, id string) (*entity.SparePart, error) {
	return r.GetByID(ctx, id)
}

// List returns all parts, name ascending.
func (r *SparePartRepository) List(ctx context.Context) ([]*entity.SparePart, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	parts := make([]*entity.SparePart, 0, len(r.store.parts))
	for id := range r.store.parts {
		p := r.store.parts[id]
		parts = append(parts, &p)
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].Name < parts[j].Name })
	return parts, nil
}

// Update rewrites name, category and unit price.
func (r *SparePartRepository) Update(ctx context.Context, part *entity.SparePart) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if stored, ok := r.store.parts[part.ID]; ok {
		stored.Name = part.Name
		stored.Category = part.Category
		stored.UnitPrice = part.UnitPrice
		stored.UpdatedAt = part.UpdatedAt
		r.store.parts[part.ID] = stored
	}
	return nil
}

// UpdateQuantity sets the on-hand quantity.
func (r *SparePartRepository) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if stored, ok := r.store.parts[id]; ok {
		stored.Quantity = quantity
		stored.UpdatedAt = time.Now()
		r.store.parts[id] = stored
	}
	return nil
}

// Delete removes a part and reports whether it existed.
func (r *SparePartRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.parts[id]; !ok {
		return false, nil
	}
	delete(r.store.parts, id)
	return true, nil
}
