package repository

import (
	"context"

	"github.com/smartpark/sims-api/internal/domain/entity"
)

// SparePartRepository is the persistence port for SparePart (DIP).
// GetForUpdate must lock the part's row for the remainder of the surrounding
// transaction so that read-then-write quantity adjustments are atomic.
type SparePartRepository interface {
	Create(ctx context.Context, part *entity.SparePart) error
	GetByID(ctx context.Context, id string) (*entity.SparePart, error)
	GetForUpdate(ctx context.Context, id string) (*entity.SparePart, error)
	List(ctx context.Context) ([]*entity.SparePart, error) // name ascending
	Update(ctx context.Context, part *entity.SparePart) error
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) (bool, error)
}
