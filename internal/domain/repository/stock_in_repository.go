package repository

import (
	"context"

	"github.com/smartpark/sims-api/internal/domain/entity"
)

// StockInRepository is the persistence port for the append-only stock-in ledger.
type StockInRepository interface {
	Create(ctx context.Context, entry *entity.StockInEntry) error
	GetByID(ctx context.Context, id string) (*entity.StockInEntry, error)
	List(ctx context.Context) ([]*entity.StockInEntry, error) // movement date descending
}
