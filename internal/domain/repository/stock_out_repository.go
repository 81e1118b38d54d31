package repository

import (
	"context"
	"time"

	"github.com/smartpark/sims-api/internal/domain/entity"
)

// StockOutRepository is the persistence port for the stock-out ledger.
type StockOutRepository interface {
	Create(ctx context.Context, entry *entity.StockOutEntry) error
	GetByID(ctx context.Context, id string) (*entity.StockOutEntry, error)
	Update(ctx context.Context, entry *entity.StockOutEntry) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*entity.StockOutEntry, error) // movement date descending
	// ListByDateRange returns entries with from <= date < to, newest created first.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*entity.StockOutEntry, error)
}
