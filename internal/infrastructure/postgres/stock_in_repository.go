package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/smartpark/sims-api/internal/domain/entity"
	"github.com/smartpark/sims-api/internal/domain/repository"
)

var _ repository.StockInRepository = (*StockInRepo)(nil)

// StockInRepo StockInRepository implementation over PostgreSQL (usable with
// pool or tx).
type StockInRepo struct {
	q Querier
}

// NewStockInRepository builds the adapter. Pass a pool or a tx (Querier).
func NewStockInRepository(q Querier) *StockInRepo {
	return &StockInRepo{q: q}
}

// Create persists a ledger entry.
func (r *StockInRepo) Create(ctx context.Context, entry *entity.StockInEntry) error {
	query := `
		INSERT INTO stock_in_entries (id, spare_part_id, quantity, date, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, entry.ID, entry.SparePartID, entry.Quantity, entry.Date, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock-in entry: %w", err)
	}
	return nil
}

// GetByID returns an entry, or nil when it does not exist.
func (r *StockInRepo) GetByID(ctx context.Context, id string) (*entity.StockInEntry, error) {
	query := `
		SELECT id, spare_part_id, quantity, date, created_at
		FROM stock_in_entries WHERE id = $1`
	var e entity.StockInEntry
	err := r.q.QueryRow(ctx, query, id).Scan(&e.ID, &e.SparePartID, &e.Quantity, &e.Date, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock-in entry: %w", err)
	}
	return &e, nil
}

// List returns all entries, movement date descending.
func (r *StockInRepo) List(ctx context.Context) ([]*entity.StockInEntry, error) {
	query := `
		SELECT id, spare_part_id, quantity, date, created_at
		FROM stock_in_entries ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock-in entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.StockInEntry
	for rows.Next() {
		var e entity.StockInEntry
		if err := rows.Scan(&e.ID, &e.SparePartID, &e.Quantity, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock-in entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
