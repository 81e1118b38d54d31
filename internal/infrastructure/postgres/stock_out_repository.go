package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/smartpark/sims-api/internal/domain/entity"
	"github.com/smartpark/sims-api/internal/domain/repository"
)

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

// StockOutRepo StockOutRepository implementation over PostgreSQL (usable with
// pool or tx).
type StockOutRepo struct {
	q Querier
}

// NewStockOutRepository builds the adapter. Pass a pool or a tx (Querier).
func NewStockOutRepository(q Querier) *StockOutRepo {
	return &StockOutRepo{q: q}
}

const stockOutColumns = `id, spare_part_id, quantity, unit_price, date, created_at`

// Create persists a ledger entry.
func (r *StockOutRepo) Create(ctx context.Context, entry *entity.StockOutEntry) error {
	query := `
		INSERT INTO stock_out_entries (id, spare_part_id, quantity, unit_price, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.SparePartID, entry.Quantity, entry.UnitPrice, entry.Date, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock-out entry: %w", err)
	}
	return nil
}

// GetByID returns an entry, or nil when it does not exist.
func (r *StockOutRepo) GetByID(ctx context.Context, id string) (*entity.StockOutEntry, error) {
	var e entity.StockOutEntry
	err := r.q.QueryRow(ctx, `SELECT `+stockOutColumns+` FROM stock_out_entries WHERE id = $1`, id).Scan(
		&e.ID, &e.SparePartID, &e.Quantity, &e.UnitPrice, &e.Date, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock-out entry: %w", err)
	}
	return &e, nil
}

// Update rewrites an entry's mutable fields.
func (r *StockOutRepo) Update(ctx context.Context, entry *entity.StockOutEntry) error {
	query := `
		UPDATE stock_out_entries SET spare_part_id = $2, quantity = $3, unit_price = $4, date = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, entry.ID, entry.SparePartID, entry.Quantity, entry.UnitPrice, entry.Date)
	if err != nil {
		return fmt.Errorf("update stock-out entry: %w", err)
	}
	return nil
}

// Delete removes an entry and reports whether a row was deleted.
func (r *StockOutRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock_out_entries WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete stock-out entry: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List returns all entries, movement date descending.
func (r *StockOutRepo) List(ctx context.Context) ([]*entity.StockOutEntry, error) {
	return r.list(ctx, `SELECT `+stockOutColumns+` FROM stock_out_entries ORDER BY date DESC, created_at DESC`)
}

// ListByDateRange returns entries with from <= date < to, newest created first.
func (r *StockOutRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]*entity.StockOutEntry, error) {
	query := `SELECT ` + stockOutColumns + `
		FROM stock_out_entries WHERE date >= $1 AND date < $2 ORDER BY created_at DESC`
	return r.list(ctx, query, from, to)
}

func (r *StockOutRepo) list(ctx context.Context, query string, args ...any) ([]*entity.StockOutEntry, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock-out entries: %w", err)
	}
	defer rows.Close()

	var entries []*entity.StockOutEntry
	for rows.Next() {
		var e entity.StockOutEntry
		if err := rows.Scan(&e.ID, &e.SparePartID, &e.Quantity, &e.UnitPrice, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock-out entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
