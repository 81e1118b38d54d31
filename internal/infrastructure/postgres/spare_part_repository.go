package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/smartpark/sims-api/internal/domain/entity"
	"github.com/smartpark/sims-api/internal/domain/repository"
)

var _ repository.SparePartRepository = (*SparePartRepo)(nil)

// SparePartRepo SparePartRepository implementation over PostgreSQL (usable
// with pool or tx).
type SparePartRepo struct {
	q Querier
}

// NewSparePartRepository builds the adapter. Pass a pool or a tx (Querier).
func NewSparePartRepository(q Querier) *SparePartRepo {
	return &SparePartRepo{q: q}
}

const sparePartColumns = `id, name, category, quantity, unit_price, created_at, updated_at`

// Create persists a new part.
func (r *SparePartRepo) Create(ctx context.Context, part *entity.SparePart) error {
	query := `
		INSERT INTO spare_parts (id, name, category, quantity, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		part.ID, part.Name, part.Category, part.Quantity, part.UnitPrice, part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert spare part: %w", err)
	}
	return nil
}

// GetByID returns a part, or nil when it does not exist.
func (r *SparePartRepo) GetByID(ctx context.Context, id string) (*entity.SparePart, error) {
	return r.get(ctx, `SELECT `+sparePartColumns+` FROM spare_parts WHERE id = $1`, id)
}

// GetForUpdate returns a part with its row locked (SELECT FOR UPDATE) for the
// remainder of the surrounding transaction, or nil when it does not exist.
func (r *SparePartRepo) GetForUpdate(ctx context.Context, id string) (*entity.SparePart, error) {
	return r.get(ctx, `SELECT `+sparePartColumns+` FROM spare_parts WHERE id = $1 FOR UPDATE`, id)
}

func (r *SparePartRepo) get(ctx context.Context, query, id string) (*entity.SparePart, error) {
	var p entity.SparePart
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Quantity, &p.UnitPrice, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get spare part: %w", err)
	}
	return &p, nil
}

// List returns all parts, name ascending.
func (r *SparePartRepo) List(ctx context.Context) ([]*entity.SparePart, error) {
	rows, err := r.q.Query(ctx, `SELECT `+sparePartColumns+` FROM spare_parts ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list spare parts: %w", err)
	}
	defer rows.Close()

	var parts []*entity.SparePart
	for rows.Next() {
		var p entity.SparePart
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.UnitPrice, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan spare part: %w", err)
		}
		parts = append(parts, &p)
	}
	return parts, rows.Err()
}

// Update rewrites name, category and unit price. Quantity is handled only by
// UpdateQuantity inside ledger transactions.
func (r *SparePartRepo) Update(ctx context.Context, part *entity.SparePart) error {
	query := `
		UPDATE spare_parts SET name = $2, category = $3, unit_price = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, part.ID, part.Name, part.Category, part.UnitPrice, part.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update spare part: %w", err)
	}
	return nil
}

// UpdateQuantity sets the on-hand quantity (used by the ledger use cases).
func (r *SparePartRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE spare_parts SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update spare part quantity: %w", err)
	}
	return nil
}

// Delete removes a part and reports whether a row was deleted.
func (r *SparePartRepo) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM spare_parts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete spare part: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
