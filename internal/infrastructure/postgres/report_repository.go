package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartpark/sims-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo read-only aggregation queries for the status reporter.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository builds the adapter.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// StockStatus sums both ledgers per part next to the live quantity, name
// ascending. The live quantity is reported as stored, not recomputed, so the
// report can expose a reconciliation drift if one ever occurred.
func (r *ReportRepo) StockStatus(ctx context.Context) ([]repository.StockStatusRow, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    p.category,
	    p.quantity                            AS current_quantity,
	    COALESCE(si.total, 0)::INT            AS total_stock_in,
	    COALESCE(so.total, 0)::INT            AS total_stock_out
	FROM spare_parts p
	LEFT JOIN (
	    SELECT spare_part_id, SUM(quantity) AS total
	    FROM stock_in_entries GROUP BY spare_part_id
	) si ON si.spare_part_id = p.id
	LEFT JOIN (
	    SELECT spare_part_id, SUM(quantity) AS total
	    FROM stock_out_entries GROUP BY spare_part_id
	) so ON so.spare_part_id = p.id
	ORDER BY p.name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.StockStatus: %w", err)
	}
	defer rows.Close()

	var results []repository.StockStatusRow
	for rows.Next() {
		var row repository.StockStatusRow
		if err := rows.Scan(
			&row.PartID,
			&row.Name,
			&row.Category,
			&row.CurrentQuantity,
			&row.TotalStockIn,
			&row.TotalStockOut,
		); err != nil {
			return nil, fmt.Errorf("report.StockStatus scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// DailyStockOut returns the entries of [from, to) annotated with their part,
// newest created first. Deleted parts surface as "Unknown": ledger rows are
// never cascade-deleted with their part.
func (r *ReportRepo) DailyStockOut(ctx context.Context, from, to time.Time) ([]repository.DailyStockOutRow, error) {
	const query = `
	SELECT
	    e.id,
	    COALESCE(p.name,     'Unknown')       AS spare_part_name,
	    COALESCE(p.category, 'Unknown')       AS category,
	    e.quantity,
	    e.unit_price,
	    e.quantity * e.unit_price             AS total_price,
	    e.date
	FROM stock_out_entries e
	LEFT JOIN spare_parts p ON p.id = e.spare_part_id
	WHERE e.date >= $1 AND e.date < $2
	ORDER BY e.created_at DESC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.DailyStockOut: %w", err)
	}
	defer rows.Close()

	var results []repository.DailyStockOutRow
	for rows.Next() {
		var row repository.DailyStockOutRow
		if err := rows.Scan(
			&row.EntryID,
			&row.PartName,
			&row.Category,
			&row.Quantity,
			&row.UnitPrice,
			&row.TotalPrice,
			&row.Date,
		); err != nil {
			return nil, fmt.Errorf("report.DailyStockOut scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
